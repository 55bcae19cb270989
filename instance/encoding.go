package instance

import "github.com/katalvlaran/starverify/bitmask"

// graphAlphabet is the 64-character alphabet for the G= payload, in
// exactly the order the spec mandates: index in the string is the
// 6-bit value encoded by that character.
const graphAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz@#"

var graphAlphabetIndex = func() map[byte]uint {
	idx := make(map[byte]uint, len(graphAlphabet))
	for i := 0; i < len(graphAlphabet); i++ {
		idx[graphAlphabet[i]] = uint(i)
	}
	return idx
}()

// decodeGraphPayload decodes a G= payload into adjacency-predecessor
// masks for n vertices. Bits are LSB-first within each character,
// characters left-to-right; the logical stream is the upper triangle in
// column-major order: for j=1..n-1, for i=0..j-1, one bit "edge {i,j}".
// OR-merges into adjPred so that repeated G= lines accumulate (§9).
func decodeGraphPayload(payload string, n int, adjPred []bitmask.Mask) error {
	pos := 0
	var value uint
	var bitsLeft uint

	nextBit := func() (bool, error) {
		if bitsLeft == 0 {
			if pos >= len(payload) {
				return false, &LoadError{Err: ErrMalformedLine, Text: "G= payload too short"}
			}
			v, ok := graphAlphabetIndex[payload[pos]]
			if !ok {
				return false, &LoadError{Err: ErrMalformedLine, Text: "G= payload has invalid character"}
			}
			value = v
			pos++
			bitsLeft = 6
		}
		bit := value&1 != 0
		value >>= 1
		bitsLeft--
		return bit, nil
	}

	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			set, err := nextBit()
			if err != nil {
				return err
			}
			if set {
				adjPred[j] = adjPred[j].Set(uint(i))
			}
		}
	}
	return nil
}

// EncodeGraph re-encodes adjacency-predecessor masks for n vertices back
// into a G= payload using the same alphabet and bit order as
// decodeGraphPayload, trailing bits of the final character zero-padded.
// This is the inverse used by the round-trip law in §8 and by the
// graphbuild fixture encoder.
func EncodeGraph(n int, adjPred []bitmask.Mask) string {
	var value uint
	var bitsFilled uint
	var out []byte

	flush := func() {
		out = append(out, graphAlphabet[value])
		value = 0
		bitsFilled = 0
	}

	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if adjPred[j].Test(uint(i)) {
				value |= 1 << bitsFilled
			}
			bitsFilled++
			if bitsFilled == 6 {
				flush()
			}
		}
	}
	if bitsFilled > 0 {
		flush()
	}
	return string(out)
}
