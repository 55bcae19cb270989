package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/starverify/bitmask"
)

// Option configures Load. Modeled on the teacher's functional
// GraphOption idiom.
type Option func(*loadConfig)

type loadConfig struct {
	ack io.Writer
}

// WithAck causes Load to echo an acknowledgement line to w for every
// recognized scalar key it parses (n=, num_colors=,
// num_precolored_verts=), per the stdout contract in spec §6. Nil by
// default: Load is pure and silent unless a caller opts in.
func WithAck(w io.Writer) Option {
	return func(c *loadConfig) { c.ack = w }
}

// Load parses a textual instance from r into a frozen Instance, per
// spec §4.1. Unrecognized lines are silently ignored (§9, documented
// downstream behavior). Every structural line (G=, B=, T=, U=, L=, S=)
// requires a prior n= line; violating that is fatal.
func Load(r io.Reader, opts ...Option) (*Instance, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	inst := &Instance{}
	nSet := false

	scanner := bufio.NewScanner(r)
	// instance files can carry a large base64 adjacency payload on a
	// single line for bigger graphs; grow the buffer accordingly.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "n="):
			n, err := parseInt(line[2:])
			if err != nil {
				return nil, lerr(lineNo, line, ErrMalformedLine)
			}
			if n > bitmask.Width {
				return nil, lerr(lineNo, line, ErrWidthExceeded)
			}
			inst.N = n
			inst.AdjPredMask = make([]bitmask.Mask, n)
			inst.FourSets = make([][]FourSet, n)
			inst.ThreeSets = make([][]ThreeSet, n)
			inst.SymmetryPair = make([]int, n)
			inst.TendrilLeaves = bitmask.Ones(0)
			inst.SymmetryVertices = bitmask.Ones(0)
			nSet = true
			ackScalar(cfg.ack, "n", n)

		case strings.HasPrefix(line, "num_colors="):
			k, err := parseInt(line[len("num_colors="):])
			if err != nil {
				return nil, lerr(lineNo, line, ErrMalformedLine)
			}
			inst.K = k
			ackScalar(cfg.ack, "num_colors", k)

		case strings.HasPrefix(line, "num_precolored_verts="):
			p, err := parseInt(line[len("num_precolored_verts="):])
			if err != nil {
				return nil, lerr(lineNo, line, ErrMalformedLine)
			}
			inst.P = p
			ackScalar(cfg.ack, "num_precolored_verts", p)

		case strings.HasPrefix(line, "G="):
			if !nSet {
				return nil, lerr(lineNo, line, ErrNBeforeStructural)
			}
			if err := decodeGraphPayload(line[2:], inst.N, inst.AdjPredMask); err != nil {
				return nil, err
			}

		case strings.HasPrefix(line, "B="):
			if !nSet {
				return nil, lerr(lineNo, line, ErrNBeforeStructural)
			}
			fields, err := parseInts(line[2:], 4)
			if err != nil {
				return nil, lerr(lineNo, line, ErrMalformedLine)
			}
			same1, same2, other1, other2 := fields[0], fields[1], fields[2], fields[3]
			if same1 < 0 || same1 >= inst.N {
				return nil, lerr(lineNo, line, ErrMalformedLine)
			}
			inst.FourSets[same1] = append(inst.FourSets[same1], FourSet{Same: same2, Other1: other1, Other2: other2})

		case strings.HasPrefix(line, "T="):
			if !nSet {
				return nil, lerr(lineNo, line, ErrNBeforeStructural)
			}
			if err := addThreeSet(inst, line[2:], ThreeSetTypeT); err != nil {
				return nil, lerr(lineNo, line, ErrMalformedLine)
			}

		case strings.HasPrefix(line, "U="):
			if !nSet {
				return nil, lerr(lineNo, line, ErrNBeforeStructural)
			}
			if err := addThreeSet(inst, line[2:], ThreeSetTypeU); err != nil {
				return nil, lerr(lineNo, line, ErrMalformedLine)
			}

		case strings.HasPrefix(line, "L="):
			if !nSet {
				return nil, lerr(lineNo, line, ErrNBeforeStructural)
			}
			leaf, err := parseInt(line[2:])
			if err != nil {
				return nil, lerr(lineNo, line, ErrMalformedLine)
			}
			if leaf == 0 {
				return nil, lerr(lineNo, line, ErrTendrilZero)
			}
			if leaf < 0 || leaf >= inst.N {
				return nil, lerr(lineNo, line, ErrMalformedLine)
			}
			inst.TendrilLeaves = inst.TendrilLeaves.Set(uint(leaf))

		case strings.HasPrefix(line, "S="):
			if !nSet {
				return nil, lerr(lineNo, line, ErrNBeforeStructural)
			}
			fields, err := parseInts(line[2:], 2)
			if err != nil {
				return nil, lerr(lineNo, line, ErrMalformedLine)
			}
			pair1, pair2 := fields[0], fields[1]
			if pair2 < 0 || pair2 >= inst.N {
				return nil, lerr(lineNo, line, ErrMalformedLine)
			}
			inst.SymmetryVertices = inst.SymmetryVertices.Set(uint(pair2))
			inst.SymmetryPair[pair2] = pair1

		default:
			// Unrecognized prefix: silently ignored per spec §9.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	return inst, nil
}

// LoadFile opens path and parses it with Load. An unreadable file is a
// fatal ErrUnreadable, per the spec's resolved open question (§9):
// "the safest interpretation is a fatal load error".
func LoadFile(path string, opts ...Option) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// ackScalar writes a single scalar-key acknowledgement line. A no-op
// when w is nil, which is the default (Load is pure unless a caller
// opts in via WithAck).
func ackScalar(w io.Writer, key string, value int) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "%s=%d\n", key, value)
}

// addThreeSet parses a "leaf,other1,other2" payload and stores the
// resulting ThreeSet into ThreeSets[max(leaf,other1)] (spec §3).
func addThreeSet(inst *Instance, payload string, typ ThreeSetType) error {
	fields, err := parseInts(payload, 3)
	if err != nil {
		return err
	}
	leaf, other1, other2 := fields[0], fields[1], fields[2]
	if leaf < 0 || leaf >= inst.N || other1 < 0 || other1 >= inst.N {
		return fmt.Errorf("three-set vertex out of range")
	}
	v := leaf
	if other1 > v {
		v = other1
	}
	inst.ThreeSets[v] = append(inst.ThreeSets[v], ThreeSet{Leaf: leaf, Other1: other1, Other2: other2, Type: typ})
	return nil
}

func lerr(line int, text string, err error) error {
	return &LoadError{Line: line, Text: text, Err: err}
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// parseInts splits s on commas (no surrounding spaces, per spec) and
// parses exactly want integers.
func parseInts(s string, want int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d comma-separated fields, got %d", want, len(parts))
	}
	out := make([]int, want)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
