package instance

import "github.com/katalvlaran/starverify/bitmask"

// FourSet is a blocker record (same, other1, other2) stored per
// "current" vertex v with same < v. It fires iff c[v] == c[same] and
// c[other1] == c[other2].
type FourSet struct {
	Same, Other1, Other2 int
}

// ThreeSetType selects which low-bit pattern of the tendril leaf's color
// triggers a ThreeSet blocker.
type ThreeSetType int

const (
	// ThreeSetTypeU corresponds to a U= line (type=1).
	ThreeSetTypeU ThreeSetType = 1
	// ThreeSetTypeT corresponds to a T= line (type=2).
	ThreeSetTypeT ThreeSetType = 2
)

// ThreeSet is a tendril blocker record (leaf, other1, other2, type),
// stored in ThreeSets[max(leaf, other1)]. It fires iff
// (c[leaf] & int(Type)) != 0 and c[other1] == c[other2].
type ThreeSet struct {
	Leaf, Other1, Other2 int
	Type                 ThreeSetType
}

// Instance is the frozen, read-only model built by Load/LoadFile. Every
// field here is populated once by the loader and never mutated by the
// search engine.
type Instance struct {
	N int // number of vertices
	K int // palette size
	P int // num_precolored_verts

	// AdjPredMask[v] has bit i set iff i<v and edge {i,v} exists.
	AdjPredMask []bitmask.Mask

	// FourSets[v] and ThreeSets[v] are stored and must be iterated in
	// reverse insertion order (spec §4.3/§9).
	FourSets  [][]FourSet
	ThreeSets [][]ThreeSet

	// TendrilLeaves has bit v set iff v is a tendril leaf (restricted
	// to colors {1,2}). Bit 0 is always clear.
	TendrilLeaves bitmask.Mask

	// SymmetryVertices has bit v set iff v has a recorded symmetry
	// partner in SymmetryPair.
	SymmetryVertices bitmask.Mask

	// SymmetryPair[v] is the lesser-indexed partner of v, valid only
	// when SymmetryVertices.Test(uint(v)) is true.
	SymmetryPair []int
}

// MaskFirstNBits is mask_first_n_bits = (1<<n) - 1.
func (inst *Instance) MaskFirstNBits() bitmask.Mask { return bitmask.Ones(uint(inst.N)) }

// MaskExtendedVertices is mask_extended_vertices = (1<<(p-1)) - 1.
func (inst *Instance) MaskExtendedVertices() bitmask.Mask {
	if inst.P <= 0 {
		return bitmask.Ones(0)
	}
	return bitmask.Ones(uint(inst.P - 1))
}
