package instance

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starverify/bitmask"
)

func mustLoad(t *testing.T, text string) *Instance {
	t.Helper()
	inst, err := Load(strings.NewReader(text))
	require.NoError(t, err)
	return inst
}

func TestLoadTriangle(t *testing.T) {
	inst := mustLoad(t, strings.Join([]string{
		"n=3",
		"num_colors=3",
		"num_precolored_verts=3",
		"G=" + EncodeGraph(3, triangleAdj()),
	}, "\n"))

	require.Equal(t, 3, inst.N)
	require.Equal(t, 3, inst.K)
	require.Equal(t, 3, inst.P)
	if !inst.AdjPredMask[1].Test(0) {
		t.Errorf("expected edge {0,1}")
	}
	if !inst.AdjPredMask[2].Test(0) || !inst.AdjPredMask[2].Test(1) {
		t.Errorf("expected edges {0,2} and {1,2}")
	}
}

func triangleAdj() []bitmask.Mask {
	adj := make([]bitmask.Mask, 3)
	adj[1] = adj[1].Set(0)
	adj[2] = adj[2].Set(0).Set(1)
	return adj
}

func edgeMask(n, a, b int) []bitmask.Mask {
	adj := make([]bitmask.Mask, n)
	adj[b] = adj[b].Set(uint(a))
	return adj
}

func TestLoadFourSetBlocker(t *testing.T) {
	inst := mustLoad(t, strings.Join([]string{
		"n=4",
		"num_colors=2",
		"num_precolored_verts=4",
		"B=3,1,2,0",
	}, "\n"))

	want := []FourSet{{Same: 1, Other1: 2, Other2: 0}}
	if diff := cmp.Diff(want, inst.FourSets[3]); diff != "" {
		t.Errorf("FourSets[3] mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadThreeSetTAndU(t *testing.T) {
	inst := mustLoad(t, strings.Join([]string{
		"n=5",
		"T=4,1,2",
		"U=3,4,0",
	}, "\n"))

	// T=4,1,2 -> leaf=4,other1=1,other2=2,type=2 -> stored at max(4,1)=4
	// U=3,4,0 -> leaf=3,other1=4,other2=0,type=1 -> stored at max(3,4)=4
	// Both land in ThreeSets[4], in insertion order.
	want := []ThreeSet{
		{Leaf: 4, Other1: 1, Other2: 2, Type: ThreeSetTypeT},
		{Leaf: 3, Other1: 4, Other2: 0, Type: ThreeSetTypeU},
	}
	if diff := cmp.Diff(want, inst.ThreeSets[4]); diff != "" {
		t.Errorf("ThreeSets[4] mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTendrilLeaf(t *testing.T) {
	inst := mustLoad(t, "n=4\nL=3")
	if !inst.TendrilLeaves.Test(3) {
		t.Errorf("expected bit 3 set in TendrilLeaves")
	}
	if inst.TendrilLeaves.Test(0) || inst.TendrilLeaves.Test(1) || inst.TendrilLeaves.Test(2) {
		t.Errorf("no other bits should be set")
	}
}

func TestLoadTendrilLeafZeroIsFatal(t *testing.T) {
	_, err := Load(strings.NewReader("n=4\nL=0"))
	if !errors.Is(err, ErrTendrilZero) {
		t.Fatalf("expected ErrTendrilZero, got %v", err)
	}
}

func TestLoadSymmetryPair(t *testing.T) {
	inst := mustLoad(t, "n=4\nS=1,2")
	if !inst.SymmetryVertices.Test(2) {
		t.Errorf("expected bit 2 set in SymmetryVertices")
	}
	if inst.SymmetryPair[2] != 1 {
		t.Errorf("SymmetryPair[2] = %d, want 1", inst.SymmetryPair[2])
	}
}

func TestLoadWidthExceededIsFatal(t *testing.T) {
	_, err := Load(strings.NewReader("n=999999999"))
	if !errors.Is(err, ErrWidthExceeded) {
		t.Fatalf("expected ErrWidthExceeded, got %v", err)
	}
}

func TestLoadStructuralLineBeforeNIsFatal(t *testing.T) {
	_, err := Load(strings.NewReader("L=1\nn=4"))
	if !errors.Is(err, ErrNBeforeStructural) {
		t.Fatalf("expected ErrNBeforeStructural, got %v", err)
	}
}

func TestLoadUnknownPrefixIsIgnored(t *testing.T) {
	inst, err := Load(strings.NewReader("n=2\n# a comment\nzzz=123\nnum_colors=2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.K != 2 {
		t.Errorf("expected unknown lines to be ignored, K=%d", inst.K)
	}
}

func TestLoadDuplicateGLinesAccumulate(t *testing.T) {
	inst := mustLoad(t, strings.Join([]string{
		"n=3",
		"B=2,0,0,1", // unrelated line to keep ordering realistic
		"G=" + singleEdgePayload(3, 0, 1),
		"G=" + singleEdgePayload(3, 0, 2),
	}, "\n"))

	if !inst.AdjPredMask[1].Test(0) {
		t.Errorf("expected edge {0,1} to survive first G= line")
	}
	if !inst.AdjPredMask[2].Test(0) {
		t.Errorf("expected edge {0,2} to survive second G= line (OR-merge)")
	}
}

func TestLoadDuplicateScalarIsLastWriterWins(t *testing.T) {
	inst := mustLoad(t, "n=3\nnum_colors=2\nnum_colors=5")
	if inst.K != 5 {
		t.Errorf("expected last-writer-wins, got K=%d", inst.K)
	}
}

func TestLoadFileUnreadable(t *testing.T) {
	_, err := LoadFile("/nonexistent/path/to/instance.txt")
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

// singleEdgePayload returns a G= payload for an n-vertex graph with a
// single edge {a,b} (a<b).
func singleEdgePayload(n, a, b int) string {
	return EncodeGraph(n, edgeMask(n, a, b))
}
