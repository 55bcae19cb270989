package instance

import (
	"testing"

	"github.com/katalvlaran/starverify/bitmask"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// Triangle on 3 vertices: edges {0,1},{0,2},{1,2}.
	n := 3
	adj := make([]bitmask.Mask, n)
	adj[1] = adj[1].Set(0)
	adj[2] = adj[2].Set(0).Set(1)

	payload := EncodeGraph(n, adj)

	decoded := make([]bitmask.Mask, n)
	if err := decodeGraphPayload(payload, n, decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for v := 0; v < n; v++ {
		if decoded[v] != adj[v] {
			t.Errorf("vertex %d: decoded %v, want %v", v, decoded[v], adj[v])
		}
	}
}

func TestEncodeDecodeRoundTripLargerGraph(t *testing.T) {
	n := 10
	adj := make([]bitmask.Mask, n)
	// a path 0-1-2-...-9 plus a chord 0-9.
	for v := 1; v < n; v++ {
		adj[v] = adj[v].Set(uint(v - 1))
	}
	adj[9] = adj[9].Set(0)

	payload := EncodeGraph(n, adj)
	decoded := make([]bitmask.Mask, n)
	if err := decodeGraphPayload(payload, n, decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for v := 0; v < n; v++ {
		if decoded[v] != adj[v] {
			t.Errorf("vertex %d: decoded %v, want %v", v, decoded[v], adj[v])
		}
	}
}

func TestDecodeGraphPayloadRejectsInvalidCharacter(t *testing.T) {
	adj := make([]bitmask.Mask, 3)
	if err := decodeGraphPayload("!!", 3, adj); err == nil {
		t.Fatalf("expected error for invalid alphabet character")
	}
}

func TestDecodeGraphPayloadRejectsShortPayload(t *testing.T) {
	adj := make([]bitmask.Mask, 5)
	if err := decodeGraphPayload("", 5, adj); err == nil {
		t.Fatalf("expected error for truncated payload")
	}
}
