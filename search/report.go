package search

import (
	"fmt"
	"io"
	"strings"
)

// Reporter renders the engine's stdout contract (spec §6): a dump of
// the current coloring every 2^24 full extensions, a one-line notice
// per failed full precoloring, and a terminal summary line. Build one
// with NewReporter: NewReporter(nil) writes to io.Discard, and New
// installs such a Reporter by default, so an Engine built without
// WithReporter runs silently.
type Reporter struct {
	w     io.Writer
	prevC []int
}

// progressInterval is the number of full extensions between coloring
// dumps (spec §6: "every 2^24-th").
const progressInterval = 1 << 24

// NewReporter returns a Reporter writing to w. w may be nil, in which
// case all writes are discarded.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{w: w}
}

// progress dumps the coloring of vertices [0,n) if count is a multiple
// of progressInterval, marking with a leading '+' the lowest vertex
// whose color differs from the previous dump.
func (r *Reporter) progress(count int64, c []int, n int) {
	if count%progressInterval != 0 {
		return
	}
	lowestChanged := n
	if r.prevC != nil {
		for v := 0; v < n; v++ {
			if r.prevC[v] != c[v] {
				lowestChanged = v
				break
			}
		}
	} else {
		lowestChanged = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "num_precolorings=%d colors=", count)
	for v := 0; v < n; v++ {
		if v > 0 {
			b.WriteByte(',')
		}
		if v == lowestChanged {
			b.WriteByte('+')
		}
		fmt.Fprintf(&b, "%d", c[v])
	}
	fmt.Fprintln(r.w, b.String())

	if r.prevC == nil {
		r.prevC = make([]int, n)
	}
	copy(r.prevC, c[:n])
}

// failure emits the "We found a failure!" line for a fully-extended
// precolored prefix that had no valid extension.
func (r *Reporter) failure(numFailures int, prefix []int) {
	fmt.Fprintf(r.w, "We found a failure! num_failures=%d precoloring=%v\n", numFailures, prefix)
}

// final emits the terminal summary line.
func (r *Reporter) final(res Result) {
	if res.Success {
		fmt.Fprintf(r.w, "Done. num_precolorings=%d\n", res.NumPrecolorings)
		return
	}
	fmt.Fprintf(r.w, "FAIL. num_precolorings=%d, num_failures=%d\n", res.NumPrecolorings, res.NumFailures)
}
