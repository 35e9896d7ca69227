// DOT and diagnostic output: --dot, --hash, --cycles, --dump_siblings.
// Grounded on original_source/src/graph.rs's `dump` method.
// coding=utf-8
// @Project : moasm
// @File    : dot.go
package molio

import (
	"fmt"
	"io"

	"github.com/cx-luo/moasm/internal/molgraph"
	"github.com/cx-luo/moasm/internal/subgraph"
)

// WriteDOT emits g as a Graphviz DOT graph. When useElementNames is true,
// nodes are labelled with element symbols (e.g. "C", "O-"); otherwise with
// raw atom codes.
func WriteDOT(w io.Writer, g *molgraph.Graph, useElementNames bool) error {
	if _, err := fmt.Fprintln(w, "graph {"); err != nil {
		return err
	}
	for i := 0; i < g.N(); i++ {
		label := fmt.Sprintf("%d", g.AtomAt(i))
		if useElementNames {
			label = g.AtomAt(i).Label()
		}
		if _, err := fmt.Fprintf(w, "  n%d [shape=circle label=%q];\n", i, label); err != nil {
			return err
		}
	}
	for i := 0; i < g.N(); i++ {
		for j := i + 1; j < g.N(); j++ {
			if order := g.BondOrder(i, j); order > 0 {
				if _, err := fmt.Fprintf(w, "  n%d -- n%d [label=%q];\n", i, j, order); err != nil {
					return err
				}
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// WriteDOTSet emits one DOT graph per reconstruction into a single writer,
// separated by a comment header. --dump_siblings does not use it; it
// writes one file per reconstruction with WriteDOT.
func WriteDOTSet(w io.Writer, gs []*molgraph.Graph) error {
	for i, g := range gs {
		if _, err := fmt.Fprintf(w, "// reconstruction %d\n", i); err != nil {
			return err
		}
		if err := WriteDOT(w, g, true); err != nil {
			return err
		}
	}
	return nil
}

// InvariantHash renders g's isomorphism-invariant hash as a fixed-width
// hex string, backing --hash.
func InvariantHash(g *molgraph.Graph) string {
	return fmt.Sprintf("%016x", g.Hash())
}

// CycleCounts returns the total observed size-5 and size-6 ring counts in
// d, backing --cycles.
func CycleCounts(d *subgraph.Descriptor) (rings5, rings6 int) {
	return d.Rings5Count(), d.Rings6Count()
}
