// reconstruct implements spec.md §6's --cid mode: rebuild every candidate
// structure consistent with one compound's recorded fragment evidence.
// Grounded on original_source/src/main.rs's --cid branch.
// coding=utf-8
// @Project : moasm
// @File    : reconstruct.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cx-luo/moasm/internal/assembly"
	"github.com/cx-luo/moasm/internal/logging"
	"github.com/cx-luo/moasm/internal/moldb"
	"github.com/cx-luo/moasm/internal/molgraph"
	"github.com/cx-luo/moasm/internal/molio"
	"github.com/cx-luo/moasm/internal/subgraph"
)

var (
	reconstructCID          int64
	reconstructMaxFrontier  int
	reconstructTimeLimit    int
	reconstructDot          bool
	reconstructHash         bool
	reconstructCycles       bool
	reconstructMatches      bool
	reconstructDumpSiblings string
)

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct",
	Short: "Reconstruct every candidate structure for one compound id",
	RunE:  runReconstruct,
}

func init() {
	reconstructCmd.Flags().Int64Var(&reconstructCID, "cid", 0, "compound id to reconstruct")
	reconstructCmd.Flags().IntVarP(&reconstructMaxFrontier, "max-frontier", "q", 0, "frontier-size budget (0 = unlimited)")
	reconstructCmd.Flags().IntVarP(&reconstructTimeLimit, "time-limit", "t", 0, "time limit in seconds (0 = unlimited)")
	reconstructCmd.Flags().BoolVar(&reconstructDot, "dot", false, "emit the source graph in DOT and exit")
	reconstructCmd.Flags().BoolVar(&reconstructHash, "hash", false, "emit only the invariant identifier")
	reconstructCmd.Flags().BoolVar(&reconstructCycles, "cycles", false, "emit cycle counts as CSV")
	reconstructCmd.Flags().BoolVar(&reconstructMatches, "matches", false, "search a sibling database for reconstructed non-original graphs")
	reconstructCmd.Flags().StringVar(&reconstructDumpSiblings, "dump_siblings", "", "write DOT files of each reconstruction into DIR")
	_ = reconstructCmd.MarkFlagRequired("cid")

	rootCmd.AddCommand(reconstructCmd)
}

func runReconstruct(_ *cobra.Command, _ []string) error {
	db, err := moldb.Open(databasePath())
	if err != nil {
		return err
	}
	defer db.Close()

	row, err := db.Compound(reconstructCID)
	if err != nil {
		return err
	}

	g, err := molio.ParseGraph([]byte(row.Structure))
	if err != nil {
		return err
	}

	if reconstructDot {
		return molio.WriteDOT(os.Stdout, g, true)
	}
	if reconstructHash {
		fmt.Println(molio.InvariantHash(g))
		return nil
	}

	d := subgraph.Build(g)

	if reconstructCycles {
		rings5, rings6 := molio.CycleCounts(d)
		fmt.Printf("%d,%d\n", rings5, rings6)
		return nil
	}

	engine := assembly.NewEngine(d)
	engine.Logger = logger.With(logging.Int64("cid", reconstructCID))
	engine.MaxFrontier = reconstructMaxFrontier
	if reconstructTimeLimit > 0 {
		deadline := time.Now().Add(time.Duration(reconstructTimeLimit) * time.Second)
		engine.Deadline = &deadline
	}

	results, stats, ok := engine.Assemble(nil)
	if !ok {
		fmt.Fprintln(os.Stderr, "moasm: gave up (budget exceeded)")
		return fmt.Errorf("reconstruct: aborted for cid %d", reconstructCID)
	}

	containsOriginal := false
	for _, candidate := range results {
		if candidate.Equal(g) {
			containsOriginal = true
			break
		}
	}

	fmt.Printf("cid %d: %d candidate structure(s), original present: %v, iterations=%d\n",
		reconstructCID, len(results), containsOriginal, stats.IterationsNeeded)

	if reconstructMatches {
		if err := reportMatches(db, g, results); err != nil {
			return err
		}
	}

	if reconstructDumpSiblings != "" {
		if err := dumpSiblings(reconstructDumpSiblings, results); err != nil {
			return err
		}
	}

	return nil
}

// reportMatches searches the sibling database for reconstructed graphs
// that are not isomorphic to the original but still appear among results,
// printing one line per match — the --matches diagnostic.
func reportMatches(db *moldb.DB, original *molgraph.Graph, results []*molgraph.Graph) error {
	siblings, err := db.SiblingsExcept(reconstructCID, 100)
	if err != nil {
		return err
	}

	for _, sib := range siblings {
		sibGraph, err := molio.ParseGraph([]byte(sib.Structure))
		if err != nil {
			continue
		}
		if sibGraph.Equal(original) {
			continue
		}
		for _, candidate := range results {
			if candidate.Equal(sibGraph) {
				fmt.Printf("match: cid %d also reconstructs to a graph matching sibling cid %d\n", reconstructCID, sib.CID)
				break
			}
		}
	}
	return nil
}

// dumpSiblings writes one DOT file per reconstruction into dir.
func dumpSiblings(dir string, gs []*molgraph.Graph) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("moasm: creating %s: %w", dir, err)
	}
	for i, g := range gs {
		path := filepath.Join(dir, fmt.Sprintf("reconstruction_%d.dot", i))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("moasm: creating %s: %w", path, err)
		}
		err = molio.WriteDOT(f, g, true)
		f.Close()
		if err != nil {
			return fmt.Errorf("moasm: writing %s: %w", path, err)
		}
	}
	return nil
}
