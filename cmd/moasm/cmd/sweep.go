// sweep implements spec.md §6's --min/--max range sweep, timing the
// descriptor build and the assembly separately and emitting one CSV row
// per compound. Grounded on original_source/src/main.rs's sweep branch.
// coding=utf-8
// @Project : moasm
// @File    : sweep.go
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/cx-luo/moasm/internal/assembly"
	"github.com/cx-luo/moasm/internal/moldb"
	"github.com/cx-luo/moasm/internal/molio"
	"github.com/cx-luo/moasm/internal/subgraph"
)

var (
	sweepMin         int64
	sweepMax         int64
	sweepFile        string
	sweepMaxFrontier int
	sweepTimeLimit   int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Reconstruct every compound in a cid range and emit timing CSV",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().Int64Var(&sweepMin, "min", 0, "minimum compound id")
	sweepCmd.Flags().Int64Var(&sweepMax, "max", 0, "maximum compound id")
	sweepCmd.Flags().StringVar(&sweepFile, "file", "", "read compound ids line-by-line from PATH instead of a range")
	sweepCmd.Flags().IntVarP(&sweepMaxFrontier, "max-frontier", "q", 0, "frontier-size budget (0 = unlimited)")
	sweepCmd.Flags().IntVarP(&sweepTimeLimit, "time-limit", "t", 0, "time limit in seconds (0 = unlimited)")

	rootCmd.AddCommand(sweepCmd)
}

func runSweep(_ *cobra.Command, _ []string) error {
	db, err := moldb.Open(databasePath())
	if err != nil {
		return err
	}
	defer db.Close()

	cids, err := sweepCandidateIDs(db)
	if err != nil {
		return err
	}

	fmt.Println("cid,duplicates,subgraph_seconds,assembly_seconds,iterations,total_active,max_active")
	for _, cid := range cids {
		sweepOne(db, cid)
	}
	return nil
}

func sweepCandidateIDs(db *moldb.DB) ([]int64, error) {
	if sweepFile != "" {
		return readCIDsFromFile(sweepFile)
	}
	rows, err := db.CompoundRange(sweepMin, sweepMax)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(rows))
	for i, r := range rows {
		out[i] = r.CID
	}
	return out, nil
}

func readCIDsFromFile(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("moasm: opening %s: %w", path, err)
	}
	defer f.Close()

	var out []int64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		cid, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("moasm: parsing cid %q: %w", line, err)
		}
		out = append(out, cid)
	}
	return out, scanner.Err()
}

func sweepOne(db *moldb.DB, cid int64) {
	row, err := db.Compound(cid)
	if err != nil {
		fmt.Printf("%d,NA,NA,NA,NA,NA,NA\n", cid)
		return
	}

	g, err := molio.ParseGraph([]byte(row.Structure))
	if err != nil {
		fmt.Printf("%d,NA,NA,NA,NA,NA,NA\n", cid)
		return
	}

	subgraphStart := time.Now()
	d := subgraph.Build(g)
	subgraphSeconds := time.Since(subgraphStart).Seconds()

	engine := assembly.NewEngine(d)
	engine.Logger = logger
	engine.MaxFrontier = sweepMaxFrontier
	if sweepTimeLimit > 0 {
		deadline := time.Now().Add(time.Duration(sweepTimeLimit) * time.Second)
		engine.Deadline = &deadline
	}

	assemblyStart := time.Now()
	results, stats, ok := engine.Assemble(nil)
	assemblySeconds := time.Since(assemblyStart).Seconds()

	if !ok {
		fmt.Printf("%d,NA,NA,NA,NA,NA,NA\n", cid)
		return
	}

	duplicates := len(results) - 1
	if duplicates < 0 {
		duplicates = 0
	}

	fmt.Printf("%d,%d,%.6f,%.6f,%d,%d,%d\n",
		cid, duplicates, subgraphSeconds, assemblySeconds,
		stats.IterationsNeeded, stats.TotalActiveGraphs, stats.MaxActiveGraphs)
}
