// Command moasm reconstructs molecular graphs from subgraph evidence: the
// CLI front-end around the assembly engine, grounded on
// junjiewwang-perf-analysis's cmd/cli/main.go + cmd/cli/cmd layout.
// coding=utf-8
// @Project : moasm
// @File    : main.go
package main

import (
	"os"

	"github.com/cx-luo/moasm/cmd/moasm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
