// Package molio implements the JSON ingestion and DOT/CSV diagnostic
// output external collaborators: two accepted graph JSON formats (legacy
// and extended atom tuples) and the DOT/hash/cycle-count diagnostics a
// reconstruction run can emit.
//
// Grounded on original_source/src/graph.rs's `new` (legacy-format JSON
// parser) and `dump` (DOT output), rendered with error-handling
// conventions from katalvlaran-lvlath/core/types.go's sentinel-error
// style. Atom tuples are decoded with plain encoding/json rather than a
// replacement decoder: length (2 vs 3 elements) alone distinguishes the
// legacy and extended formats, which a bespoke decoder buys nothing over.
// coding=utf-8
// @Project : moasm
// @File    : json.go
package molio

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cx-luo/moasm/internal/atom"
	"github.com/cx-luo/moasm/internal/molgraph"
)

// Sentinel errors for malformed graph JSON, wrapped with context via
// fmt.Errorf("%w", ...) at each call site.
var (
	ErrAtomTupleTooShort  = errors.New("molio: atom tuple too short")
	ErrAtomIDOutOfRange   = errors.New("molio: atom id out of range")
	ErrBondTupleMalformed = errors.New("molio: bond tuple must have exactly 3 elements")
	ErrBondNodeOutOfRange = errors.New("molio: bond references an out-of-range node")
)

type rawGraph struct {
	Atoms [][]int64 `json:"atoms"`
	Bonds [][]int64 `json:"bonds"`
}

// ParseGraph decodes either JSON format from §6: legacy atom tuples
// `[node_id, element]` (charge defaults to 0) or extended tuples
// `[node_id, element, charge]`; bonds are always `[i, j, order]`. Node ids
// are 1-based in the wire format and translated to 0-based internal
// indices.
func ParseGraph(data []byte) (*molgraph.Graph, error) {
	var raw rawGraph
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("molio: invalid graph json: %w", err)
	}

	n := len(raw.Atoms)
	g := molgraph.NewWithSize(n)

	for _, tuple := range raw.Atoms {
		if len(tuple) < 2 {
			return nil, fmt.Errorf("%w: %v", ErrAtomTupleTooShort, tuple)
		}
		id := tuple[0]
		if id < 1 || id > int64(n) {
			return nil, fmt.Errorf("%w: %d", ErrAtomIDOutOfRange, id)
		}
		element := int(tuple[1])
		charge := 0
		if len(tuple) >= 3 {
			charge = int(tuple[2])
		}
		g.SetAtom(int(id)-1, atom.Encode(element, charge))
	}

	for _, tuple := range raw.Bonds {
		if len(tuple) != 3 {
			return nil, fmt.Errorf("%w: %v", ErrBondTupleMalformed, tuple)
		}
		i, j, order := tuple[0]-1, tuple[1]-1, tuple[2]
		if i < 0 || i >= int64(n) || j < 0 || j >= int64(n) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrBondNodeOutOfRange, tuple[0], tuple[1])
		}
		g.SetBond(int(i), int(j), int8(order))
	}

	return g, nil
}
