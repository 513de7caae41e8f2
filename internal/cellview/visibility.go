// Package cellview derives per-cell display state from persisted metadata
// and output counts. Everything here is a total function over its inputs:
// nothing is cached, nothing is persisted, and the results are recomputed
// on every read.
package cellview

import "inkcell-cli/internal/model"

// Visibility is the derived display state for a single cell.
type Visibility struct {
	SourceHidden   bool
	OutputHidden   bool
	OutputExpanded bool
}

// Resolve computes display flags for a cell.
//
// Source hiding honors both the canonical InputHidden field and the legacy
// HideInput spelling, but only for code cells: a markdown or raw cell never
// hides its source no matter what its metadata claims. The output area is
// hidden when there is nothing to show (zero outputs) as well as when the
// user collapsed it.
func Resolve(cellType model.CellType, meta model.CellMetadata, outputCount int) Visibility {
	if cellType != model.CellTypeCode {
		return Visibility{}
	}
	return Visibility{
		SourceHidden:   truthy(meta.InputHidden) || truthy(meta.HideInput),
		OutputHidden:   outputCount == 0 || truthy(meta.OutputHidden),
		OutputExpanded: truthy(meta.OutputExpanded),
	}
}

func truthy(b *bool) bool { return b != nil && *b }
