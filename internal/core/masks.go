package core

import (
	"fmt"
	"sort"
)

// Predefined neighborhood masks, each centered on its middle cell.
var (
	// StarMask selects the cell and its four orthogonal neighbors.
	StarMask = stencil("star", Coords{X: 1, Y: 1},
		" * ",
		"***",
		" * ",
	)

	// NearMask selects the four orthogonal neighbors only.
	NearMask = stencil("near", Coords{X: 1, Y: 1},
		" * ",
		"* *",
		" * ",
	)

	// FarMask selects all eight surrounding cells.
	FarMask = stencil("far", Coords{X: 1, Y: 1},
		"***",
		"* *",
		"***",
	)

	// RowMask selects a horizontal run of three.
	RowMask = stencil("row", Coords{X: 1, Y: 0},
		"***",
	)

	// ColumnMask selects a vertical run of three.
	ColumnMask = stencil("column", Coords{X: 0, Y: 1},
		"*",
		"*",
		"*",
	)
)

// stencil builds a mask from rows drawn with '*' for selected cells. Rows of
// unequal length make the stencil invalid and panic.
func stencil(name string, center Coords, rows ...string) Mask {
	stride := 0
	if len(rows) > 0 {
		stride = len(rows[0])
	}
	data := make([]bool, 0, stride*len(rows))
	for _, row := range rows {
		if len(row) != stride {
			panic(fmt.Errorf("mask %q: ragged row %q: %w", name, row, ErrInvalidMask))
		}
		for i := 0; i < len(row); i++ {
			data = append(data, row[i] == '*')
		}
	}
	return MustMask(name, data, stride, center)
}

var masks = map[string]Mask{
	StarMask.Name():   StarMask,
	NearMask.Name():   NearMask,
	FarMask.Name():    FarMask,
	RowMask.Name():    RowMask,
	ColumnMask.Name(): ColumnMask,
}

// MaskByName looks up a predefined mask. The result is a copy anchored at
// the origin.
func MaskByName(name string) (Mask, error) {
	m, ok := masks[name]
	if !ok {
		return Mask{}, fmt.Errorf("mask %q: %w", name, ErrUnknownMask)
	}
	return m, nil
}

// MaskNames lists the predefined masks in sorted order.
func MaskNames() []string {
	names := make([]string, 0, len(masks))
	for name := range masks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
