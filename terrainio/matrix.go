package terrainio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/terrainforge/terrainforge/heightfield"
)

// WriteHeights writes patch's height matrix to path as a column-major
// nested JSON array (terrain_out_l.json or terrain_out_h.json depending on
// the caller's pipeline stage).
func WriteHeights(path string, patch *heightfield.Patch) error {
	return writeMatrix(path, patch.Size, func(col int) interface{} {
		row := make([]float64, patch.Size)
		for r := 0; r < patch.Size; r++ {
			row[r] = patch.At(col, r).H
		}
		return row
	})
}

// WriteFlags writes patch's per-vertex Flags bitfield to path
// (terrain_out_f.json).
func WriteFlags(path string, patch *heightfield.Patch) error {
	return writeMatrix(path, patch.Size, func(col int) interface{} {
		row := make([]heightfield.Flags, patch.Size)
		for r := 0; r < patch.Size; r++ {
			row[r] = patch.At(col, r).Flags
		}
		return row
	})
}

// WriteConstraints writes patch's per-vertex [c0,c1,c2] constraint triples
// to path (terrain_out_c.json).
func WriteConstraints(path string, patch *heightfield.Patch) error {
	return writeMatrix(path, patch.Size, func(col int) interface{} {
		row := make([][3]float64, patch.Size)
		for r := 0; r < patch.Size; r++ {
			row[r] = patch.At(col, r).C
		}
		return row
	})
}

func writeMatrix(path string, size int, column func(col int) interface{}) error {
	matrix := make([]interface{}, size)
	for c := 0; c < size; c++ {
		matrix[c] = column(c)
	}

	data, err := json.Marshal(matrix)
	if err != nil {
		return fmt.Errorf("terrainio: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("terrainio: write %s: %w", path, err)
	}
	return nil
}

// ReadHeights reads a column-major height matrix previously written by
// WriteHeights and applies it to patch.Data in place. Returns
// ErrDimensionMismatch if the matrix's shape does not match patch.Size.
func ReadHeights(path string, patch *heightfield.Patch) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("terrainio: read %s: %w", path, err)
	}

	var matrix [][]float64
	if err := json.Unmarshal(raw, &matrix); err != nil {
		return fmt.Errorf("terrainio: decode %s: %w", path, err)
	}
	if len(matrix) != patch.Size {
		return fmt.Errorf("%w: cols=%d want=%d", ErrDimensionMismatch, len(matrix), patch.Size)
	}

	for c, col := range matrix {
		if len(col) != patch.Size {
			return fmt.Errorf("%w: col=%d rows=%d want=%d", ErrDimensionMismatch, c, len(col), patch.Size)
		}
		for r, h := range col {
			patch.At(c, r).H = h
		}
	}
	return nil
}
