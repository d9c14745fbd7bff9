package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape is an occupancy matrix indexed [row][col] over a piece's bounding box.
type Shape [][]bool

// Rows returns the bounding-box height.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the bounding-box width.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for _, row := range s {
		for _, cell := range row {
			if cell {
				n++
			}
		}
	}
	return n
}

// Rotate returns the shape turned 90° clockwise: rows reversed, then transposed.
// The pivot is the bounding-box origin, so non-square shapes swap width and height.
// Four rotations give back an identical matrix.
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for i := range out {
		out[i] = make([]bool, rows)
		for j := range rows {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for i := range s {
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the shape with '#' for occupied and '.' for empty cells.
func (s Shape) String() string {
	b := make([]byte, 0, s.Rows()*(s.Cols()+1))
	for i, row := range s {
		if i > 0 {
			b = append(b, '/')
		}
		for _, cell := range row {
			if cell {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
	}
	return string(b)
}

// ShapeDef is a named shape with its fixed color.
type ShapeDef struct {
	Name  string
	Shape Shape
	Color core.Color
}

// ShapesFromConfig converts validated shape entries to definitions.
func ShapesFromConfig(entries []config.ShapeConfig) ([]ShapeDef, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("tetris: no shapes configured")
	}
	defs := make([]ShapeDef, 0, len(entries))
	for _, e := range entries {
		color, ok := core.ParseColor(e.Color)
		if !ok {
			return nil, fmt.Errorf("tetris: shape %s has unknown color %q", e.Name, e.Color)
		}
		shape := Shape(e.Cells())
		if shape.Count() == 0 {
			return nil, fmt.Errorf("tetris: shape %s has no occupied cells", e.Name)
		}
		defs = append(defs, ShapeDef{Name: e.Name, Shape: shape, Color: color})
	}
	return defs, nil
}

// CanonicalShapes returns the seven standard tetrominoes with their colors.
func CanonicalShapes() []ShapeDef {
	defs, err := ShapesFromConfig(config.DefaultTetrisConfig().Shapes)
	if err != nil {
		panic(fmt.Sprintf("tetris: built-in shapes are invalid: %v", err))
	}
	return defs
}
