package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// CellScreen is the subset of tcell.Screen a terminal surface writes to
type CellScreen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

var _ CellScreen = tcell.Screen(nil)

// Cell is one character cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// CellBuffer is an in-memory CellScreen for headless runs and tests
type CellBuffer struct {
	width, height int
	cells         []Cell
}

// NewCellBuffer creates a blank buffer
func NewCellBuffer(width, height int) *CellBuffer {
	cb := &CellBuffer{}
	cb.Resize(width, height)
	return cb
}

// Resize reallocates and blanks the buffer
func (cb *CellBuffer) Resize(width, height int) {
	cb.width, cb.height = max(width, 0), max(height, 0)
	cb.cells = make([]Cell, cb.width*cb.height)
	for i := range cb.cells {
		cb.cells[i] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
}

// SetContent writes a cell. Combining runes are ignored, out of range writes are dropped
func (cb *CellBuffer) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= cb.width || y >= cb.height {
		return
	}
	cb.cells[y*cb.width+x] = Cell{Rune: primary, Style: style}
}

// GetContent reads a cell. Width is always 1, combining always nil
func (cb *CellBuffer) GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int) {
	if x < 0 || y < 0 || x >= cb.width || y >= cb.height {
		return ' ', nil, tcell.StyleDefault, 1
	}
	cell := cb.cells[y*cb.width+x]
	return cell.Rune, nil, cell.Style, 1
}

// Size returns buffer dimensions
func (cb *CellBuffer) Size() (int, int) {
	return cb.width, cb.height
}

// String renders the runes row by row with trailing blanks trimmed
func (cb *CellBuffer) String() string {
	var sb strings.Builder
	row := make([]rune, cb.width)
	for y := 0; y < cb.height; y++ {
		for x := 0; x < cb.width; x++ {
			row[x] = cb.cells[y*cb.width+x].Rune
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
