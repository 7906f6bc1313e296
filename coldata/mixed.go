package coldata

import "github.com/gocolx/colx/core"

// MixedColumn is a slice-backed core.MixedColumn: each position carries a
// core.Cell tagging whether it is a double, a category, or an object.
type MixedColumn struct {
	cells []core.Cell
}

func NewMixedColumn(cells []core.Cell) *MixedColumn {
	return &MixedColumn{cells: cells}
}

func (c *MixedColumn) Size() int { return len(c.cells) }

func (c *MixedColumn) MixedReader(upTo int) core.MixedReader {
	return &mixedReader{cells: c.cells[:upTo]}
}

type mixedReader struct {
	cells []core.Cell
	pos   int
}

func (r *mixedReader) SetPosition(p int) { r.pos = p }

func (r *mixedReader) Read() core.Cell {
	r.pos++
	return r.cells[r.pos]
}
