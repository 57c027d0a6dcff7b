package grid

import (
	"time"

	"github.com/five82/flipgrid/internal/card"
	"github.com/five82/flipgrid/internal/flip"
)

// Cell is one visible slot of the grid.
type Cell struct {
	Position int
	Card     *card.Card
	Selected bool
}

// View is a scrolling grid backed by a fixed pool of cards. The card for a
// position is pool[position % len(pool)], so scrolling by a row rebinds only
// the cards of the row that left the screen.
type View struct {
	adapter  *Adapter
	opts     card.Options
	pool     []*card.Card
	cols     int
	rows     int
	first    int
	selected int
}

// NewView creates a cols×rows pool and lays out the first page.
func NewView(a *Adapter, cols, rows int, opts card.Options) *View {
	v := &View{adapter: a, opts: opts}
	v.Resize(cols, rows)
	return v
}

// Resize rebuilds the pool for a new visible area. Every card of the old
// pool is recycled.
func (v *View) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == v.cols && rows == v.rows && v.pool != nil {
		return
	}
	for _, c := range v.pool {
		v.adapter.Recycle(c)
	}
	v.cols, v.rows = cols, rows
	v.pool = make([]*card.Card, cols*rows)
	for i := range v.pool {
		v.pool[i] = card.New(v.opts)
	}
	v.first = 0
	v.ensureVisible()
	v.Layout()
}

// Layout binds every visible position to its card. Like a platform grid it
// measures the first visible cell before the real pass.
func (v *View) Layout() {
	n := v.adapter.Len()
	if n == 0 {
		return
	}
	v.adapter.Prepare(v.first, v.host(v.first))
	last := v.first + len(v.pool)
	if last > n {
		last = n
	}
	for pos := v.first; pos < last; pos++ {
		v.adapter.Prepare(pos, v.host(pos))
	}
	// A short last page leaves some cards with nothing to show.
	for pos := last; pos < v.first+len(v.pool); pos++ {
		v.adapter.Recycle(v.host(pos))
	}
}

// Adapter returns the backing adapter.
func (v *View) Adapter() *Adapter {
	return v.adapter
}

// Columns returns the grid width in cards.
func (v *View) Columns() int { return v.cols }

// Rows returns the number of visible card rows.
func (v *View) Rows() int { return v.rows }

// First returns the first visible position.
func (v *View) First() int { return v.first }

// Selected returns the selected position.
func (v *View) Selected() int { return v.selected }

// SelectedState returns the state under the cursor, or nil for an empty grid.
func (v *View) SelectedState() *flip.State {
	if v.adapter.Len() == 0 {
		return nil
	}
	return v.adapter.State(v.selected)
}

// Move shifts the cursor by dx cards and dy rows, scrolling when it leaves
// the page.
func (v *View) Move(dx, dy int) {
	v.Select(v.selected + dx + dy*v.cols)
}

// Select puts the cursor on position, clamped to the item list.
func (v *View) Select(position int) {
	n := v.adapter.Len()
	if n == 0 {
		return
	}
	if position < 0 {
		position = 0
	}
	if position >= n {
		position = n - 1
	}
	v.selected = position
	if v.ensureVisible() {
		v.Layout()
	}
}

// Scroll moves the page by rows, dragging the cursor along when it would
// fall off the page.
func (v *View) Scroll(rows int) {
	v.ScrollTo(v.first + rows*v.cols)
}

// ScrollTo makes the row holding position the first visible row, as far as
// the end of the list allows.
func (v *View) ScrollTo(position int) {
	n := v.adapter.Len()
	if n == 0 {
		return
	}
	if position < 0 {
		position = 0
	}
	if position >= n {
		position = n - 1
	}
	lastFirstRow := (n-1)/v.cols - v.rows + 1
	if lastFirstRow < 0 {
		lastFirstRow = 0
	}
	row := position / v.cols
	if row > lastFirstRow {
		row = lastFirstRow
	}
	first := row * v.cols
	if first == v.first {
		return
	}
	v.first = first
	switch end := first + len(v.pool); {
	case v.selected < first:
		v.selected = first
	case v.selected >= end:
		v.selected = min(end, n) - 1
	}
	v.Layout()
}

// Click delivers a click to the selected card. It reports whether the card
// accepted it; clicks on a flipping card hit its overlay and are dropped.
func (v *View) Click() bool {
	st := v.SelectedState()
	if st == nil {
		return false
	}
	c := v.host(v.selected)
	if st.Host() != flip.Host(c) || !c.Click() {
		return false
	}
	return st.RequestFlip(true)
}

// Advance steps every running flip to now and reports whether any card is
// still animating.
func (v *View) Advance(now time.Time) bool {
	for _, c := range v.pool {
		c.Advance(now)
	}
	return v.Animating()
}

// Animating reports whether any card in the pool is mid-flip.
func (v *View) Animating() bool {
	for _, c := range v.pool {
		if c.Animating() {
			return true
		}
	}
	return false
}

// Cells returns the visible page row by row.
func (v *View) Cells() [][]Cell {
	n := v.adapter.Len()
	out := make([][]Cell, 0, v.rows)
	for r := 0; r < v.rows; r++ {
		var row []Cell
		for c := 0; c < v.cols; c++ {
			pos := v.first + r*v.cols + c
			if pos >= n {
				break
			}
			row = append(row, Cell{Position: pos, Card: v.host(pos), Selected: pos == v.selected})
		}
		if len(row) == 0 {
			break
		}
		out = append(out, row)
	}
	return out
}

func (v *View) host(pos int) *card.Card {
	return v.pool[pos%len(v.pool)]
}

// ensureVisible scrolls so the selected row is on the page. It reports
// whether the page moved.
func (v *View) ensureVisible() bool {
	row := v.selected / v.cols
	firstRow := v.first / v.cols
	switch {
	case row < firstRow:
		firstRow = row
	case row >= firstRow+v.rows:
		firstRow = row - v.rows + 1
	default:
		if v.first%v.cols == 0 {
			return false
		}
	}
	v.first = firstRow * v.cols
	return true
}
