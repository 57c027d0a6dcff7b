package card

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flipgrid/internal/anim"
)

// Style carries the theme colors a card needs.
type Style struct {
	Text   string
	Border string
	Focus  string
}

// View draws the current frame. The face is squeezed horizontally by the
// projection of the frame angle around the pivot, so a card turning edge-on
// narrows to a single column.
func (c *Card) View(st Style, selected bool) string {
	w, h := c.opts.Width, c.opts.Height
	face := c.faces[c.frame.Slot]
	cells, titleRow := c.faceCells(face)

	vw := int(math.Round(float64(w) * anim.Projection(c.frame.Angle)))
	if vw < 1 {
		vw = 1
	}
	left := int(math.Round(c.frame.Pivot.X - float64(vw)/2))
	if left < 0 {
		left = 0
	}
	if left > w-vw {
		left = w - vw
	}

	edge := st.Border
	if selected {
		edge = st.Focus
	}
	bg := lipgloss.NewStyle().Background(lipgloss.Color(face.Color))
	faceStyle := bg.Foreground(lipgloss.Color(st.Text))
	edgeStyle := bg.Foreground(lipgloss.Color(edge))
	if math.Abs(c.frame.Angle) > 45 {
		faceStyle = faceStyle.Faint(true)
		edgeStyle = edgeStyle.Faint(true)
	}

	lines := make([]string, h)
	for y := 0; y < h; y++ {
		rowStyle := faceStyle
		if y == titleRow {
			rowStyle = faceStyle.Bold(true)
		}

		var b strings.Builder
		b.WriteString(strings.Repeat(" ", left))
		run := make([]rune, 0, vw)
		runEdge := false
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := rowStyle
			if runEdge {
				s = edgeStyle
			}
			b.WriteString(s.Render(string(run)))
			run = run[:0]
		}
		for x := 0; x < vw; x++ {
			src := (2*x + 1) * w / (2 * vw)
			isEdge := y == 0 || y == h-1 || src == 0 || src == w-1
			if isEdge != runEdge {
				flush()
				runEdge = isEdge
			}
			run = append(run, cells[y][src])
		}
		flush()
		b.WriteString(strings.Repeat(" ", w-vw-left))
		lines[y] = b.String()
	}

	out := strings.Join(lines, "\n")
	if m := c.opts.Margin; m > 0 {
		out = lipgloss.NewStyle().Margin(m/2, m).Render(out)
	}
	return out
}

// faceCells lays out a face as a bordered rune grid of the card's size and
// returns the grid row holding the title, or -1.
func (c *Card) faceCells(face Face) ([][]rune, int) {
	w, h, pad := c.opts.Width, c.opts.Height, c.opts.Padding
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			switch {
			case y == 0 && x == 0:
				row[x] = '╭'
			case y == 0 && x == w-1:
				row[x] = '╮'
			case y == h-1 && x == 0:
				row[x] = '╰'
			case y == h-1 && x == w-1:
				row[x] = '╯'
			case y == 0 || y == h-1:
				row[x] = '─'
			case x == 0 || x == w-1:
				row[x] = '│'
			default:
				row[x] = ' '
			}
		}
		cells[y] = row
	}

	iw := w - 2 - 2*pad
	ih := h - 2 - 2*pad
	if iw < 1 || ih < 1 {
		return cells, -1
	}
	text, title := layout(face, iw, ih, c.opts.Scale)
	for i, line := range text {
		copy(cells[1+pad+i][1+pad:], []rune(line))
	}
	if title >= 0 {
		title += 1 + pad
	}
	return cells, title
}

// layout returns exactly ih lines of exactly iw runes, plus the index of the
// title line or -1.
func layout(face Face, iw, ih int, mode ScaleMode) ([]string, int) {
	var lines []string
	title := -1
	if t := strings.TrimSpace(face.Title); t != "" {
		lines = append(lines, t)
		title = 0
	}
	lines = append(lines, wrap(face.Body, iw)...)
	if len(lines) > ih {
		lines = lines[:ih]
	}

	top := 0
	if mode != ScaleStart {
		top = (ih - len(lines)) / 2
	}
	out := make([]string, ih)
	blank := strings.Repeat(" ", iw)
	for i := range out {
		out[i] = blank
	}
	for i, line := range lines {
		r := []rune(line)
		if len(r) > iw {
			r = r[:iw]
		}
		switch mode {
		case ScaleStretch:
			out[top+i] = string(stretch(r, iw))
		case ScaleStart:
			out[top+i] = string(r) + strings.Repeat(" ", iw-len(r))
		default:
			lpad := (iw - len(r)) / 2
			out[top+i] = strings.Repeat(" ", lpad) + string(r) + strings.Repeat(" ", iw-len(r)-lpad)
		}
	}
	if title >= 0 {
		title += top
	}
	return out, title
}

// stretch resamples r to exactly width runes.
func stretch(r []rune, width int) []rune {
	out := make([]rune, width)
	if len(r) == 0 {
		for i := range out {
			out[i] = ' '
		}
		return out
	}
	for i := range out {
		out[i] = r[i*len(r)/width]
	}
	return out
}

func wrap(text string, width int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		var cur []rune
		for _, w := range words {
			r := []rune(w)
			for len(r) > width {
				if len(cur) > 0 {
					lines = append(lines, string(cur))
					cur = nil
				}
				lines = append(lines, string(r[:width]))
				r = r[width:]
			}
			switch {
			case len(cur) == 0:
				cur = append(cur, r...)
			case len(cur)+1+len(r) <= width:
				cur = append(cur, ' ')
				cur = append(cur, r...)
			default:
				lines = append(lines, string(cur))
				cur = append([]rune(nil), r...)
			}
		}
		if len(cur) > 0 {
			lines = append(lines, string(cur))
		}
	}
	return lines
}
