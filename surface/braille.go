package surface

// brailleBits maps a dot at (column, row) within a 2x4 cell to its bit in
// the Unicode braille pattern block.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleBuf is a dot canvas of w x h terminal cells, each holding 2x4
// dots. Every cell remembers the color of its last dot.
type brailleBuf struct {
	w, h  int
	mask  [][]uint8
	color [][]string
	label [][]rune // text overlay, 0 where empty
}

func newBrailleBuf(w, h int) *brailleBuf {
	b := &brailleBuf{
		w:     w,
		h:     h,
		mask:  make([][]uint8, h),
		color: make([][]string, h),
		label: make([][]rune, h),
	}
	for i := range h {
		b.mask[i] = make([]uint8, w)
		b.color[i] = make([]string, w)
		b.label[i] = make([]rune, w)
	}
	return b
}

// setDot sets the dot at dot coordinates (mx, my). Dots outside the canvas
// are ignored.
func (b *brailleBuf) setDot(mx, my int, color string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.mask[cy][cx] |= brailleBits[mx%2][my%4]
	b.color[cy][cx] = color
}

// line draws a Bresenham line between two dots, calling keep for every
// dot to decide whether it is set.
func (b *brailleBuf) line(x0, y0, x1, y1 int, color string, keep func(mx, my int) bool) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if keep(x0, y0) {
			b.setDot(x0, y0, color)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// text writes s starting at cell (cx, cy), clipped to the canvas and to
// cells accepted by keep.
func (b *brailleBuf) text(cx, cy int, s string, color string, keep func(cx, cy int) bool) {
	if cy < 0 || cy >= b.h {
		return
	}
	for i, r := range []rune(s) {
		x := cx + i
		if x < 0 || x >= b.w || !keep(x, cy) {
			continue
		}
		b.label[cy][x] = r
		b.color[cy][x] = color
	}
}

// cell returns the rune shown at (x, y) and its color.
func (b *brailleBuf) cell(x, y int) (rune, string) {
	if r := b.label[y][x]; r != 0 {
		return r, b.color[y][x]
	}
	mask := b.mask[y][x]
	if mask == 0 {
		return ' ', ""
	}
	return rune(0x2800 + int(mask)), b.color[y][x]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
