package cellterm

// CellBuffer is a dense, row-major grid of cells: the cell at (x, y)
// lives at index y*width+x. It is owned exclusively by whichever Session
// allocates it (back and front buffers each get their own) and never
// shared or referenced elsewhere.
type CellBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewCellBuffer allocates a buffer of the given dimensions. Its cells are
// zero-valued until Clear is called.
func NewCellBuffer(width, height int) *CellBuffer {
	b := &CellBuffer{}
	b.init(width, height)
	return b
}

// init allocates the backing array for the given dimensions. Contents
// are left zero-valued; callers that need the default cell everywhere
// call Clear.
func (b *CellBuffer) init(width, height int) {
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
}

// Width returns the buffer's current width.
func (b *CellBuffer) Width() int { return b.width }

// Height returns the buffer's current height.
func (b *CellBuffer) Height() int { return b.height }

// InBounds reports whether (x, y) addresses a cell in the buffer.
func (b *CellBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *CellBuffer) index(x, y int) int { return y*b.width + x }

// Get returns the cell at (x, y), or the default cell if out of bounds.
func (b *CellBuffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return DefaultCell
	}
	return b.cells[b.index(x, y)]
}

// Set overwrites the cell at (x, y). Out-of-bounds writes are silently
// ignored: an application may be drawing against a buffer that was just
// resized smaller, and a draw call should not have to recheck bounds
// itself on every write.
func (b *CellBuffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
}

// Clear writes the default cell into every position.
func (b *CellBuffer) Clear() {
	for i := range b.cells {
		b.cells[i] = DefaultCell
	}
}

// Resize changes the buffer's dimensions. It is a no-op when the
// dimensions already match. Otherwise it builds a cleared array of the
// new size and copies the overlap rectangle into it — cells at (x, y)
// with x < min(oldWidth, newWidth) and y < min(oldHeight, newHeight) —
// from the old array row by row; everything else in the new array is
// the default cell.
//
// A terminal that's being dragged by its corner resizes several times a
// second, so the old backing array's capacity is reused in place
// whenever it's already big enough, instead of allocating on every
// event.
func (b *CellBuffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}

	old := b.cells
	oldWidth, oldHeight := b.width, b.height
	needed := width * height

	var fresh []Cell
	if needed > 0 && cap(old) >= needed {
		fresh = old[:needed]
	} else {
		fresh = make([]Cell, needed)
	}

	minW := oldWidth
	if width < minW {
		minW = width
	}
	minH := oldHeight
	if height < minH {
		minH = height
	}

	reusedInPlace := len(old) > 0 && len(fresh) > 0 && &fresh[0] == &old[0]
	if reusedInPlace && width > oldWidth {
		// Reusing the same backing array with wider rows: every row moves
		// to a higher index, so rows are moved bottom-up (through a scratch
		// row) and none is overwritten before it's read. Narrower rows move
		// to a lower index and are copied top-down below.
		row := make([]Cell, minW)
		for y := minH - 1; y >= 0; y-- {
			srcBase := y * oldWidth
			copy(row, old[srcBase:srcBase+minW])
			dstBase := y * width
			copy(fresh[dstBase:dstBase+minW], row)
		}
	} else {
		for y := 0; y < minH; y++ {
			srcBase := y * oldWidth
			dstBase := y * width
			copy(fresh[dstBase:dstBase+minW], old[srcBase:srcBase+minW])
		}
	}
	// Fill everything outside the overlap only after the copy, so a reused
	// array isn't cleared before its rows are read.
	for i := range fresh {
		if i%width >= minW || i/width >= minH {
			fresh[i] = DefaultCell
		}
	}

	b.width = width
	b.height = height
	b.cells = fresh
}

// Blit copies a w*h rectangle of cells into the buffer anchored at
// (x, y). The source rows are contiguous (stride w); destination rows
// are strided by the buffer's own width. The whole blit is rejected,
// leaving the buffer unchanged, if any destination cell would fall
// outside the buffer. The bounds check is half-open, matching every
// other bounds check in this package: a rectangle that lands exactly on
// the far edge (x+w == width) is accepted, not rejected.
func (b *CellBuffer) Blit(x, y, w, h int, cells []Cell) {
	if w <= 0 || h <= 0 {
		return
	}
	if x < 0 || y < 0 || x+w > b.width || y+h > b.height {
		return
	}
	for dy := 0; dy < h; dy++ {
		srcBase := dy * w
		dstBase := (y + dy) * b.width
		copy(b.cells[dstBase+x:dstBase+x+w], cells[srcBase:srcBase+w])
	}
}
