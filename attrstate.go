package cellterm

// sentinelColor and sentinelCoord guarantee the first emission after a
// full redraw forces a fresh SGR and cursor move: no real color value or
// coordinate can equal them.
const sentinelColor Attribute = 0xFFFF
const sentinelCoord = -2

// attrState is the output encoder's memory of what it last told the
// terminal: the last (fg, bg) pair it emitted SGR for, and the cell it
// last wrote a character into (the cursor sits one cell to its right
// afterwards).
// It lives on the Session and is reset on Init and on every forced full
// redraw (resize).
type attrState struct {
	fg, bg Attribute
	x, y   int
}

func newAttrState() attrState {
	return attrState{fg: sentinelColor, bg: sentinelColor, x: sentinelCoord, y: sentinelCoord}
}

func (a *attrState) reset() { *a = newAttrState() }

// sameColors reports whether (fg, bg) matches the last-emitted pair.
func (a *attrState) sameColors(fg, bg Attribute) bool {
	return a.fg == fg && a.bg == bg
}

// cursorAdvancedInto reports whether the last write went to the cell
// exactly one to the left of (x, y) on the same row — i.e. whether the
// terminal's own auto-advance already puts the cursor where we need it,
// making an explicit cursor move redundant.
func (a *attrState) cursorAdvancedInto(x, y int) bool {
	return a.y == y && a.x == x-1
}
