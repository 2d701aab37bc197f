package cellterm

// Attribute is a packed color+attribute descriptor used for both the
// foreground and background of a Cell. The low nibble holds one of the
// eight basic terminal colors; higher bits carry bold/underline/blink.
type Attribute uint16

// The eight basic terminal colors, packed into the low nibble of an
// Attribute. Only these eight are supported — no 256-color palette, no
// true color.
const (
	ColorBlack Attribute = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Attribute bits, combined with a color index via bitwise OR. Bold is
// meaningful only on a foreground Attribute, blink only on a background
// one (see Present).
const (
	AttrBold      Attribute = 0x10
	AttrUnderline Attribute = 0x20
	AttrBlink     Attribute = 0x40
)

const colorMask Attribute = 0x0F

// Color returns the packed color index, stripped of attribute bits.
func (a Attribute) Color() int {
	return int(a & colorMask)
}

// Has reports whether the given attribute bit is set.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Cell is a single character position on the grid: a code point plus a
// foreground and background descriptor. Two cells are equal exactly when
// all three fields are bitwise equal.
type Cell struct {
	Ch rune
	Fg Attribute
	Bg Attribute
}

// DefaultCell is the cell Clear writes into every buffer position and
// Resize gives to newly exposed ones: a space, white on black, no
// attributes.
var DefaultCell = Cell{Ch: ' ', Fg: ColorWhite, Bg: ColorBlack}

// Mod is a bit field of input modifiers. Only ALT currently exists.
type Mod uint8

const ModAlt Mod = 0x01

// Key is a 16-bit logical key code. Control characters occupy the low
// range (0x00-0x1F, 0x7F); named keys occupy the top of the range,
// counting down from 0xFFFF, so the two ranges can never collide with
// each other or with a printable code point.
type Key uint16

// Event is one unit delivered to the application. A key event (Type
// EventKey) carries either a printable character (Ch nonzero) or a
// non-printable key (Key), never both; a resize event (Type EventResize)
// carries Width and Height instead.
type Event struct {
	Type   EventType
	Ch     rune
	Key    Key
	Mod    Mod
	Width  int // valid when Type == EventResize
	Height int // valid when Type == EventResize
}

// EventType discriminates the two kinds of event a Session can deliver:
// a key/rune was typed, or the terminal was resized. Surfacing resize as
// a pollable event lets an application react to it immediately instead
// of polling Width/Height on every frame.
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
)
