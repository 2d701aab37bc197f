package cellterm

// Control characters, 0x00-0x1F plus 0x7F, with stable mnemonic names.
// The commonly-bound ones (ENTER, TAB, ESC, BACKSPACE, BACKSPACE2, SPACE)
// sit alongside the full Ctrl-letter alias table, since an application
// needs Ctrl-A..Ctrl-Z to bind chords.
const (
	KeyCtrlTilde      Key = 0x00
	KeyCtrl2          Key = 0x00
	KeyCtrlA          Key = 0x01
	KeyCtrlB          Key = 0x02
	KeyCtrlC          Key = 0x03
	KeyCtrlD          Key = 0x04
	KeyCtrlE          Key = 0x05
	KeyCtrlF          Key = 0x06
	KeyCtrlG          Key = 0x07
	KeyBackspace      Key = 0x08
	KeyCtrlH          Key = 0x08
	KeyTab            Key = 0x09
	KeyCtrlI          Key = 0x09
	KeyCtrlJ          Key = 0x0A
	KeyCtrlK          Key = 0x0B
	KeyCtrlL          Key = 0x0C
	KeyEnter          Key = 0x0D
	KeyCtrlM          Key = 0x0D
	KeyCtrlN          Key = 0x0E
	KeyCtrlO          Key = 0x0F
	KeyCtrlP          Key = 0x10
	KeyCtrlQ          Key = 0x11
	KeyCtrlR          Key = 0x12
	KeyCtrlS          Key = 0x13
	KeyCtrlT          Key = 0x14
	KeyCtrlU          Key = 0x15
	KeyCtrlV          Key = 0x16
	KeyCtrlW          Key = 0x17
	KeyCtrlX          Key = 0x18
	KeyCtrlY          Key = 0x19
	KeyCtrlZ          Key = 0x1A
	KeyEsc            Key = 0x1B
	KeyCtrlLsqBracket Key = 0x1B
	KeyCtrl3          Key = 0x1B
	KeyCtrl4          Key = 0x1C
	KeyCtrlBackslash  Key = 0x1C
	KeyCtrl5          Key = 0x1D
	KeyCtrlRsqBracket Key = 0x1D
	KeyCtrl6          Key = 0x1E
	KeyCtrl7          Key = 0x1F
	KeyCtrlSlash      Key = 0x1F
	KeyCtrlUnderscore Key = 0x1F
	KeySpace          Key = 0x20
	KeyBackspace2     Key = 0x7F
	KeyCtrl8          Key = 0x7F
)

// Named keys occupy the top of the 16-bit range, counting down from
// 0xFFFF, so they can never collide with a control character or a
// printable Unicode scalar.
const (
	KeyF1 Key = 0xFFFF - iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// InputMode selects how a lone ESC byte is disambiguated from an
// Alt-modified key (see extractEvent). InputCurrent (0) is a sentinel
// meaning "leave the mode as-is" for SelectInputMode.
type InputMode uint8

const (
	InputCurrent InputMode = iota
	InputEsc
	InputAlt
)

// keySeq pairs a raw escape-sequence suffix (the bytes following ESC)
// with the logical key it represents. The parser takes the first entry,
// in table order, whose suffix is fully buffered (see
// matchEscapeSequence).
type keySeq struct {
	suffix string
	key    Key
}

// fallbackKeySequences is the built-in xterm-family key table, used
// whenever the terminfo-resolved table (capabilities.go) is missing an
// entry for the current $TERM — many terminfo entries only cover the
// basics and leave function keys above F4 undefined.
var fallbackKeySequences = []keySeq{
	{"OP", KeyF1},
	{"OQ", KeyF2},
	{"OR", KeyF3},
	{"OS", KeyF4},
	{"[15~", KeyF5},
	{"[17~", KeyF6},
	{"[18~", KeyF7},
	{"[19~", KeyF8},
	{"[20~", KeyF9},
	{"[21~", KeyF10},
	{"[23~", KeyF11},
	{"[24~", KeyF12},
	{"[2~", KeyInsert},
	{"[3~", KeyDelete},
	{"[H", KeyHome},
	{"OH", KeyHome},
	{"[1~", KeyHome},
	{"[F", KeyEnd},
	{"OF", KeyEnd},
	{"[4~", KeyEnd},
	{"[5~", KeyPgup},
	{"[6~", KeyPgdn},
	{"[A", KeyArrowUp},
	{"[B", KeyArrowDown},
	{"[C", KeyArrowRight},
	{"[D", KeyArrowLeft},
	{"OA", KeyArrowUp},
	{"OB", KeyArrowDown},
	{"OC", KeyArrowRight},
	{"OD", KeyArrowLeft},
}
