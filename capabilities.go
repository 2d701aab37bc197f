package cellterm

import (
	"fmt"
	"os"

	"github.com/xo/terminfo"
)

// Capabilities holds the resolved, ready-to-emit escape sequences the
// render engine and session lifecycle need. Resolution happens once,
// here, at the edge; everything downstream (attrstate.go, render.go)
// only ever touches this plain struct and never parses terminfo itself.
type Capabilities struct {
	EnterCA     string
	ExitCA      string
	ShowCursor  string
	HideCursor  string
	ClearScreen string
	Sgr0        string
	Bold        string
	Blink       string
	EnterKeypad string
	ExitKeypad  string

	// CursorMove renders the parameterized cursor-move capability for a
	// 1-based (row, col).
	CursorMove func(row, col int) string
	// SetColors renders the parameterized SGR capability for 0-7 fg/bg
	// indices.
	SetColors func(fg, bg int) string

	// Keys is the closed set of recognized input key-sequence strings
	// (the bytes following ESC). The parser takes the first entry, in
	// table order, whose bytes are all buffered.
	Keys []keySeq
}

// loadCapabilities resolves capabilities for termName (typically
// os.Getenv("TERM")) using the real terminfo database. A missing or
// unrecognized terminal type surfaces as ErrUnsupportedTerminal.
func loadCapabilities(termName string) (*Capabilities, error) {
	ti, err := terminfo.LoadFrom(termName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedTerminal, termName, err)
	}

	c := &Capabilities{
		EnterCA:     ti.Printf(terminfo.EnterCaMode),
		ExitCA:      ti.Printf(terminfo.ExitCaMode),
		ShowCursor:  ti.Printf(terminfo.CursorNormal),
		HideCursor:  ti.Printf(terminfo.CursorInvisible),
		ClearScreen: ti.Printf(terminfo.ClearScreen),
		Sgr0:        ti.Printf(terminfo.ExitAttributeMode),
		Bold:        ti.Printf(terminfo.EnterBoldMode),
		Blink:       ti.Printf(terminfo.EnterBlinkMode),
		EnterKeypad: ti.Printf(terminfo.KeypadXmit),
		ExitKeypad:  ti.Printf(terminfo.KeypadLocal),
	}
	c.CursorMove = func(row, col int) string {
		return ti.Printf(terminfo.CursorAddress, row, col)
	}
	c.SetColors = func(fg, bg int) string {
		return ti.Printf(terminfo.SetAForeground, fg) + ti.Printf(terminfo.SetABackground, bg)
	}
	c.Keys = loadKeySequences(ti)

	return c, nil
}

// namedKeyCaps pairs each named Key with the terminfo string capability
// that, when present, gives the terminal's actual sequence for it —
// rather than assuming every terminal matches the xterm fallback table.
var namedKeyCaps = []struct {
	cap int
	key Key
}{
	{terminfo.KeyF1, KeyF1},
	{terminfo.KeyF2, KeyF2},
	{terminfo.KeyF3, KeyF3},
	{terminfo.KeyF4, KeyF4},
	{terminfo.KeyF5, KeyF5},
	{terminfo.KeyF6, KeyF6},
	{terminfo.KeyF7, KeyF7},
	{terminfo.KeyF8, KeyF8},
	{terminfo.KeyF9, KeyF9},
	{terminfo.KeyF10, KeyF10},
	{terminfo.KeyF11, KeyF11},
	{terminfo.KeyF12, KeyF12},
	{terminfo.KeyIC, KeyInsert},
	{terminfo.KeyDC, KeyDelete},
	{terminfo.KeyHome, KeyHome},
	{terminfo.KeyEnd, KeyEnd},
	{terminfo.KeyPPage, KeyPgup},
	{terminfo.KeyNPage, KeyPgdn},
	{terminfo.KeyUp, KeyArrowUp},
	{terminfo.KeyDown, KeyArrowDown},
	{terminfo.KeyLeft, KeyArrowLeft},
	{terminfo.KeyRight, KeyArrowRight},
}

// loadKeySequences builds the parser's key-sequence table from the
// terminal's own terminfo entries, then appends every entry of the
// built-in xterm-family table (keys.go) whose suffix the terminfo entries
// did not already supply — this covers the capabilities an entry leaves
// undefined, since many terminfo entries omit function keys above F4.
func loadKeySequences(ti *terminfo.Terminfo) []keySeq {
	seen := make(map[string]bool, len(namedKeyCaps))
	seqs := make([]keySeq, 0, len(namedKeyCaps)+len(fallbackKeySequences))

	for _, nk := range namedKeyCaps {
		s := ti.Printf(nk.cap)
		if s == "" || len(s) < 2 || s[0] != 0x1B {
			continue
		}
		suffix := s[1:]
		if seen[suffix] {
			continue
		}
		seen[suffix] = true
		seqs = append(seqs, keySeq{suffix: suffix, key: nk.key})
	}
	for _, fk := range fallbackKeySequences {
		if seen[fk.suffix] {
			continue
		}
		seen[fk.suffix] = true
		seqs = append(seqs, fk)
	}
	return seqs
}

// terminalName returns the terminal type the session should resolve
// capabilities for.
func terminalName() string {
	return os.Getenv("TERM")
}
