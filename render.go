package cellterm

import "bytes"

// Present reconciles the terminal display to the back buffer: it diffs
// back against front cell-for-cell in row-major order, emits only the
// SGR/cursor-move/UTF-8 bytes needed to make the two agree, flushes, and
// copies back into front. After a successful call the front buffer
// equals the back buffer; no cursor position or attribute state outside
// that is promised.
func (s *Session) Present() error {
	if err := s.observeResize(); err != nil {
		return err
	}

	var buf bytes.Buffer
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			back := s.back.Get(x, y)
			if back == s.front.Get(x, y) {
				continue
			}

			if !s.attr.sameColors(back.Fg, back.Bg) {
				buf.WriteString(s.caps.Sgr0)
				buf.WriteString(s.caps.SetColors(back.Fg.Color(), back.Bg.Color()))
				if back.Fg.Has(AttrBold) {
					buf.WriteString(s.caps.Bold)
				}
				if back.Bg.Has(AttrBlink) {
					buf.WriteString(s.caps.Blink)
				}
				s.attr.fg, s.attr.bg = back.Fg, back.Bg
			}

			if !s.attr.cursorAdvancedInto(x, y) {
				buf.WriteString(s.caps.CursorMove(y+1, x+1))
			}

			buf.Write(EncodeRune(back.Ch))
			s.attr.x, s.attr.y = x, y

			s.front.Set(x, y, back)
		}
	}

	if _, err := s.out.Write(buf.Bytes()); err != nil {
		return err
	}
	return s.flushOut()
}
