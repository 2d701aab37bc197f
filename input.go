package cellterm

// extractStatus is the two-way outcome of extractEvent.
type extractStatus int

const (
	extractNeedMore extractStatus = iota
	extractOK
)

// extractEvent inspects the oldest bytes in ring and, if they form a
// complete event, discards them and returns it. It never blocks. A
// truncated UTF-8 sequence, and in InputAlt mode a lone ESC, come back as
// extractNeedMore with nothing discarded so the caller can wait for more
// bytes. An ESC that does not start a fully buffered known sequence is
// not waited on: it becomes KeyEsc (InputEsc) or the prefix of an
// Alt-modified key (InputAlt) right away.
//
// Dispatch happens in three steps: try to match a known escape sequence,
// then fall back to a bare control character or ESC, then fall back to
// a UTF-8 character. The ESC/ALT disambiguation (is a lone ESC its own
// key, or the prefix of an Alt-modified key?) is resolved by mode.
func extractEvent(ring *RingBuffer, mode InputMode, keys []keySeq) (Event, extractStatus) {
	n := ring.Len()
	if n == 0 {
		return Event{}, extractNeedMore
	}

	lead := ring.At(0)

	if lead == byte(KeyEsc) {
		if ev, st, matched := matchEscapeSequence(ring, keys); matched {
			return ev, st
		}

		switch mode {
		case InputAlt:
			if n < 2 {
				return Event{}, extractNeedMore
			}
			second := ring.At(1)
			if second == byte(KeyEsc) {
				// Bare double-ESC: surface the first as a plain key and
				// let the next call see the second.
				ring.Discard(1)
				return Event{Key: KeyEsc}, extractOK
			}
			return decodeAltEvent(ring)
		default: // InputEsc (and InputCurrent, which should never reach here)
			ring.Discard(1)
			return Event{Key: KeyEsc}, extractOK
		}
	}

	if lead < 0x20 || lead == 0x7F {
		ring.Discard(1)
		return Event{Key: Key(lead)}, extractOK
	}

	return decodeUTF8Event(ring)
}

// matchEscapeSequence tries every known key-sequence suffix against the
// bytes following a leading ESC. It matches greedily against whatever is
// already buffered: a sequence is accepted as soon as all of its bytes
// are present, regardless of other candidates' lengths, since the table
// is prefix-free for every terminal family this library targets.
func matchEscapeSequence(ring *RingBuffer, keys []keySeq) (Event, extractStatus, bool) {
	n := ring.Len()
	for _, k := range keys {
		if n < 1+len(k.suffix) {
			continue
		}
		match := true
		for i := 0; i < len(k.suffix); i++ {
			if ring.At(1+i) != k.suffix[i] {
				match = false
				break
			}
		}
		if match {
			ring.Discard(1 + len(k.suffix))
			return Event{Key: k.key}, extractOK, true
		}
	}
	return Event{}, extractNeedMore, false
}

// decodeAltEvent handles InputAlt mode once we know ESC is followed by a
// second, non-ESC byte: that byte (or the UTF-8/control code it starts)
// becomes the event, tagged with ModAlt.
func decodeAltEvent(ring *RingBuffer) (Event, extractStatus) {
	second := ring.At(1)

	if second < 0x20 || second == 0x7F {
		ring.Discard(2)
		return Event{Key: Key(second), Mod: ModAlt}, extractOK
	}

	rest := make([]byte, ring.Len()-1)
	for i := range rest {
		rest[i] = ring.At(1 + i)
	}
	r, size, ok := DecodeRune(rest)
	if !ok {
		return Event{}, extractNeedMore
	}
	ring.Discard(1 + size)
	return Event{Ch: r, Mod: ModAlt}, extractOK
}

// decodeUTF8Event decodes one UTF-8 code point from the head of the
// ring, waiting for more bytes if the sequence is incomplete.
func decodeUTF8Event(ring *RingBuffer) (Event, extractStatus) {
	n := ring.Len()
	head := make([]byte, n)
	ring.Peek(head)

	r, size, ok := DecodeRune(head)
	if !ok {
		return Event{}, extractNeedMore
	}
	ring.Discard(size)
	return Event{Ch: r}, extractOK
}
