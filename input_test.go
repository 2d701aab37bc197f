package cellterm

import "testing"

func TestExtractEventControlChar(t *testing.T) {
	r := NewRingBuffer(16)
	r.Push([]byte{0x03}) // Ctrl-C
	ev, st := extractEvent(r, InputEsc, nil)
	if st != extractOK {
		t.Fatalf("expected extractOK, got %v", st)
	}
	if ev.Key != KeyCtrlC {
		t.Errorf("expected KeyCtrlC, got %v", ev.Key)
	}
	if r.Len() != 0 {
		t.Errorf("expected byte consumed, %d left", r.Len())
	}
}

func TestExtractEventPlainRune(t *testing.T) {
	r := NewRingBuffer(16)
	r.Push([]byte("h"))
	ev, st := extractEvent(r, InputEsc, nil)
	if st != extractOK {
		t.Fatalf("expected extractOK, got %v", st)
	}
	if ev.Ch != 'h' {
		t.Errorf("expected 'h', got %q", ev.Ch)
	}
}

func TestExtractEventMultiByteUTF8(t *testing.T) {
	r := NewRingBuffer(16)
	r.Push(EncodeRune('€'))
	ev, st := extractEvent(r, InputEsc, nil)
	if st != extractOK {
		t.Fatalf("expected extractOK, got %v", st)
	}
	if ev.Ch != '€' {
		t.Errorf("expected '€', got %q", ev.Ch)
	}
}

func TestExtractEventIncompleteUTF8WaitsForMoreBytes(t *testing.T) {
	r := NewRingBuffer(16)
	full := EncodeRune('€')
	r.Push(full[:len(full)-1])
	_, st := extractEvent(r, InputEsc, nil)
	if st != extractNeedMore {
		t.Fatalf("expected extractNeedMore, got %v", st)
	}
	if r.Len() != len(full)-1 {
		t.Errorf("expected no bytes consumed while waiting, len=%d", r.Len())
	}
}

func TestExtractEventBareEscInEscMode(t *testing.T) {
	r := NewRingBuffer(16)
	r.Push([]byte{0x1B})
	ev, st := extractEvent(r, InputEsc, nil)
	if st != extractOK {
		t.Fatalf("expected extractOK, got %v", st)
	}
	if ev.Key != KeyEsc {
		t.Errorf("expected KeyEsc, got %v", ev.Key)
	}
}

func TestExtractEventAltLetterInAltMode(t *testing.T) {
	r := NewRingBuffer(16)
	r.Push([]byte{0x1B, 'j'})
	ev, st := extractEvent(r, InputAlt, nil)
	if st != extractOK {
		t.Fatalf("expected extractOK, got %v", st)
	}
	if ev.Ch != 'j' || ev.Mod != ModAlt {
		t.Errorf("expected Alt+j, got %+v", ev)
	}
}

func TestExtractEventDoubleEscInAltMode(t *testing.T) {
	r := NewRingBuffer(16)
	r.Push([]byte{0x1B, 0x1B})
	ev, st := extractEvent(r, InputAlt, nil)
	if st != extractOK {
		t.Fatalf("expected extractOK, got %v", st)
	}
	if ev.Key != KeyEsc {
		t.Errorf("expected plain KeyEsc, got %+v", ev)
	}
	if r.Len() != 1 {
		t.Errorf("expected the second ESC to remain buffered, len=%d", r.Len())
	}
}

func TestExtractEventNamedSequence(t *testing.T) {
	r := NewRingBuffer(16)
	r.Push([]byte("\x1b[A")) // arrow up, xterm
	ev, st := extractEvent(r, InputEsc, fallbackKeySequences)
	if st != extractOK {
		t.Fatalf("expected extractOK, got %v", st)
	}
	if ev.Key != KeyArrowUp {
		t.Errorf("expected KeyArrowUp, got %v", ev.Key)
	}
	if r.Len() != 0 {
		t.Errorf("expected sequence fully consumed, len=%d", r.Len())
	}
}

func TestExtractEventEmptyRing(t *testing.T) {
	r := NewRingBuffer(16)
	_, st := extractEvent(r, InputEsc, nil)
	if st != extractNeedMore {
		t.Fatalf("expected extractNeedMore, got %v", st)
	}
}
