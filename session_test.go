package cellterm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// scriptedResizer is a resizer whose waitReadable answers come from a
// fixed queue, so a test can drive waitEvent through an exact sequence of
// timeouts and wakeups instead of depending on real I/O timing.
type scriptedResizer struct {
	w, h  int
	ready []bool
	idx   int
}

func (r *scriptedResizer) enterRaw() error         { return nil }
func (r *scriptedResizer) exitRaw() error          { return nil }
func (r *scriptedResizer) size() (int, int, error) { return r.w, r.h, nil }
func (r *scriptedResizer) notifyResize(cb func())  {}

func (r *scriptedResizer) waitReadable(fd uintptr, timeoutMs int) (bool, error) {
	if r.idx >= len(r.ready) {
		return false, nil
	}
	v := r.ready[r.idx]
	r.idx++
	return v, nil
}

// chunkReader hands out one fixed chunk per Read call and reports no more
// data (without an error, matching a would-block terminal read) once
// exhausted.
type chunkReader struct {
	chunks [][]byte
	idx    int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if c.idx >= len(c.chunks) {
		return 0, nil
	}
	n := copy(p, c.chunks[c.idx])
	c.idx++
	return n, nil
}

// newSessionForTest builds a Session around a scripted resizer and input
// reader, bypassing Init's terminal handshake the same way
// newTestSession does for Present.
func newSessionForTest(r *scriptedResizer, in io.Reader) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	caps := testCaps()
	caps.ClearScreen = "<clear>"
	s := &Session{
		out:         &out,
		in:          in,
		caps:        caps,
		back:        NewCellBuffer(r.w, r.h),
		front:       NewCellBuffer(r.w, r.h),
		width:       r.w,
		height:      r.h,
		resizer:     r,
		ring:        NewRingBuffer(ringCapacity),
		inputMode:   InputEsc,
		initialized: true,
	}
	s.back.Clear()
	s.front.Clear()
	s.attr.reset()
	return s, &out
}

func TestWaitEventDeliversKeyFromInput(t *testing.T) {
	r := &scriptedResizer{w: 80, h: 24, ready: []bool{true}}
	in := &chunkReader{chunks: [][]byte{[]byte("a")}}
	s, _ := newSessionForTest(r, in)

	ev, code := s.PeekEvent(10)
	if code != EventDelivered {
		t.Fatalf("expected EventDelivered, got %d", code)
	}
	if ev.Ch != 'a' {
		t.Errorf("expected rune 'a', got %q", ev.Ch)
	}
}

func TestWaitEventTimesOutWhenNothingArrives(t *testing.T) {
	r := &scriptedResizer{w: 80, h: 24, ready: []bool{false}}
	in := &chunkReader{}
	s, _ := newSessionForTest(r, in)

	ev, code := s.PeekEvent(5)
	if code != EventTimeout {
		t.Fatalf("expected EventTimeout, got %d", code)
	}
	if ev != (Event{}) {
		t.Errorf("expected zero Event on timeout, got %+v", ev)
	}
}

func TestWaitEventReportsOverflowWhenRingIsFull(t *testing.T) {
	r := &scriptedResizer{w: 80, h: 24, ready: []bool{true}}
	in := &chunkReader{chunks: [][]byte{bytes.Repeat([]byte("x"), 10)}}
	s, _ := newSessionForTest(r, in)
	s.ring = NewRingBuffer(4) // smaller than the 10-byte chunk above

	ev, code := s.PeekEvent(10)
	if code != EventOverflow {
		t.Fatalf("expected EventOverflow, got %d", code)
	}
	if ev != (Event{}) {
		t.Errorf("expected zero Event on overflow, got %+v", ev)
	}
}

func TestWaitEventDeliversResizeBeforeCheckingInput(t *testing.T) {
	r := &scriptedResizer{w: 100, h: 40}
	in := &chunkReader{}
	s, out := newSessionForTest(r, in)
	s.width, s.height = 80, 24
	s.back.Resize(80, 24)
	s.front.Resize(80, 24)
	s.resizePending.Store(true)

	ev, code := s.PollEvent()
	if code != EventDelivered {
		t.Fatalf("expected EventDelivered, got %d", code)
	}
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("expected resize to 100x40, got %+v", ev)
	}
	if s.Width() != 100 || s.Height() != 40 {
		t.Errorf("expected session dimensions updated, got %dx%d", s.Width(), s.Height())
	}
	if s.resizePending.Load() {
		t.Error("expected resizePending cleared after delivering the resize event")
	}
	if out.Len() == 0 {
		t.Error("expected observeResize to emit a full-redraw sequence")
	}
}

func TestObserveResizeIsANoopWithoutAPendingResize(t *testing.T) {
	r := &scriptedResizer{w: 80, h: 24}
	s, out := newSessionForTest(r, &chunkReader{})

	if err := s.observeResize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output when no resize is pending, got %q", out.String())
	}
	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("expected dimensions unchanged, got %dx%d", s.Width(), s.Height())
	}
}

func TestObserveResizeAppliesNewDimensionsAndForcesRedraw(t *testing.T) {
	r := &scriptedResizer{w: 120, h: 30}
	s, out := newSessionForTest(r, &chunkReader{})
	s.width, s.height = 80, 24
	s.back.Resize(80, 24)
	s.front.Resize(80, 24)
	s.front.Set(5, 5, Cell{Ch: 'z', Fg: ColorRed})
	s.resizePending.Store(true)

	if err := s.observeResize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Width() != 120 || s.Height() != 30 {
		t.Errorf("expected resize to 120x30, got %dx%d", s.Width(), s.Height())
	}
	if s.back.Width() != 120 || s.back.Height() != 30 {
		t.Errorf("expected back buffer resized, got %dx%d", s.back.Width(), s.back.Height())
	}
	if s.front.Get(5, 5) != DefaultCell {
		t.Error("expected front buffer cleared after resize, forcing a full redraw")
	}
	if s.resizePending.Load() {
		t.Error("expected resizePending cleared")
	}
	got := out.String()
	if !strings.Contains(got, "<clear>") {
		t.Errorf("expected a ClearScreen emission, got %q", got)
	}
}

func TestObserveResizeClearsPendingWhenSizeQueryFails(t *testing.T) {
	// A resizer that can't report a size (e.g. the ioctl races a closing
	// terminal) should not wedge observeResize into retrying forever: it
	// drops the pending flag and leaves dimensions untouched.
	r := &failingSizeResizer{}
	s, out := newSessionForTest(&scriptedResizer{w: 80, h: 24}, &chunkReader{})
	s.resizer = r
	s.resizePending.Store(true)

	if err := s.observeResize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.resizePending.Load() {
		t.Error("expected resizePending cleared even when size() fails")
	}
	if out.Len() != 0 {
		t.Errorf("expected no redraw output when size() fails, got %q", out.String())
	}
}

type failingSizeResizer struct{}

func (failingSizeResizer) enterRaw() error                               { return nil }
func (failingSizeResizer) exitRaw() error                                { return nil }
func (failingSizeResizer) size() (int, int, error)                       { return 0, 0, errSizeUnavailable }
func (failingSizeResizer) notifyResize(cb func())                        {}
func (failingSizeResizer) waitReadable(fd uintptr, ms int) (bool, error) { return false, nil }

var errSizeUnavailable = errors.New("size unavailable")
