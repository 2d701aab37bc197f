package cellterm

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/mattn/go-isatty"
)

// readScratchSize is how many bytes PollEvent/PeekEvent read from the
// input stream per wakeup.
const readScratchSize = 32

// Session owns the whole library's state for one terminal: both cell
// buffers, the input ring, the resolved capability table, and the
// original terminal attributes to restore at shutdown. Not thread-safe
// by design — a single application goroutine is expected to drive every
// method except the resize notification, which only ever flips
// resizePending.
//
// Construction uses a fluent-builder: New returns a Session configured
// with chained With* calls, then Init does the actual work.
type Session struct {
	out   io.Writer
	outFd uintptr
	in    io.Reader
	inFd  uintptr

	caps *Capabilities
	ring *RingBuffer

	back, front   *CellBuffer
	width, height int

	inputMode InputMode
	attr      attrState

	resizePending atomic.Bool
	resizer       resizer

	traceWriter io.Writer

	initialized bool
}

// fder is implemented by *os.File and anything else exposing its
// underlying descriptor; New uses it to discover outFd/inFd so Init can
// isatty-check and the resizer can ioctl, without forcing every caller's
// static type to carry a Fd method.
type fder interface {
	Fd() uintptr
}

// New creates a Session writing to out and reading from in. Both are
// expected to be backed by the controlling TTY (os.Stdin/os.Stdout, in
// the common case); the device itself is assumed already opened by
// setup code and handed in as two byte streams. Call Init before using
// any other method.
func New(out io.Writer, in io.Reader) *Session {
	s := &Session{out: out, in: in, inputMode: InputEsc}
	if f, ok := out.(fder); ok {
		s.outFd = f.Fd()
	}
	if f, ok := in.(fder); ok {
		s.inFd = f.Fd()
	}
	return s
}

// WithInputMode sets the ESC-disambiguation mode before Init.
func (s *Session) WithInputMode(mode InputMode) *Session {
	s.inputMode = mode
	return s
}

// WithTraceWriter enables a debug trace, written to w, of every resize
// the session applies. Emitted bytes and raw-mode transitions are not
// traced.
func (s *Session) WithTraceWriter(w io.Writer) *Session {
	s.traceWriter = w
	return s
}

func (s *Session) trace(format string, args ...any) {
	if s.traceWriter == nil {
		return
	}
	fmt.Fprintf(s.traceWriter, format+"\n", args...)
}

// Init puts the terminal into raw mode, resolves its capabilities, and
// allocates both buffers and the input ring. It returns
// ErrFailedToOpenTTY if the given streams are not connected to a
// terminal, or ErrUnsupportedTerminal if the terminfo database has no
// entry for $TERM.
func (s *Session) Init() error {
	if s.outFd == 0 && s.inFd == 0 {
		return ErrFailedToOpenTTY
	}
	if !isatty.IsTerminal(s.outFd) && !isatty.IsCygwinTerminal(s.outFd) {
		return ErrFailedToOpenTTY
	}
	if !isatty.IsTerminal(s.inFd) && !isatty.IsCygwinTerminal(s.inFd) {
		return ErrFailedToOpenTTY
	}

	caps, err := loadCapabilities(terminalName())
	if err != nil {
		return err
	}
	s.caps = caps

	r, err := newResizer(s.outFd)
	if err != nil {
		return fmt.Errorf("cellterm: %w", ErrFailedToOpenTTY)
	}
	s.resizer = r

	if err := s.resizer.enterRaw(); err != nil {
		return fmt.Errorf("cellterm: raw mode: %w", err)
	}
	s.resizer.notifyResize(func() { s.resizePending.Store(true) })

	io.WriteString(s.out, s.caps.EnterCA)
	io.WriteString(s.out, s.caps.EnterKeypad)
	io.WriteString(s.out, s.caps.HideCursor)
	io.WriteString(s.out, s.caps.ClearScreen)

	w, h, err := s.resizer.size()
	if err != nil {
		w, h = 80, 24
	}
	s.width, s.height = w, h
	s.back = NewCellBuffer(w, h)
	s.front = NewCellBuffer(w, h)
	s.back.Clear()
	s.front.Clear()
	s.attr.reset()

	s.ring = NewRingBuffer(ringCapacity)

	s.initialized = true
	return nil
}

// Shutdown restores the terminal to its pre-Init state and frees the
// library's buffers. It is safe to call even if Init was never called
// successfully.
func (s *Session) Shutdown() error {
	if !s.initialized {
		return nil
	}

	io.WriteString(s.out, s.caps.ShowCursor)
	io.WriteString(s.out, s.caps.Sgr0)
	io.WriteString(s.out, s.caps.ClearScreen)
	io.WriteString(s.out, s.caps.ExitKeypad)
	io.WriteString(s.out, s.caps.ExitCA)

	err := s.resizer.exitRaw()

	s.back = nil
	s.front = nil
	s.ring = nil
	s.initialized = false
	return err
}

// flusher is implemented by *bufio.Writer and similar wrappers. Present
// calls it after writing a frame so a caller that wrapped out in a
// bufio.Writer for fewer syscalls per frame still gets its bytes onto
// the wire immediately; a bare *os.File has no such buffering and needs
// no flush.
type flusher interface {
	Flush() error
}

func (s *Session) flushOut() error {
	if f, ok := s.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Width returns the terminal's current width in cells.
func (s *Session) Width() int { return s.width }

// Height returns the terminal's current height in cells.
func (s *Session) Height() int { return s.height }

// PutCell overwrites the back-buffer cell at (x, y). Out-of-bounds
// coordinates are silently ignored.
func (s *Session) PutCell(x, y int, c Cell) {
	s.back.Set(x, y, c)
}

// ChangeCell is sugar over PutCell.
func (s *Session) ChangeCell(x, y int, ch rune, fg, bg Attribute) {
	s.back.Set(x, y, Cell{Ch: ch, Fg: fg, Bg: bg})
}

// Blit copies a w*h rectangle of cells into the back buffer anchored at
// (x, y). See CellBuffer.Blit for the bounds policy.
func (s *Session) Blit(x, y, w, h int, cells []Cell) {
	s.back.Blit(x, y, w, h, cells)
}

// Clear fills the back buffer with the default cell, first observing
// any pending resize.
func (s *Session) Clear() error {
	if err := s.observeResize(); err != nil {
		return err
	}
	s.back.Clear()
	return nil
}

// SelectInputMode returns the current ESC-disambiguation mode unchanged
// when mode is InputCurrent (0); otherwise it sets and returns the new
// mode.
func (s *Session) SelectInputMode(mode InputMode) InputMode {
	if mode != InputCurrent {
		s.inputMode = mode
	}
	return s.inputMode
}

// observeResize is called by Present and Clear before doing their work:
// it applies a pending resize (new dimensions, buffer
// resize-preserving-overlap, forced full redraw) if the signal
// notification set the flag since the last check.
func (s *Session) observeResize() error {
	if !s.resizePending.Load() {
		return nil
	}

	w, h, err := s.resizer.size()
	if err != nil {
		s.resizePending.Store(false)
		return nil
	}

	s.width, s.height = w, h
	s.back.Resize(w, h)
	s.front.Resize(w, h)
	s.front.Clear()

	io.WriteString(s.out, s.caps.Sgr0)
	io.WriteString(s.out, s.caps.ClearScreen)
	s.attr.reset()

	s.resizePending.Store(false)
	s.trace("cellterm: resized to %dx%d", w, h)
	return nil
}

// PollEvent blocks indefinitely for the next event. It returns
// (event, EventDelivered) once one arrives, or (zero, EventOverflow) if
// a read could not be absorbed by the ring buffer.
func (s *Session) PollEvent() (Event, int) {
	return s.waitEvent(-1)
}

// PeekEvent waits up to timeoutMs for the next event. It returns
// (zero, EventTimeout) if nothing arrives in time.
func (s *Session) PeekEvent(timeoutMs int) (Event, int) {
	return s.waitEvent(timeoutMs)
}

// waitEvent implements the shared loop behind PollEvent/PeekEvent: try
// extractEvent first, then wait on the input stream (with or without a
// deadline), read up to readScratchSize bytes, push them, and retry.
func (s *Session) waitEvent(timeoutMs int) (Event, int) {
	for {
		if s.resizePending.Load() {
			w, h, err := s.resizer.size()
			if err == nil {
				s.observeResize()
				return Event{Type: EventResize, Width: w, Height: h}, EventDelivered
			}
		}

		if ev, st := extractEvent(s.ring, s.inputMode, s.caps.Keys); st == extractOK {
			return ev, EventDelivered
		}

		ready, err := s.resizer.waitReadable(s.inFd, timeoutMs)
		if err != nil {
			// Spurious wake from a signal interrupting the wait: treat
			// it like a zero-byte read and loop again rather than
			// surface an error.
			continue
		}
		if !ready {
			return Event{}, EventTimeout
		}

		var scratch [readScratchSize]byte
		n, err := s.in.Read(scratch[:])
		if err != nil || n == 0 {
			continue
		}

		if n > s.ring.Free() {
			return Event{}, EventOverflow
		}
		s.ring.Push(scratch[:n])

		if ev, st := extractEvent(s.ring, s.inputMode, s.caps.Keys); st == extractOK {
			return ev, EventDelivered
		}
	}
}
