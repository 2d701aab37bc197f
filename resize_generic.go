//go:build !unix

package cellterm

import (
	"errors"
	"time"

	"golang.org/x/term"
)

// pollResizer is the non-UNIX fallback: without SIGWINCH there is no
// push notification for a changed terminal size, so it substitutes a
// periodic dimension poll behind the same resizer interface. Raw mode
// and size queries go through golang.org/x/term rather than the direct
// unix.Termios ioctls used on Linux/BSD/Darwin.
type pollResizer struct {
	fd       int
	oldState *term.State
	stop     chan struct{}
}

func newResizer(fd uintptr) (resizer, error) {
	return &pollResizer{fd: int(fd), stop: make(chan struct{})}, nil
}

func (r *pollResizer) enterRaw() error {
	st, err := term.MakeRaw(r.fd)
	if err != nil {
		return err
	}
	r.oldState = st
	return nil
}

func (r *pollResizer) exitRaw() error {
	close(r.stop)
	if r.oldState == nil {
		return nil
	}
	return term.Restore(r.fd, r.oldState)
}

func (r *pollResizer) size() (int, int, error) {
	return term.GetSize(r.fd)
}

func (r *pollResizer) notifyResize(cb func()) {
	go func() {
		lastW, lastH, _ := r.size()
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				w, h, err := r.size()
				if err != nil {
					continue
				}
				if w != lastW || h != lastH {
					lastW, lastH = w, h
					cb()
				}
			}
		}
	}()
}

func (r *pollResizer) waitReadable(fd uintptr, timeoutMs int) (bool, error) {
	return false, errors.New("cellterm: blocking input wait unsupported on this platform")
}
