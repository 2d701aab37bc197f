//go:build unix

package cellterm

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// resizer isolates everything Session needs that is platform-specific:
// entering/exiting raw mode, querying dimensions, waiting for SIGWINCH,
// and waiting for input readiness with a timeout. Platforms without
// UNIX signals (Windows) substitute a periodic poll behind the same
// interface (resize_generic.go).
type resizer interface {
	enterRaw() error
	exitRaw() error
	size() (width, height int, err error)
	// notifyResize arranges for cb to be invoked (from a background
	// goroutine, never from application code) whenever the terminal is
	// resized. cb does only one thing: flip Session.resizePending.
	notifyResize(cb func())
	// waitReadable blocks until fd has data to read or timeoutMs
	// elapses (timeoutMs < 0 blocks indefinitely). It returns
	// (false, nil) on timeout and (_, err) if the wait was interrupted,
	// which the caller treats as a spurious wake and retries.
	waitReadable(fd uintptr, timeoutMs int) (bool, error)
}

// unixResizer is the concrete resizer for Linux/BSD/Darwin: termios
// ioctls for raw mode, TIOCGWINSZ for dimensions, SIGWINCH for resize
// notification, and poll(2) for readiness waits.
type unixResizer struct {
	fd          uintptr
	origTermios *unix.Termios
	sigChan     chan os.Signal
}

func newResizer(fd uintptr) (resizer, error) {
	return &unixResizer{fd: fd, sigChan: make(chan os.Signal, 1)}, nil
}

func (r *unixResizer) enterRaw() error {
	termios, err := unix.IoctlGetTermios(int(r.fd), uint(ioctlGetTermios))
	if err != nil {
		return err
	}
	r.origTermios = termios

	raw := *termios
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(int(r.fd), uint(ioctlSetTermios), &raw)
}

func (r *unixResizer) exitRaw() error {
	signal.Stop(r.sigChan)
	if r.origTermios == nil {
		return nil
	}
	return unix.IoctlSetTermios(int(r.fd), uint(ioctlSetTermios), r.origTermios)
}

func (r *unixResizer) size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(r.fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

func (r *unixResizer) notifyResize(cb func()) {
	signal.Notify(r.sigChan, syscall.SIGWINCH)
	go func() {
		for range r.sigChan {
			cb()
		}
	}()
}

func (r *unixResizer) waitReadable(fd uintptr, timeoutMs int) (bool, error) {
	pfd := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(pfd, timeoutMs)
	if err != nil {
		if err == unix.EINTR {
			return false, err
		}
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	return pfd[0].Revents&unix.POLLIN != 0, nil
}
