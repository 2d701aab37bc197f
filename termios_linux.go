package cellterm

import "golang.org/x/sys/unix"

// Linux names the termios ioctls differently from the BSD lineage
// (termios_darwin.go, termios_bsd.go).
const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetTermios = unix.TCSETS
)
