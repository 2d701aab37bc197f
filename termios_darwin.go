package cellterm

import "golang.org/x/sys/unix"

// ioctlGetTermios/ioctlSetTermios name the termios ioctl request numbers,
// which differ between BSD-lineage kernels (this file) and Linux
// (termios_linux.go).
const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETA
)
