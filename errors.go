package cellterm

// exitError is a setup-time failure that also carries a negative-int
// exit code, for callers that want to propagate a process exit status
// without string-matching the error message.
type exitError struct {
	msg  string
	code int
}

func (e *exitError) Error() string { return e.msg }

// ExitCode returns the negative error code associated with a setup
// failure (EUNSUPPORTED_TERMINAL = -1, EFAILED_TO_OPEN_TTY = -2).
func (e *exitError) ExitCode() int { return e.code }

// ErrUnsupportedTerminal is returned by Init when the terminfo database
// has no entry for $TERM. ExitCode() == -1.
var ErrUnsupportedTerminal error = &exitError{"cellterm: unsupported terminal", -1}

// ErrFailedToOpenTTY is returned by Init when the given streams are not
// connected to a terminal. ExitCode() == -2.
var ErrFailedToOpenTTY error = &exitError{"cellterm: failed to open tty", -2}

// Event-wait return codes returned alongside an Event by PollEvent and
// PeekEvent.
const (
	EventDelivered = 1
	EventTimeout   = 0
	EventOverflow  = -1
)
