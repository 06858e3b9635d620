package invite

import "errors"

var (
	ErrMalformed      = errors.New("invite: malformed document")
	ErrNoEvent        = errors.New("invite: no event in document")
	ErrMalformedStart = errors.New("invite: unreadable event start")
	ErrTooLarge       = errors.New("invite: document too large")
)

// ParseError reports an invite that could not be turned into a draft. Reason
// is safe to show to a user; Err matches one of the sentinels above with
// errors.Is and carries the underlying decoder failure when there is one.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "invite: " + e.Reason
	}
	return "invite: " + e.Reason + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
