package twilio

import (
	"errors"
	"fmt"
	"io"
)

// StatusError wraps non-2xx HTTP responses from Twilio
type StatusError struct {
	Status int
	Body   string
}

// Error interface
func (e *StatusError) Error() string { return fmt.Sprintf("twilio status %d", e.Status) }

// HTTPStatus interface
func (e *StatusError) HTTPStatus() int { return e.Status }

// StatusOf returns the upstream HTTP status carried by err, 0 when none
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
