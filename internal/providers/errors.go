package providers

import (
	"errors"
	"fmt"

	"schedule-service/internal/domain"
)

// FetchError captures a failed call to one upstream feed.
type FetchError struct {
	League     domain.League
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "source fetch failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.League, msg, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.League, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.League, msg)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
