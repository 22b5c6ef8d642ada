package catalog

import (
	"errors"
	"fmt"
)

// ErrMalformedGroup matches every *MalformedGroupError through errors.Is.
var ErrMalformedGroup = errors.New("malformed course group")

// MalformedGroupError reports a course group missing a mandatory field or
// holding one in an unexpected shape.
type MalformedGroupError struct {
	// Index is the position of the group in the segmented page.
	Index int
	// Page is the URL the group was scraped from, empty for parsed readers.
	Page string
	// Reason names the field that failed.
	Reason string
	// Text is the raw text of the whole group.
	Text string
	Err  error
}

func (e *MalformedGroupError) Error() string {
	msg := fmt.Sprintf("malformed course group %d: %s", e.Index, e.Reason)
	if e.Page != "" {
		msg = fmt.Sprintf("malformed course group %d on %s: %s", e.Index, e.Page, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedGroupError) Unwrap() error {
	return e.Err
}

func (e *MalformedGroupError) Is(target error) bool {
	return target == ErrMalformedGroup
}

func malformed(group Group, reason string, err error) *MalformedGroupError {
	return &MalformedGroupError{
		Reason: reason,
		Text:   group.Text(),
		Err:    err,
	}
}
