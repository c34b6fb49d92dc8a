package models

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthenticated means no credential is stored. Callers route the user
// to login and never retry.
var ErrUnauthenticated = errors.New("not logged in")

// RequestFailedError is returned for every non-success API response and for
// transport failures (Status 0).
type RequestFailedError struct {
	Status  int
	Message string
}

func (e *RequestFailedError) Error() string {
	if e.Status == 0 {
		return "request failed: " + e.Message
	}
	return fmt.Sprintf("request failed (%d %s): %s", e.Status, http.StatusText(e.Status), e.Message)
}

// Unauthorized reports whether the server rejected the credential.
func (e *RequestFailedError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// ParseError describes one malformed import row. Row counts data rows from 1;
// Row 0 refers to the header or the payload as a whole.
type ParseError struct {
	Row    int
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is returned when more than one field is invalid.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ErrNoWords is returned by random fetch when the principal has no words yet.
var ErrNoWords = errors.New("word list is empty")
