package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrInvalidData       = errors.New("invalid data")
	ErrServer            = errors.New("server error")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrEmptyToken        = errors.New("empty token in login response")
	ErrUnexpectedContent = errors.New("unexpected content type")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	// Status is the HTTP status code.
	Status int
	// Message is the text to show the user.
	Message string
	// ServerMessage is the "message" field of the response body, if any.
	ServerMessage string
	// RequestID is the X-Request-Id sent with the failed request.
	RequestID string
}

func (e *APIError) Error() string {
	if e.ServerMessage != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.ServerMessage)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status == http.StatusUnprocessableEntity:
		return ErrInvalidData
	case e.Status >= 500:
		return ErrServer
	default:
		return ErrUnexpectedStatus
	}
}

// newAPIError builds the error for status. A 401 always carries the
// canonical session message; other statuses prefer the server's own text.
func newAPIError(status int, serverMessage, requestID string) *APIError {
	msg := StatusMessage(status)
	if status != http.StatusUnauthorized && serverMessage != "" {
		msg = serverMessage
	}
	return &APIError{Status: status, Message: msg, ServerMessage: serverMessage, RequestID: requestID}
}

// NetworkError is a failure to reach the backend at all (DNS, connect,
// reset, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrUnavailable, e.Err}
}

// UserMessage returns the text to display for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrUnavailable) || errors.Is(err, context.DeadlineExceeded) {
		return MsgUnreachable
	}
	if errors.Is(err, context.Canceled) {
		return MsgCanceled
	}
	return fmt.Sprintf("%s: %v", MsgGeneric, err)
}
