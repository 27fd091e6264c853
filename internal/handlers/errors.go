package handlers

import (
	"context"
	"errors"
	"net/http"

	"companynews/internal/news"
)

// Kind classifies request failures.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindMethodNotAllowed
	KindServerMisconfigured
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindServerMisconfigured:
		return "server_misconfigured"
	case KindUpstream:
		return "upstream_error"
	default:
		return "internal"
	}
}

// Status maps a kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindServerMisconfigured:
		return http.StatusInternalServerError
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// APIError is an error with a client-facing message.
type APIError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

func badRequest(msg string) *APIError {
	return &APIError{Kind: KindBadRequest, Message: msg}
}

// classify turns any error returned while serving a request into a kind and
// the message placed in the response body.
func classify(err error) (Kind, string) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, apiErr.Message
	}
	var upErr *news.UpstreamError
	if errors.As(err, &upErr) {
		return KindUpstream, err.Error()
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindUpstream, "News API request aborted: " + err.Error()
	}
	return 0, "internal error"
}
