package inventory

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// TransportError is returned when no HTTP response was received at all:
// connection refused, DNS failure, timeout.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unable to send %s request to %s: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// RejectedError is returned for any response with a status outside 2xx.
// Body is kept verbatim.
type RejectedError struct {
	StatusCode int
	Body       []byte
}

func (e *RejectedError) Error() string {
	s := fmt.Sprintf("request rejected: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if body := strings.TrimSpace(string(e.Body)); body != "" {
		s += ": " + body
	}
	return s
}

func (e *RejectedError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// DecodeError is returned when a 2xx response is not valid JSON, or does
// not have the shape expected for the request.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode response: %s", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type InvalidQueryError struct {
	Type QueryType
}

func (e *InvalidQueryError) Error() string {
	names := make([]string, 0, len(QueryTypes))
	for _, q := range QueryTypes {
		names = append(names, string(q))
	}
	return fmt.Sprintf("unsupported query type: %q (supported: %s)", e.Type, strings.Join(names, ", "))
}
