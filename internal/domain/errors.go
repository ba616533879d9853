package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTargetNotFound = errors.New("target not found")
	ErrSecretNotFound = errors.New("secret not found")
)

// TransportError reports an exchange that could not complete: dial, TLS,
// proxy or timeout failures. It is never retried.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteCallError reports a response whose status differs from the single
// status expected for the call.
type RemoteCallError struct {
	Op         string
	StatusCode int
	Reason     string
	Body       string
}

func (e *RemoteCallError) Error() string {
	msg := fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	if e.Reason != "" {
		msg += " " + e.Reason
	}
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += ": " + body
	}
	return msg
}

type DecodingError struct {
	Op  string
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("%s: decode payload: %v", e.Op, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

type EncodingError struct {
	Op  string
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: encode payload: %v", e.Op, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// ResolutionError reports a dependency artifact that could not be located.
type ResolutionError struct {
	Coordinates Coordinates
	Err         error
}

func (e *ResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("resolve %s: artifact not found", e.Coordinates)
	}
	return fmt.Sprintf("resolve %s: %v", e.Coordinates, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// IdentityError reports an archive without a readable symbolic name.
type IdentityError struct {
	Path string
	Err  error
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("read symbolic name from %s: %v", e.Path, e.Err)
}

func (e *IdentityError) Unwrap() error { return e.Err }

// IsResolutionError reports whether err carries a ResolutionError.
func IsResolutionError(err error) bool {
	var target *ResolutionError
	return errors.As(err, &target)
}
