package client

import (
	"errors"
	"fmt"
)

// Kind classifies API client failures.
type Kind int

const (
	// KindAuth is a 401 response or a request with no usable identity.
	KindAuth Kind = iota
	// KindServer is any other non-2xx response.
	KindServer
	// KindParse means the response body is not valid JSON.
	KindParse
	// KindSchema means the body parsed but violates the expected shape.
	KindSchema
	// KindProtocol means a success body lacks the expected token field.
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindServer:
		return "server"
	case KindParse:
		return "parse"
	case KindSchema:
		return "schema"
	case KindProtocol:
		return "protocol"
	}
	return "unknown"
}

// APIError is a classified failure from the HBnB API.
type APIError struct {
	Kind    Kind
	Message string
	Status  int // HTTP status, 0 when not applicable
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s error (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// UserMessage converts an error into the short notice text shown to the user.
func UserMessage(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return "Request failed. Please check your connection and try again."
	}

	switch apiErr.Kind {
	case KindAuth:
		return apiErr.Message
	case KindServer:
		return "An unexpected error occurred. Please try again."
	default:
		return "The server returned an unexpected response."
	}
}
