package api

import (
	"errors"
	"fmt"
)

// Kind classifies errors reported by the service.
type Kind int

const (
	Unknown Kind = iota
	InvalidJSON
	InvalidRequestURL
	InvalidRequest
	ValidationError
	MissingVersion
	Unauthorized
	RestrictedResource
	ObjectNotFound
	Conflict
	RateLimited
	InternalServerError
	ServiceUnavailable
	DatabaseConnectionUnavailable
	GatewayTimeout
)

var kindNames = map[Kind]string{
	Unknown:                       "Unknown error",
	InvalidJSON:                   "Invalid json",
	InvalidRequestURL:             "Invalid request url",
	InvalidRequest:                "Invalid request",
	ValidationError:               "Validation error",
	MissingVersion:                "Missing version",
	Unauthorized:                  "Unauthorized",
	RestrictedResource:            "Restricted resource",
	ObjectNotFound:                "Object not found",
	Conflict:                      "Conflict error",
	RateLimited:                   "Rate limited",
	InternalServerError:           "Internal server error",
	ServiceUnavailable:            "Service unavailable",
	DatabaseConnectionUnavailable: "Database connection unavailable",
	GatewayTimeout:                "Gateway timeout",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ErrorInfo is the error payload sent by the service.
type ErrorInfo struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error is an error reported by the service.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v (%d): %v", e.Kind, e.Status, e.Message)
}

// Is matches other *Error values by kind,
// so that errors.Is(err, &Error{Kind: RateLimited}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// kindOf maps status and code of an error payload to a Kind.
func kindOf(status int, code string) Kind {
	switch status {
	case 400:
		switch code {
		case "invalid_json":
			return InvalidJSON
		case "invalid_request_url":
			return InvalidRequestURL
		case "invalid_request":
			return InvalidRequest
		case "validation_error":
			return ValidationError
		case "missing_version":
			return MissingVersion
		}
	case 401:
		return Unauthorized
	case 403:
		return RestrictedResource
	case 404:
		return ObjectNotFound
	case 409:
		return Conflict
	case 429:
		return RateLimited
	case 500:
		return InternalServerError
	case 503:
		switch code {
		case "service_unavailable":
			return ServiceUnavailable
		case "database_connection_unavailable":
			return DatabaseConnectionUnavailable
		}
	case 504:
		return GatewayTimeout
	}
	return Unknown
}

// NewError creates the error for an error payload.
func NewError(info ErrorInfo) *Error {
	return &Error{
		Kind:    kindOf(info.Status, info.Code),
		Status:  info.Status,
		Code:    info.Code,
		Message: info.Message,
	}
}

// KindOf returns the kind of a service error,
// or Unknown if err is not a service error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsNotFound tells if the object does not exist
// or is not shared with the integration.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == ObjectNotFound
}

// IsRateLimited tells if the request was rejected because of rate limits.
func IsRateLimited(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == RateLimited
}

// TransportError is returned when a request could not be sent
// or the response could not be read.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%v: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when the response body matches neither the
// expected object nor the error payload.
type DecodeError struct {
	Status int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("response could not be parsed (HTTP %d): %v", e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError tells if err is caused by an unparseable response.
func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}
