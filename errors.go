package smithy

import "fmt"

// DeserializationError wraps a lower-level (de)serialization failure,
// optionally carrying a snapshot of the raw bytes that were being consumed
// when the failure occurred, for diagnostics.
type DeserializationError struct {
	Err      error
	Snapshot []byte
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("deserialization failed: %v", e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// GenericAPIError is returned for a modeled error response whose error code
// does not match any type registered in a service's TypeRegistry.
type GenericAPIError struct {
	Code    string
	Message string
	Fault   string
}

func (e *GenericAPIError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode returns the resolved error code, implementing the APIError
// interface generated error types also satisfy.
func (e *GenericAPIError) ErrorCode() string { return e.Code }

// ErrorMessage returns the resolved error message.
func (e *GenericAPIError) ErrorMessage() string { return e.Message }

// ErrorFault returns the classified fault side ("client" or "server").
func (e *GenericAPIError) ErrorFault() string { return e.Fault }

// APIError is the interface generated error shapes implement, letting
// callers inspect the protocol-resolved code/message/fault uniformly
// regardless of the concrete error type.
type APIError interface {
	error
	ErrorCode() string
	ErrorMessage() string
	ErrorFault() string
}
