package models

import "fmt"

// ValidationError is a fatal pre-flight error caused by bad user input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PreconditionError is a fatal error for a missing external tool.
type PreconditionError struct {
	Tool string
	Err  error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("required tool %q is not available: %v", e.Tool, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// ItemFetchError is a per-item download failure (private, deleted,
// geo-restricted, network). The batch continues.
type ItemFetchError struct {
	URL    string
	Reason string
	Err    error
}

func (e *ItemFetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %s", e.URL, e.Reason)
}

func (e *ItemFetchError) Unwrap() error { return e.Err }

// ItemConvertError is a per-item post-processing failure. The batch continues.
type ItemConvertError struct {
	URL    string
	Reason string
	Err    error
}

func (e *ItemConvertError) Error() string {
	return fmt.Sprintf("failed to convert %s: %s", e.URL, e.Reason)
}

func (e *ItemConvertError) Unwrap() error { return e.Err }

// ToolInvocationError is a fatal failure to start or run the external tool.
type ToolInvocationError struct {
	Tool string
	Err  error
}

func (e *ToolInvocationError) Error() string {
	return fmt.Sprintf("%s invocation failed: %v", e.Tool, e.Err)
}

func (e *ToolInvocationError) Unwrap() error { return e.Err }
