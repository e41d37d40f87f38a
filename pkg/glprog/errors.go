package glprog

import "errors"

var (
	// ErrUniformNotFound is returned when a uniform is not active in the
	// linked program, usually because the shader never reads it.
	ErrUniformNotFound = errors.New("glprog: uniform location not found")

	// ErrExtensionUnavailable is returned when a required GL extension is
	// not supported by the context.
	ErrExtensionUnavailable = errors.New("glprog: extension unavailable")
)
