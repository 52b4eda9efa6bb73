package envkit

import "errors"

// Package-specific errors. All of them are returned synchronously to the
// immediate caller and can be compared with errors.Is.
var (
	// ErrUnknownTag is returned by ParseTag when the input matches no alias
	// of any deployment tag.
	ErrUnknownTag = errors.New("unknown environment tag")

	// ErrValueNotFound is returned by Context.GetOrError when neither a
	// per-tag entry nor a default value exists.
	ErrValueNotFound = errors.New("context value not found")

	// ErrNoCurrentTag is returned by EnvironmentBuilder.Build when no current
	// tag was set on the builder.
	ErrNoCurrentTag = errors.New("environment has no current tag")
)
