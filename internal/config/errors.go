package config

import (
	"errors"
	"fmt"
)

// Sentinel errors of the configuration model. Detailed errors returned by
// this package wrap or match them, so callers can use [errors.Is].
var (
	// ErrSchemaViolation indicates a wrong type or an invalid value at a
	// schema leaf (for example a string where a boolean is expected, a
	// malformed URL or an unknown language code).
	ErrSchemaViolation = errors.New("schema violation")
	// ErrUnknownKey indicates an override path that the schema does not
	// declare.
	ErrUnknownKey = errors.New("unknown configuration key")
	// ErrNotInitialized is returned by the accessor before the resolved
	// configuration has been stored.
	ErrNotInitialized = errors.New("configuration is not initialized")
	// ErrAlreadyInitialized is returned by a second Init on the same holder.
	ErrAlreadyInitialized = errors.New("configuration is already initialized")
	// ErrUnsupportedFormat indicates an override document whose format cannot
	// be derived from its path or content type.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
	// ErrRemoteSource indicates a failure fetching a remote override document.
	ErrRemoteSource = errors.New("error fetching remote configuration")
	// ErrInvalidServerConfigs indicates invalid runtime settings of the
	// serving process (empty address, non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

// SchemaViolationError describes a leaf that does not satisfy the schema.
type SchemaViolationError struct {
	// Path is the dotted document path (brand.og.url), or the environment
	// variable name for environment overrides.
	Path string
	// Expected names the expected type, e.g. "boolean".
	Expected string
	// Actual names the supplied type, or quotes the supplied value.
	Actual string
	// Reason is set for semantic failures where the type itself is right.
	Reason string
}

func (e *SchemaViolationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s at %q: %s (got %s)", ErrSchemaViolation, e.Path, e.Reason, e.Actual)
	}
	return fmt.Sprintf("%s at %q: expected %s, got %s", ErrSchemaViolation, e.Path, e.Expected, e.Actual)
}

// Is reports whether target is [ErrSchemaViolation].
func (e *SchemaViolationError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// UnknownKeyError describes an override path absent from the schema.
type UnknownKeyError struct {
	Path string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownKey, e.Path)
}

// Is reports whether target is [ErrUnknownKey].
func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrUnknownKey
}
