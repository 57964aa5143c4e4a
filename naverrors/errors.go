package naverrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrTransform indicates a document dereferencing failure.
	ErrTransform = errors.New("transform error")

	// ErrNotFound indicates an unknown spec slug.
	ErrNotFound = errors.New("spec not found")

	// ErrResolution indicates an address that could not be resolved against
	// its document. All resolution failures are deterministic per input.
	ErrResolution = errors.New("resolution error")

	// ErrAddress indicates a malformed or empty address component.
	ErrAddress = errors.New("address error")
)

// TransformError represents a failure to produce a dereferenced document.
// This includes dangling $ref pointers and unregistered source formats.
type TransformError struct {
	// Source is the file path or URL the document was loaded from
	Source string
	// Ref is the reference string that failed to resolve, if any
	Ref string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TransformError) Error() string {
	msg := "transform error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Ref != "" {
		msg += " at $ref " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TransformError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TransformError) Is(target error) bool {
	return target == ErrTransform
}

// NotFoundError indicates the requested spec slug is not registered.
type NotFoundError struct {
	// Slug is the spec identifier that was requested
	Slug string
	// Available lists registered slugs in insertion order
	Available []string
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("Spec not found: %s", e.Slug)
	if len(e.Available) > 0 {
		msg += ". Available specs: " + strings.Join(e.Available, ", ")
	} else {
		msg += ". No specs are loaded"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// FieldNotFoundError indicates an unknown top-level document field.
type FieldNotFoundError struct {
	// Field is the requested top-level field name
	Field string
}

// Error returns a human-readable error message.
func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("Field not found in specification: %s", e.Field)
}

// Is reports whether target matches this error type.
func (e *FieldNotFoundError) Is(target error) bool {
	return target == ErrResolution
}

// PathNotFoundError indicates the requested path is not declared in the
// document's paths object.
type PathNotFoundError struct {
	// Path is the decoded, slash-prefixed path that was requested
	Path string
}

// Error returns a human-readable error message.
func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("Path not found in specification: %s", e.Path)
}

// Is reports whether target matches this error type.
func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrResolution
}

// InvalidComponentTypeError indicates a component type outside the fixed
// OpenAPI component category set. This check never touches the document.
type InvalidComponentTypeError struct {
	// Type is the requested component type
	Type string
	// Valid lists the allowed component categories
	Valid []string
}

// Error returns a human-readable error message.
func (e *InvalidComponentTypeError) Error() string {
	msg := fmt.Sprintf("Invalid component type: %s", e.Type)
	if len(e.Valid) > 0 {
		msg += ". Valid types: " + strings.Join(e.Valid, ", ")
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidComponentTypeError) Is(target error) bool {
	return target == ErrResolution
}

// ComponentTypeNotFoundError indicates a valid component type that the loaded
// document does not declare at all.
type ComponentTypeNotFoundError struct {
	// Type is the requested component type
	Type string
	// Available lists the component types the document declares, in
	// document order
	Available []string
}

// Error returns a human-readable error message.
func (e *ComponentTypeNotFoundError) Error() string {
	msg := fmt.Sprintf("Component type not found in specification: %s", e.Type)
	if len(e.Available) > 0 {
		msg += ". Available types: " + strings.Join(e.Available, ", ")
	} else {
		msg += ". The specification declares no components"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ComponentTypeNotFoundError) Is(target error) bool {
	return target == ErrResolution
}

// NoComponentsOfTypeError indicates a component type the document declares
// but whose collection is empty. Observably distinct from
// ComponentTypeNotFoundError.
type NoComponentsOfTypeError struct {
	// Type is the requested component type
	Type string
}

// Error returns a human-readable error message.
func (e *NoComponentsOfTypeError) Error() string {
	return fmt.Sprintf("No components of type %s are defined in the specification", e.Type)
}

// Is reports whether target matches this error type.
func (e *NoComponentsOfTypeError) Is(target error) bool {
	return target == ErrResolution
}

// NoValidMethodsError indicates a multi-method request where none of the
// requested methods is declared on the path item.
type NoValidMethodsError struct {
	// Path is the decoded, slash-prefixed path
	Path string
	// Requested lists the methods as given in the request, original order
	Requested []string
	// Available lists the declared methods in canonical method order
	Available []string
}

// Error returns a human-readable error message. Requested methods are
// enumerated as given, available methods in canonical order.
func (e *NoValidMethodsError) Error() string {
	return fmt.Sprintf("None of the requested methods (%s) are valid for path %s. Available methods: %s",
		strings.Join(e.Requested, ", "), e.Path, strings.Join(e.Available, ", "))
}

// Is reports whether target matches this error type.
func (e *NoValidMethodsError) Is(target error) bool {
	return target == ErrResolution
}

// NoValidNamesError indicates a multi-name component request where none of
// the requested names exists in the component map.
type NoValidNamesError struct {
	// Type is the component type that was addressed
	Type string
	// Requested lists the names as given in the request, original order
	Requested []string
	// Available lists the component map's keys in document order
	Available []string
}

// Error returns a human-readable error message.
func (e *NoValidNamesError) Error() string {
	return fmt.Sprintf("None of the requested names (%s) are valid for component type %s. Available names: %s",
		strings.Join(e.Requested, ", "), e.Type, strings.Join(e.Available, ", "))
}

// Is reports whether target matches this error type.
func (e *NoValidNamesError) Is(target error) bool {
	return target == ErrResolution
}

// EmptySelectorError indicates an exploded URI segment with zero non-empty
// elements after trimming.
type EmptySelectorError struct {
	// Kind names the selector variable, e.g. "method" or "name"
	Kind string
}

// Error returns a human-readable error message.
func (e *EmptySelectorError) Error() string {
	return fmt.Sprintf("Empty selector: at least one %s must be provided", e.Kind)
}

// Is reports whether target matches this error type.
func (e *EmptySelectorError) Is(target error) bool {
	return target == ErrAddress
}
