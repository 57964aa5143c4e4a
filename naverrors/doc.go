// Package naverrors provides structured error types for address resolution.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of failures and render each one appropriately.
//
// # Error Categories
//
//   - TransformError: document dereferencing failures (fatal to loading that
//     one document, never to the process)
//   - NotFoundError: unknown spec slug
//   - FieldNotFoundError, PathNotFoundError: missing document nodes
//   - InvalidComponentTypeError, ComponentTypeNotFoundError,
//     NoComponentsOfTypeError: component category failures
//   - NoValidMethodsError, NoValidNamesError: multi-value selectors where no
//     requested key matched
//   - EmptySelectorError: an exploded URI segment with no usable values
//
// # Usage with errors.Is
//
//	_, err := engine.Resolve(addr)
//	if errors.Is(err, naverrors.ErrResolution) {
//	    // every resolution failure is deterministic and non-retryable
//	}
package naverrors
