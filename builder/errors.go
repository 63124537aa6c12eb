// File: errors.go
// Role: sentinel errors for the builder package.
//
// Error policy (strict, teacher-of-record: core's sentinel discipline):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); never string comparison.
//   - Implementations attach context via %w wrapping, never at the
//     definition site.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter is below the minimum the
// requested constructor supports (Path n<2, Cycle n<3, Star n<2,
// Complete n<2).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrUnknownKind indicates the resolved edge kind is neither
// core.KindDirected nor core.KindUndirected.
var ErrUnknownKind = errors.New("builder: unknown edge kind")

// ErrConstructFailed indicates BuildGraph was given an unusable
// constructor (currently: a nil Constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
