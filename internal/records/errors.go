package records

import "errors"

// ErrNotFound covers both a missing record file and one that failed to
// decode; corrupt files are logged at the store and reported as absent.
var ErrNotFound = errors.New("record not found")
