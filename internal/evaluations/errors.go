package evaluations

import "errors"

// ErrNotFound indicates the evaluation does not exist or belongs to
// another client.
var ErrNotFound = errors.New("evaluation not found")
