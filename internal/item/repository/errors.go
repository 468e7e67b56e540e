package repository

import "errors"

// ErrNotFound signals that no document matched the given filter. Any
// other error returned by a Repository is a store-level failure and is
// passed through as-is.
var ErrNotFound = errors.New("record not found")
