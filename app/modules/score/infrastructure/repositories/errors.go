package scoredb

import "errors"

// ErrNotFound indicates the requested score does not exist.
var ErrNotFound = errors.New("score record not found")
