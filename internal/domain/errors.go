package domain

import "errors"

// ErrNotFound is returned by repositories when a record does not exist.
// Usecases translate it into the HTTP 404 application error.
var ErrNotFound = errors.New("record not found")
