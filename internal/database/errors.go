package database

import "errors"

// ErrURLNotFound is returned when an attempt is made to retrieve
// a URL using a short code that doesn't exist.
var ErrURLNotFound = errors.New("url not found")
