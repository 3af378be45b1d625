// Package repositories holds the Mongo data access layer. Each repository
// owns one collection; services never touch the driver directly.
package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("repositories: not found")
