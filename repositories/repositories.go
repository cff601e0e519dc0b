// Package repositories holds the gorm-backed data access layer. Every method
// that touches user-owned rows takes the owner id as an explicit parameter;
// a row belonging to someone else is reported as ErrNotFound, the same as a
// row that does not exist.
package repositories

import "errors"

var ErrNotFound = errors.New("record not found")
