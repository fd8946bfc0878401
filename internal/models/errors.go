package models

import "errors"

// ErrNotFound is returned by record stores when no row matches.
var ErrNotFound = errors.New("record not found")
