package domain

import "errors"

// ErrNotFound is returned when an entity referenced by id does not exist
var ErrNotFound = errors.New("not found")

// ErrInvalid wraps every entity validation failure
var ErrInvalid = errors.New("invalid")
