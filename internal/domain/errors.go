package domain

import "errors"

// ErrNotFound is returned by repositories when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when a request fails business-rule validation.
var ErrInvalidInput = errors.New("invalid input")
