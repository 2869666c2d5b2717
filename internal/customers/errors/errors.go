package errors

import "errors"

var ErrNotFound = errors.New("customer not found")
