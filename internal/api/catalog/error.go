package catalog

import "errors"

var (
	ErrTestNotFound = errors.New("movement test not found")
	ErrAreaNotFound = errors.New("mobility area not found")
)
