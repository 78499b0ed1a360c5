package model

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrConflict         = errors.New("conflict")
	ErrAlreadyRecycled  = errors.New("item already marked as recycled")
	ErrNotAuthenticated = errors.New("not authenticated")
)
