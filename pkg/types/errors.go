package types

import "errors"

var (
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrAccountNotFound  = errors.New("account not found")
)
