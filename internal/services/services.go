// Package services holds one type per user-facing area. Each method runs a
// single sequential chain of store calls.
package services

import "errors"

var (
	ErrForbidden          = errors.New("not allowed to act on this resource")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrBlankText          = errors.New("text must not be blank")
)
