package domain

import "errors"

var (
	// ErrNotFound indicates the referenced post, comment, author or
	// subscription does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a duplicate like or subscription.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates a request payload that fails validation.
	ErrInvalidInput = errors.New("invalid input")
)
