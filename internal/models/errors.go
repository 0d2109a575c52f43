package models

import "errors"

// Domain errors shared across layers. Handlers map these to HTTP statuses;
// anything else surfacing from a repository is treated as a storage failure.
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrTaskNotFound  = errors.New("task not found")
	ErrValidation    = errors.New("invalid input")
)
