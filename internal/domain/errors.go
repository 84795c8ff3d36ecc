package domain

import "errors"

// Sentinel errors shared across repositories and usecases.
// Repositories return them raw; usecases wrap them with apperror
// so the HTTP layer can map them to status codes without losing
// errors.Is comparability.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrEmailTaken           = errors.New("email already exists")
	ErrDuplicateApplication = errors.New("already applied for this job")
	ErrJobClosed            = errors.New("job is closed")
	ErrAlreadyWithdrawn     = errors.New("application already withdrawn")
)
