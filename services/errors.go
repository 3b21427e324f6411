package services

import "errors"

// Sentinel errors classifying service failures. Handlers map these onto
// HTTP statuses; anything unwrapped is treated as unexpected.
var (
	// ErrNotFound: a referenced Project/Team/Task/User/log does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict: the action is invalid for the current state, e.g.
	// completing a task that is not in progress or double-assigning a
	// project.
	ErrConflict = errors.New("conflict")
	// ErrDenied: the credential is valid but the caller lacks the role.
	ErrDenied = errors.New("unauthorized")
	// ErrInvalid: the request body fails shape or format rules beyond what
	// binding catches (deadlines, membership rules).
	ErrInvalid = errors.New("invalid request")
)
