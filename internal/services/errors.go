package services

import (
	"errors"
	"fmt"
)

// Business-rule failures returned by the services. Handlers map each one to
// a fixed status code with errors.Is; anything else is a store failure and
// surfaces as a 500.
var (
	ErrInvalidID            = errors.New("invalid id format")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("not authorized")
	ErrJobInactive          = errors.New("job is no longer accepting applications")
	ErrDuplicateApplication = errors.New("already applied for this job")
	ErrInvalidUpdate        = errors.New("invalid updates")

	// ErrApplicationNotFound matches ErrNotFound under errors.Is but lets
	// handlers pick the application-specific message.
	ErrApplicationNotFound = fmt.Errorf("application %w", ErrNotFound)
)
