package models

import "errors"

// ErrNotFound is returned when an operation targets an id that no longer
// exists in the local store. Callers treat it as a no-op, not a failure.
var ErrNotFound = errors.New("entity not found")

// ErrRemoteNotConfigured is returned when an operation needs the remote store
// and no database connection was configured. The local state is unaffected.
var ErrRemoteNotConfigured = errors.New("remote store not configured")
