package service

import "errors"

// ErrStorageUnavailable is returned by operations that need the database
// when the service runs without one.
var ErrStorageUnavailable = errors.New("storage unavailable")
