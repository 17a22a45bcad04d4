package errors

import (
	pkgerrors "github.com/Conte777/tweetfeed/pkg/errors"
)

var (
	// ErrSeenStoreUnavailable is returned when seen ids cannot be read or written
	ErrSeenStoreUnavailable = pkgerrors.NewUnavailableError("seen tweet store unavailable")

	// ErrCorruptSeenFile is returned when the seen file is not a JSON array of ids
	ErrCorruptSeenFile = pkgerrors.NewValidationError("seen tweet file is corrupt")
)
