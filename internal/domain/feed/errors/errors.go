package errors

import (
	"errors"

	pkgerrors "github.com/Conte777/tweetfeed/pkg/errors"
)

var (
	// ErrRefreshFailed is the single error class a refresh cycle reports
	ErrRefreshFailed = errors.New("refresh failed")

	// ErrMalformedFeed is returned when the feed document cannot be parsed
	ErrMalformedFeed = pkgerrors.NewValidationError("malformed feed document")

	// ErrTargetMissing is returned when the page does not declare the written element
	ErrTargetMissing = pkgerrors.NewNotFoundError("page element not found")

	// ErrSourceUnavailable is returned when the feed document cannot be retrieved
	ErrSourceUnavailable = pkgerrors.NewUnavailableError("feed source unavailable")

	// ErrStoreUnavailable is returned when the page store cannot be reached
	ErrStoreUnavailable = pkgerrors.NewUnavailableError("page store unavailable")
)
