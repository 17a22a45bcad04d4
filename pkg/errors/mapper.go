package errors

import (
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// Mapper maps domain errors to HTTP status codes
type Mapper struct {
	logger zerolog.Logger
}

// NewMapper creates a new error mapper
func NewMapper(logger zerolog.Logger) *Mapper {
	return &Mapper{logger: logger}
}

// MapErrorToHTTP maps an error to HTTP status code and message
func (m *Mapper) MapErrorToHTTP(err error) (int, string) {
	switch {
	case err == nil:
		return fasthttp.StatusOK, ""
	case IsValidationError(err):
		return fasthttp.StatusBadRequest, err.Error()
	case IsNotFoundError(err):
		return fasthttp.StatusNotFound, err.Error()
	case IsUnavailableError(err):
		return fasthttp.StatusServiceUnavailable, err.Error()
	default:
		m.logger.Error().Err(err).Msg("internal server error")
		return fasthttp.StatusInternalServerError, "internal server error"
	}
}
