package v1

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/kouden-ledger/backend/internal/allocation"
	"github.com/kouden-ledger/backend/internal/models"
	"github.com/rs/zerolog/log"
)

var errUnauthenticated = errors.New("the X-User-ID header must be set to a valid UUID for this request")

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, allocation.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, allocation.ErrNotFound), errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, allocation.ErrPersistence), errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

// fail logs the error and writes the error response.
func fail(c *gin.Context, err error) {
	code := status(err)

	event := log.Debug()
	if code >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Str("request-id", requestid.Get(c)).Int("status", code).Msgf("%T: %v", err, err.Error())

	s := err.Error()
	c.JSON(code, Response[any]{
		Error: &s,
	})
}

func respond[T any](c *gin.Context, code int, data T) {
	c.JSON(code, Response[T]{
		Success: true,
		Data:    data,
	})
}
