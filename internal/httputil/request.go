package httputil

import (
	"context"
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/kouden-ledger/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data, which must be a pointer.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

// RequestContext returns the context of the request with the request ID
// attached, so that database logs can be correlated with the request.
func RequestContext(c *gin.Context) context.Context {
	return context.WithValue(c.Request.Context(), models.RequestIDKey, requestid.Get(c))
}
