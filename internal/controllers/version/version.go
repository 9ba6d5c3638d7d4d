package version

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/kouden-ledger/backend/internal/httputil"
)

// currentAPI is the newest API version served by the backend.
const currentAPI = "v1"

// Software version, set by RegisterRoutes
var softwareVersion = "0.0.0"

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version   string `json:"version" example:"1.1.0"`      // The running version of the ledger backend
	API       string `json:"api" example:"v1"`             // The newest API version served
	GoVersion string `json:"goVersion" example:"go1.25.5"` // Go version the backend was built with
}

// RegisterRoutes registers the version routes. version is reported
// as the software version, it is set at build time with -ldflags.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	softwareVersion = version

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Backend version
// @Description	Returns the software version of the backend and the API version it serves
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Data: Object{
			Version:   softwareVersion,
			API:       currentAPI,
			GoVersion: runtime.Version(),
		},
	})
}
