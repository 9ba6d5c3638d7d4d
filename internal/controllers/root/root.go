package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kouden-ledger/backend/internal/httputil"
	"github.com/kouden-ledger/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"`
}

// Links lists the general endpoints and the resources of the ledger.
type Links struct {
	Docs                string `json:"docs" example:"https://example.com/api/docs/index.html"`                        // Swagger API documentation
	Healthz             string `json:"healthz" example:"https://example.com/api/healthz"`                             // Healthz endpoint
	Version             string `json:"version" example:"https://example.com/api/version"`                             // Endpoint returning the version of the backend
	Metrics             string `json:"metrics" example:"https://example.com/api/metrics"`                             // Endpoint returning Prometheus metrics
	V1                  string `json:"v1" example:"https://example.com/api/v1"`                                       // List endpoint for all v1 endpoints
	Entries             string `json:"entries" example:"https://example.com/api/v1/entries"`                          // Condolence entries
	Offerings           string `json:"offerings" example:"https://example.com/api/v1/offerings"`                      // Shared offerings
	AllocationIntegrity string `json:"allocationIntegrity" example:"https://example.com/api/v1/allocation-integrity"` // Checks that offering allocations add up to their price
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing the general endpoints and the resources of the ledger
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))
	v1 := url + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:                url + "/docs/index.html",
			Healthz:             url + "/healthz",
			Version:             url + "/version",
			Metrics:             url + "/metrics",
			V1:                  v1,
			Entries:             v1 + "/entries",
			Offerings:           v1 + "/offerings",
			AllocationIntegrity: v1 + "/allocation-integrity",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
