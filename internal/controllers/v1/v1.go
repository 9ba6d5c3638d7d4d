package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kouden-ledger/backend/internal/allocation"
	"github.com/kouden-ledger/backend/internal/httputil"
	"github.com/kouden-ledger/backend/internal/models"
	"github.com/kouden-ledger/backend/internal/money"
)

type Links struct {
	Entries             string `json:"entries" example:"https://example.com/api/v1/entries"`                          // URL of entry list endpoint
	Offerings           string `json:"offerings" example:"https://example.com/api/v1/offerings"`                      // URL of offering list endpoint
	AllocationIntegrity string `json:"allocationIntegrity" example:"https://example.com/api/v1/allocation-integrity"` // URL of the allocation integrity check
}

type RootResponse struct {
	Links Links `json:"links"` // Links for the v1 API
}

// currencyFormatter renders the amounts of entry totals.
var currencyFormatter money.Formatter

// RegisterRoutes registers all routes of the v1 API. Totals are
// formatted with f.
func RegisterRoutes(r *gin.RouterGroup, f money.Formatter) {
	currencyFormatter = f

	r.GET("", Get)
	r.OPTIONS("", Options)

	RegisterEntryRoutes(r.Group("/entries"))
	RegisterOfferingRoutes(r.Group("/offerings"))
	RegisterIntegrityRoutes(r.Group("/allocation-integrity"))
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: Links{
			Entries:             url + "/v1/entries",
			Offerings:           url + "/v1/offerings",
			AllocationIntegrity: url + "/v1/allocation-integrity",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// bindID returns the ID from the request path.
func bindID(c *gin.Context) (uuid.UUID, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}

	return uri.ID.UUID, nil
}

func service() allocation.Service {
	return allocation.New(models.DB)
}
