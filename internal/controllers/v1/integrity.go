package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kouden-ledger/backend/internal/httputil"
)

func RegisterIntegrityRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsIntegrity)
	r.GET("", GetIntegrity)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocation-integrity [options]
func OptionsIntegrity(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Check allocation integrity
// @Description	Verifies that the allocations of offerings add up to their price. Without the offering parameter, all offerings are checked. Offerings without allocations are reported as invalid.
// @Tags			Allocations
// @Produce		json
// @Success		200			{object}	Response[[]IntegrityReport]
// @Failure		400			{object}	Response[any]
// @Failure		404			{object}	Response[any]
// @Failure		500			{object}	Response[any]
// @Param			offering	query		string	false	"ID of the offering to check"
// @Router			/v1/allocation-integrity [get]
func GetIntegrity(c *gin.Context) {
	var filter IntegrityQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		fail(c, httputil.ErrInvalidUUID)
		return
	}

	reports, err := service().CheckIntegrity(httputil.RequestContext(c), filter.OfferingID.Ptr())
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]IntegrityReport, 0, len(reports))
	for _, r := range reports {
		data = append(data, newIntegrityReport(r))
	}

	respond(c, http.StatusOK, data)
}
