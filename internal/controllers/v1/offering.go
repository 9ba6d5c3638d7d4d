package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kouden-ledger/backend/internal/httputil"
	"github.com/kouden-ledger/backend/internal/models"
)

func RegisterOfferingRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsOfferings)
		r.GET("", GetOfferings)
		r.POST("", CreateOfferings)
	}
	{
		r.OPTIONS("/:id", OptionsOfferingDetail)
		r.GET("/:id", GetOffering)
	}

	RegisterAllocationRoutes(r.Group("/:id/allocations"))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Offerings
// @Success		204
// @Router			/v1/offerings [options]
func OptionsOfferings(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Offerings
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/offerings/{id} [options]
func OptionsOfferingDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create offerings
// @Description	Creates new offerings
// @Tags			Offerings
// @Produce		json
// @Success		201			{object}	CreateResponse[Offering]
// @Failure		400			{object}	CreateResponse[Offering]
// @Failure		401			{object}	Response[any]
// @Failure		403			{object}	Response[any]
// @Failure		500			{object}	CreateResponse[Offering]
// @Param			offerings	body		[]OfferingEditable	true	"Offerings"
// @Router			/v1/offerings [post]
func CreateOfferings(c *gin.Context) {
	_, err := writer(c)
	if err != nil {
		fail(c, err)
		return
	}

	var offerings []OfferingEditable
	err = httputil.BindData(c, &offerings)
	if err != nil {
		fail(c, err)
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CreateResponse[Offering]{}

	for _, create := range offerings {
		offering := create.model()
		err = models.DB.WithContext(httputil.RequestContext(c)).Create(&offering).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		r.appendData(newOffering(c, offering))
	}

	r.Success = status == http.StatusCreated
	c.JSON(status, r)
}

// @Summary		Get offerings
// @Description	Returns a list of offerings
// @Tags			Offerings
// @Produce		json
// @Success		200				{object}	Response[[]Offering]
// @Failure		400				{object}	Response[any]
// @Failure		500				{object}	Response[any]
// @Param			type			query		string	false	"Filter by type"	Enums(FLOWER, FOOD, OTHER)
// @Param			providerName	query		string	false	"Filter by provider name"
// @Router			/v1/offerings [get]
func GetOfferings(c *gin.Context) {
	var filter OfferingQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		fail(c, err)
		return
	}

	q := models.DB.WithContext(httputil.RequestContext(c)).Order("created_at ASC, id ASC")
	if filter.Type != "" {
		q = q.Where("type = ?", strings.ToUpper(filter.Type))
	}

	if filter.ProviderName != "" {
		q = q.Where("provider_name = ?", filter.ProviderName)
	}

	var offerings []models.Offering
	err := q.Find(&offerings).Error
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]Offering, 0, len(offerings))
	for _, offering := range offerings {
		data = append(data, newOffering(c, offering))
	}

	respond(c, http.StatusOK, data)
}

// @Summary		Get offering
// @Description	Returns a specific offering
// @Tags			Offerings
// @Produce		json
// @Success		200	{object}	Response[Offering]
// @Failure		400	{object}	Response[any]
// @Failure		404	{object}	Response[any]
// @Failure		500	{object}	Response[any]
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/offerings/{id} [get]
func GetOffering(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		fail(c, err)
		return
	}

	var offering models.Offering
	err = models.DB.WithContext(httputil.RequestContext(c)).First(&offering, "id = ?", id).Error
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, newOffering(c, offering))
}
