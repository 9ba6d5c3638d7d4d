package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kouden-ledger/backend/internal/allocation"
	"github.com/kouden-ledger/backend/internal/httputil"
	"github.com/kouden-ledger/backend/internal/models"
)

func RegisterEntryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsEntries)
		r.GET("", GetEntries)
		r.POST("", CreateEntries)
	}
	{
		r.OPTIONS("/:id", OptionsEntryDetail)
		r.GET("/:id", GetEntry)
	}
	{
		r.OPTIONS("/:id/allocations", OptionsEntryDetail)
		r.GET("/:id/allocations", GetEntryAllocations)
	}
	{
		r.OPTIONS("/:id/total", OptionsEntryDetail)
		r.GET("/:id/total", GetEntryTotal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Router			/v1/entries [options]
func OptionsEntries(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/entries/{id} [options]
// @Router			/v1/entries/{id}/allocations [options]
// @Router			/v1/entries/{id}/total [options]
func OptionsEntryDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create entries
// @Description	Creates new entries. Allocated offerings are managed with the allocation endpoints of offerings.
// @Tags			Entries
// @Produce		json
// @Success		201		{object}	CreateResponse[Entry]
// @Failure		400		{object}	CreateResponse[Entry]
// @Failure		401		{object}	Response[any]
// @Failure		403		{object}	Response[any]
// @Failure		500		{object}	CreateResponse[Entry]
// @Param			entries	body		[]EntryEditable	true	"Entries"
// @Router			/v1/entries [post]
func CreateEntries(c *gin.Context) {
	_, err := writer(c)
	if err != nil {
		fail(c, err)
		return
	}

	var entries []EntryEditable
	err = httputil.BindData(c, &entries)
	if err != nil {
		fail(c, err)
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CreateResponse[Entry]{}

	for _, create := range entries {
		entry := create.model()
		err = models.DB.WithContext(httputil.RequestContext(c)).Create(&entry).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		r.appendData(newEntry(c, entry))
	}

	r.Success = status == http.StatusCreated
	c.JSON(status, r)
}

// @Summary		Get entries
// @Description	Returns a list of entries
// @Tags			Entries
// @Produce		json
// @Success		200			{object}	Response[[]Entry]
// @Failure		400			{object}	Response[any]
// @Failure		500			{object}	Response[any]
// @Param			name		query		string	false	"Filter by name"
// @Param			hasOffering	query		bool	false	"Filter by allocated offerings"
// @Router			/v1/entries [get]
func GetEntries(c *gin.Context) {
	var filter EntryQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		fail(c, err)
		return
	}

	q := models.DB.WithContext(httputil.RequestContext(c)).Order("created_at ASC, name ASC")
	if filter.Name != "" {
		q = q.Where("name = ?", filter.Name)
	}

	if filter.HasOffering != nil {
		q = q.Where("has_offering = ?", *filter.HasOffering)
	}

	var entries []models.Entry
	err := q.Find(&entries).Error
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		data = append(data, newEntry(c, entry))
	}

	respond(c, http.StatusOK, data)
}

// @Summary		Get entry
// @Description	Returns a specific entry
// @Tags			Entries
// @Produce		json
// @Success		200	{object}	Response[Entry]
// @Failure		400	{object}	Response[any]
// @Failure		404	{object}	Response[any]
// @Failure		500	{object}	Response[any]
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/entries/{id} [get]
func GetEntry(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		fail(c, err)
		return
	}

	var entry models.Entry
	err = models.DB.WithContext(httputil.RequestContext(c)).First(&entry, "id = ?", id).Error
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, newEntry(c, entry))
}

// @Summary		Get allocations of an entry
// @Description	Returns the offering shares allocated to an entry, across all offerings
// @Tags			Entries
// @Produce		json
// @Success		200			{object}	Response[[]EntryAllocation]
// @Failure		400			{object}	Response[any]
// @Failure		404			{object}	Response[any]
// @Failure		500			{object}	Response[any]
// @Param			id			path		string	true	"ID formatted as string"
// @Param			provider	query		string	false	"Glob pattern for the provider name, e.g. Yamada*"
// @Param			type		query		string	false	"Offering type"	Enums(FLOWER, FOOD, OTHER)
// @Router			/v1/entries/{id}/allocations [get]
func GetEntryAllocations(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		fail(c, err)
		return
	}

	var filter EntryAllocationQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		fail(c, err)
		return
	}

	allocations, err := service().EntryAllocations(httputil.RequestContext(c), id, allocation.EntryAllocationFilter{
		Provider: filter.Provider,
		Type:     models.OfferingType(filter.Type),
	})
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]EntryAllocation, 0, len(allocations))
	for _, a := range allocations {
		data = append(data, newEntryAllocation(c, a))
	}

	respond(c, http.StatusOK, data)
}

// @Summary		Get total of an entry
// @Description	Returns the amount of the entry plus all offering shares allocated to it
// @Tags			Entries
// @Produce		json
// @Success		200	{object}	Response[Total]
// @Failure		400	{object}	Response[any]
// @Failure		404	{object}	Response[any]
// @Failure		500	{object}	Response[any]
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/entries/{id}/total [get]
func GetEntryTotal(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		fail(c, err)
		return
	}

	total, err := service().EntryTotal(httputil.RequestContext(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	f := currencyFormatter
	respond(c, http.StatusOK, Total{
		BaseAmount:     total.BaseAmount,
		AllocatedTotal: total.AllocatedTotal,
		CombinedTotal:  total.CombinedTotal,
		Currency:       f.Currency(),
		Formatted: FormattedTotal{
			BaseAmount:     f.Format(total.BaseAmount),
			AllocatedTotal: f.Format(total.AllocatedTotal),
			CombinedTotal:  f.Format(total.CombinedTotal),
		},
	})
}
