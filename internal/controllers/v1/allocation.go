package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kouden-ledger/backend/internal/allocation"
	"github.com/kouden-ledger/backend/internal/httputil"
)

// RegisterAllocationRoutes registers the allocation routes of an offering.
// The group must have an :id parameter for the offering.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAllocations)
		r.GET("", GetAllocations)
		r.POST("", CreateAllocations)
		r.DELETE("", DeleteAllocations)
	}
	{
		r.OPTIONS("/recalculate", OptionsRecalculate)
		r.POST("/recalculate", RecalculateAllocations)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Param			id	path	string	true	"ID of the offering"
// @Router			/v1/offerings/{id}/allocations [options]
func OptionsAllocations(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Param			id	path	string	true	"ID of the offering"
// @Router			/v1/offerings/{id}/allocations/recalculate [options]
func OptionsRecalculate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get allocations of an offering
// @Description	Returns the allocations of an offering in participant order
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	Response[[]Allocation]
// @Failure		400	{object}	Response[any]
// @Failure		404	{object}	Response[any]
// @Failure		500	{object}	Response[any]
// @Param			id	path		string	true	"ID of the offering"
// @Router			/v1/offerings/{id}/allocations [get]
func GetAllocations(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		fail(c, err)
		return
	}

	allocations, err := service().OfferingAllocations(httputil.RequestContext(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, newAllocations(c, allocations))
}

// @Summary		Allocate an offering
// @Description	Distributes the price of the offering across entries. All existing allocations of the offering are replaced.
// @Tags			Allocations
// @Produce		json
// @Success		201			{object}	Response[[]Allocation]
// @Failure		400			{object}	Response[any]
// @Failure		401			{object}	Response[any]
// @Failure		403			{object}	Response[any]
// @Failure		404			{object}	Response[any]
// @Failure		500			{object}	Response[any]
// @Param			id			path		string			true	"ID of the offering"
// @Param			allocation	body		AllocateBody	true	"Allocation"
// @Router			/v1/offerings/{id}/allocations [post]
func CreateAllocations(c *gin.Context) {
	actor, err := writer(c)
	if err != nil {
		fail(c, err)
		return
	}

	id, err := bindID(c)
	if err != nil {
		fail(c, err)
		return
	}

	var body AllocateBody
	err = httputil.BindData(c, &body)
	if err != nil {
		fail(c, err)
		return
	}

	allocations, err := service().Allocate(httputil.RequestContext(c), actor, allocation.AllocateRequest{
		OfferingID:           id,
		ParticipantIDs:       body.ParticipantIDs,
		Method:               allocation.Method(body.Method),
		ManualAmounts:        body.ManualAmounts,
		PrimaryContributorID: body.PrimaryContributorID,
		ContributionNotes:    body.ContributionNotes,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, newAllocations(c, allocations))
}

// @Summary		Remove the allocations of an offering
// @Description	Deletes all allocations of the offering
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	Response[any]
// @Failure		400	{object}	Response[any]
// @Failure		401	{object}	Response[any]
// @Failure		403	{object}	Response[any]
// @Failure		404	{object}	Response[any]
// @Failure		500	{object}	Response[any]
// @Param			id	path		string	true	"ID of the offering"
// @Router			/v1/offerings/{id}/allocations [delete]
func DeleteAllocations(c *gin.Context) {
	actor, err := writer(c)
	if err != nil {
		fail(c, err)
		return
	}

	id, err := bindID(c)
	if err != nil {
		fail(c, err)
		return
	}

	err = service().Remove(httputil.RequestContext(c), actor, id)
	if err != nil {
		fail(c, err)
		return
	}

	respond[any](c, http.StatusOK, nil)
}

// @Summary		Recalculate the allocations of an offering
// @Description	Distributes the price of the offering across the current participants with a different method
// @Tags			Allocations
// @Produce		json
// @Success		200			{object}	Response[[]Allocation]
// @Failure		400			{object}	Response[any]
// @Failure		401			{object}	Response[any]
// @Failure		403			{object}	Response[any]
// @Failure		404			{object}	Response[any]
// @Failure		500			{object}	Response[any]
// @Param			id			path		string			true	"ID of the offering"
// @Param			allocation	body		RecalculateBody	true	"Distribution"
// @Router			/v1/offerings/{id}/allocations/recalculate [post]
func RecalculateAllocations(c *gin.Context) {
	actor, err := writer(c)
	if err != nil {
		fail(c, err)
		return
	}

	id, err := bindID(c)
	if err != nil {
		fail(c, err)
		return
	}

	var body RecalculateBody
	err = httputil.BindData(c, &body)
	if err != nil {
		fail(c, err)
		return
	}

	allocations, err := service().Recalculate(httputil.RequestContext(c), actor, allocation.RecalculateRequest{
		OfferingID:    id,
		Method:        allocation.Method(body.Method),
		ManualAmounts: body.ManualAmounts,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, newAllocations(c, allocations))
}
