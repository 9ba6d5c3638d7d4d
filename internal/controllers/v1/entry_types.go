package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/kouden-ledger/backend/internal/models"
)

type EntryEditable struct {
	Name   string `json:"name" example:"Yamada Taro" default:""`          // Name of the person the condolence gift is from
	Amount int64  `json:"amount" example:"10000" minimum:"0" default:"0"` // Amount of the condolence gift
	Note   string `json:"note" example:"Colleague of the deceased" default:""`
}

// model returns the database resource for the API representation of the editable fields
func (editable EntryEditable) model() models.Entry {
	return models.Entry{
		Name:   editable.Name,
		Amount: editable.Amount,
		Note:   editable.Note,
	}
}

type EntryLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/entries/0c2ae4e0-1d55-4d43-b54e-f9b3e2b9fd29"`                    // The entry itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/entries/0c2ae4e0-1d55-4d43-b54e-f9b3e2b9fd29/allocations"` // Offering shares allocated to the entry
	Total       string `json:"total" example:"https://example.com/api/v1/entries/0c2ae4e0-1d55-4d43-b54e-f9b3e2b9fd29/total"`             // Total amount of the entry
}

type Entry struct {
	models.DefaultModel
	EntryEditable
	HasOffering bool       `json:"hasOffering" example:"true"` // If any offering is allocated to the entry
	Links       EntryLinks `json:"links"`
}

func newEntry(c *gin.Context, model models.Entry) Entry {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/entries/%s", url, model.ID)

	return Entry{
		DefaultModel: model.DefaultModel,
		EntryEditable: EntryEditable{
			Name:   model.Name,
			Amount: model.Amount,
			Note:   model.Note,
		},
		HasOffering: model.HasOffering,
		Links: EntryLinks{
			Self:        self,
			Allocations: self + "/allocations",
			Total:       self + "/total",
		},
	}
}

type EntryQueryFilter struct {
	Name        string `form:"name"`        // Exact name
	HasOffering *bool  `form:"hasOffering"` // Only entries with or without allocated offerings
}

type EntryAllocationQueryFilter struct {
	Provider string `form:"provider"` // Glob pattern for the provider name
	Type     string `form:"type"`     // Offering type
}

type Total struct {
	BaseAmount     int64          `json:"baseAmount" example:"10000"`    // Amount of the entry itself
	AllocatedTotal int64          `json:"allocatedTotal" example:"5000"` // Sum of all offering shares allocated to the entry
	CombinedTotal  int64          `json:"combinedTotal" example:"15000"` // Sum of both
	Currency       string         `json:"currency" example:"JPY"`        // ISO 4217 code of the currency
	Formatted      FormattedTotal `json:"formatted"`                     // Amounts formatted for display
}

type FormattedTotal struct {
	BaseAmount     string `json:"baseAmount" example:"￥ 10,000"`
	AllocatedTotal string `json:"allocatedTotal" example:"￥ 5,000"`
	CombinedTotal  string `json:"combinedTotal" example:"￥ 15,000"`
}
