package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/kouden-ledger/backend/internal/models"
)

type OfferingEditable struct {
	Type         models.OfferingType `json:"type" example:"FLOWER" enums:"FLOWER,FOOD,OTHER" default:"OTHER"` // Kind of the offering. Unknown types are stored as OTHER
	Price        int64               `json:"price" example:"10001" minimum:"0" default:"0"`                   // Price of the offering, distributed across entries by allocations
	ProviderName string              `json:"providerName" example:"Yamada Florist" default:""`                // Who provided the offering
	Note         string              `json:"note" example:"Large arrangement at the entrance" default:""`
}

// model returns the database resource for the API representation of the editable fields
func (editable OfferingEditable) model() models.Offering {
	return models.Offering{
		Type:         editable.Type,
		Price:        editable.Price,
		ProviderName: editable.ProviderName,
		Note:         editable.Note,
	}
}

type OfferingLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/offerings/3b1b8d3e-6e0a-4c2e-9a55-6c4f6a9d8b01"`                    // The offering itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/offerings/3b1b8d3e-6e0a-4c2e-9a55-6c4f6a9d8b01/allocations"` // Allocations of the offering
	Recalculate string `json:"recalculate" example:"https://example.com/api/v1/offerings/3b1b8d3e-6e0a-4c2e-9a55-6c4f6a9d8b01/allocations/recalculate"`
	Integrity   string `json:"integrity" example:"https://example.com/api/v1/allocation-integrity?offering=3b1b8d3e-6e0a-4c2e-9a55-6c4f6a9d8b01"`
}

type Offering struct {
	models.DefaultModel
	OfferingEditable
	Links OfferingLinks `json:"links"`
}

func newOffering(c *gin.Context, model models.Offering) Offering {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/offerings/%s", url, model.ID)

	return Offering{
		DefaultModel: model.DefaultModel,
		OfferingEditable: OfferingEditable{
			Type:         model.Type,
			Price:        model.Price,
			ProviderName: model.ProviderName,
			Note:         model.Note,
		},
		Links: OfferingLinks{
			Self:        self,
			Allocations: self + "/allocations",
			Recalculate: self + "/allocations/recalculate",
			Integrity:   fmt.Sprintf("%s/v1/allocation-integrity?offering=%s", url, model.ID),
		},
	}
}

type OfferingQueryFilter struct {
	Type         string `form:"type"`         // Offering type
	ProviderName string `form:"providerName"` // Exact provider name
}
