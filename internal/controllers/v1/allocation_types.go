package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kouden-ledger/backend/internal/allocation"
	"github.com/kouden-ledger/backend/internal/models"
	kuuid "github.com/kouden-ledger/backend/internal/uuid"
)

type AllocateBody struct {
	ParticipantIDs       []uuid.UUID          `json:"participantIds" example:"0c2ae4e0-1d55-4d43-b54e-f9b3e2b9fd29"`                         // Entries the offering is distributed across, in order
	Method               string               `json:"method" example:"equal" enums:"equal,weighted,manual"`                                  // Distribution method
	ManualAmounts        []int64              `json:"manualAmounts" example:"6000"`                                                          // Amounts per participant, required for the manual method
	PrimaryContributorID *uuid.UUID           `json:"primaryContributorId" example:"0c2ae4e0-1d55-4d43-b54e-f9b3e2b9fd29"`                   // Defaults to the first participant
	ContributionNotes    map[uuid.UUID]string `json:"contributionNotes" example:"0c2ae4e0-1d55-4d43-b54e-f9b3e2b9fd29:Paid the arrangement"` // Notes per participant
}

type RecalculateBody struct {
	Method        string  `json:"method" example:"manual" enums:"equal,weighted,manual"` // Distribution method
	ManualAmounts []int64 `json:"manualAmounts" example:"6000"`                          // Amounts per participant, required for the manual method
}

type AllocationLinks struct {
	Offering    string `json:"offering" example:"https://example.com/api/v1/offerings/3b1b8d3e-6e0a-4c2e-9a55-6c4f6a9d8b01"`  // The allocated offering
	Beneficiary string `json:"beneficiary" example:"https://example.com/api/v1/entries/0c2ae4e0-1d55-4d43-b54e-f9b3e2b9fd29"` // The entry the share is allocated to
}

type Allocation struct {
	ID                   uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	OfferingID           uuid.UUID       `json:"offeringId" example:"3b1b8d3e-6e0a-4c2e-9a55-6c4f6a9d8b01"`
	BeneficiaryID        uuid.UUID       `json:"beneficiaryId" example:"0c2ae4e0-1d55-4d43-b54e-f9b3e2b9fd29"`
	AllocatedAmount      int64           `json:"allocatedAmount" example:"3334"`
	AllocationRatio      float64         `json:"allocationRatio" example:"0.33336666"`
	IsPrimaryContributor bool            `json:"isPrimaryContributor" example:"true"`
	ContributionNotes    string          `json:"contributionNotes" example:"Paid the arrangement"`
	CreatedBy            uuid.UUID       `json:"createdBy" example:"a3b5e0c2-7b1c-4f57-9d56-3a1f0e2d4c6b"` // The user that created the allocation
	CreatedAt            time.Time       `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`
	Links                AllocationLinks `json:"links"`
}

func newAllocation(c *gin.Context, model models.Allocation) Allocation {
	url := c.GetString(string(models.DBContextURL))

	return Allocation{
		ID:                   model.ID,
		OfferingID:           model.OfferingID,
		BeneficiaryID:        model.BeneficiaryID,
		AllocatedAmount:      model.AllocatedAmount,
		AllocationRatio:      model.AllocationRatio,
		IsPrimaryContributor: model.IsPrimaryContributor,
		ContributionNotes:    model.ContributionNotes,
		CreatedBy:            model.CreatedBy,
		CreatedAt:            model.CreatedAt,
		Links: AllocationLinks{
			Offering:    fmt.Sprintf("%s/v1/offerings/%s", url, model.OfferingID),
			Beneficiary: fmt.Sprintf("%s/v1/entries/%s", url, model.BeneficiaryID),
		},
	}
}

func newAllocations(c *gin.Context, allocations []models.Allocation) []Allocation {
	data := make([]Allocation, 0, len(allocations))
	for _, m := range allocations {
		data = append(data, newAllocation(c, m))
	}
	return data
}

type EntryAllocation struct {
	Allocation
	OfferingType  models.OfferingType `json:"offeringType" example:"FLOWER"`
	OfferingPrice int64               `json:"offeringPrice" example:"10001"`
	ProviderName  string              `json:"providerName" example:"Yamada Florist"`
}

func newEntryAllocation(c *gin.Context, a allocation.EntryAllocation) EntryAllocation {
	return EntryAllocation{
		Allocation:    newAllocation(c, a.Allocation),
		OfferingType:  a.OfferingType,
		OfferingPrice: a.OfferingPrice,
		ProviderName:  a.ProviderName,
	}
}

type IntegrityQueryFilter struct {
	OfferingID kuuid.UUID `form:"offering"` // Only check this offering
}

type IntegrityReport struct {
	OfferingID              uuid.UUID           `json:"offeringId" example:"3b1b8d3e-6e0a-4c2e-9a55-6c4f6a9d8b01"`
	OfferingType            models.OfferingType `json:"offeringType" example:"FLOWER"`
	ProviderName            string              `json:"providerName" example:"Yamada Florist"`
	Price                   int64               `json:"price" example:"8000"`
	TotalAllocated          int64               `json:"totalAllocated" example:"7000"`
	RatioSum                float64             `json:"ratioSum" example:"0.875"`
	Difference              int64               `json:"difference" example:"1000"` // Price minus the total allocated amount
	AllocationCount         int                 `json:"allocationCount" example:"2"`
	PrimaryContributorCount int                 `json:"primaryContributorCount" example:"1"`
	IsValid                 bool                `json:"isValid" example:"false"`
}

func newIntegrityReport(r allocation.IntegrityReport) IntegrityReport {
	return IntegrityReport(r)
}
