package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Allocation is the share of one offering that is attributed to one entry.
type Allocation struct {
	DefaultModel
	OfferingID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_offering_beneficiary"`
	Offering             Offering  `gorm:"constraint:OnDelete:CASCADE"`
	BeneficiaryID        uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_offering_beneficiary"`
	Beneficiary          Entry     `gorm:"constraint:OnDelete:CASCADE"`
	AllocatedAmount      int64     `gorm:"not null;check:allocated_amount_not_negative,allocated_amount >= 0"`
	AllocationRatio      float64   `gorm:"not null"`
	IsPrimaryContributor bool      `gorm:"not null;default:false"`
	ContributionNotes    string
	Position             int       // Position of the beneficiary in the participant list the allocation was created from
	CreatedBy            uuid.UUID `gorm:"type:uuid"`
}

// TableName sets the table name. The default would be "allocations".
func (Allocation) TableName() string {
	return "offering_allocations"
}

func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	a.ContributionNotes = strings.TrimSpace(a.ContributionNotes)

	if a.AllocatedAmount < 0 {
		return ErrAllocationAmountNegative
	}

	return nil
}
