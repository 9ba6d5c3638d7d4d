package allocation

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/kouden-ledger/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// EntryAllocation is an allocation together with the data of its offering.
type EntryAllocation struct {
	models.Allocation
	OfferingType  models.OfferingType
	OfferingPrice int64
	ProviderName  string
}

// EntryAllocationFilter restricts the allocations returned for an entry.
type EntryAllocationFilter struct {
	Provider string              // Glob pattern for the provider name, e.g. "Yamada*"
	Type     models.OfferingType // Only offerings of this type
}

func (f EntryAllocationFilter) match(offering models.Offering) bool {
	if f.Type != "" && !strings.EqualFold(string(f.Type), string(offering.Type)) {
		return false
	}

	if f.Provider != "" && !glob.Glob(f.Provider, offering.ProviderName) {
		return false
	}

	return true
}

// Total is the combined amount of an entry.
type Total struct {
	BaseAmount     int64 // The amount of the entry itself
	AllocatedTotal int64 // Sum of all shares allocated to the entry
	CombinedTotal  int64
}

// OfferingAllocations returns the allocations of an offering in participant order.
func (s Service) OfferingAllocations(ctx context.Context, offeringID uuid.UUID) ([]models.Allocation, error) {
	tx := s.DB.WithContext(ctx)

	_, err := findOffering(tx, offeringID)
	if err != nil {
		return nil, err
	}

	return allocationsOf(tx, offeringID)
}

// EntryAllocations returns all allocations to an entry, across offerings.
func (s Service) EntryAllocations(ctx context.Context, entryID uuid.UUID, filter EntryAllocationFilter) ([]EntryAllocation, error) {
	tx := s.DB.WithContext(ctx)

	_, err := findEntry(tx, entryID)
	if err != nil {
		return nil, err
	}

	var allocations []models.Allocation
	err = tx.
		Joins("Offering").
		Where("offering_allocations.beneficiary_id = ?", entryID).
		Order(ordered).
		Find(&allocations).Error
	if err != nil {
		return nil, persistenceError("reading allocations", err)
	}

	result := make([]EntryAllocation, 0, len(allocations))
	for _, a := range allocations {
		if !filter.match(a.Offering) {
			continue
		}

		result = append(result, EntryAllocation{
			Allocation:    a,
			OfferingType:  a.Offering.Type,
			OfferingPrice: a.Offering.Price,
			ProviderName:  a.Offering.ProviderName,
		})
	}

	return result, nil
}

// EntryTotal returns the amount of an entry plus all shares allocated to it.
func (s Service) EntryTotal(ctx context.Context, entryID uuid.UUID) (Total, error) {
	tx := s.DB.WithContext(ctx)

	entry, err := findEntry(tx, entryID)
	if err != nil {
		return Total{}, err
	}

	// SUM returns NUMERIC on PostgreSQL, decimal scans both drivers
	var sum struct {
		Allocated decimal.Decimal
	}
	err = tx.Model(&models.Allocation{}).
		Where("beneficiary_id = ?", entryID).
		Select("COALESCE(SUM(allocated_amount), 0) AS allocated").
		Scan(&sum).Error
	if err != nil {
		return Total{}, persistenceError("summing allocations", err)
	}

	allocated := sum.Allocated.IntPart()

	return Total{
		BaseAmount:     entry.Amount,
		AllocatedTotal: allocated,
		CombinedTotal:  entry.Amount + allocated,
	}, nil
}
