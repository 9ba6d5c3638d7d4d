package allocation

import (
	"context"

	"github.com/google/uuid"
	"github.com/kouden-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// amountTolerance absorbs the remainder unit of equal splits.
	amountTolerance = 1

	// ratioTolerance absorbs floating point error when ratios are summed up.
	ratioTolerance = 0.001
)

// IntegrityReport is the result of the integrity check of one offering.
type IntegrityReport struct {
	OfferingID              uuid.UUID
	OfferingType            models.OfferingType
	ProviderName            string
	Price                   int64
	TotalAllocated          int64
	RatioSum                float64
	Difference              int64 // Price minus the total allocated amount
	AllocationCount         int
	PrimaryContributorCount int
	IsValid                 bool
}

// CheckIntegrity verifies that the allocations of offerings add up to their price.
//
// If offeringID is nil, all offerings are checked. Otherwise, only the specified
// offering is checked. Offerings without allocations are reported as invalid.
// The check never writes to the database.
func (s Service) CheckIntegrity(ctx context.Context, offeringID *uuid.UUID) (reports []IntegrityReport, err error) {
	defer func() { observe("check_integrity", err) }()

	tx := s.DB.WithContext(ctx)

	var offerings []models.Offering
	if offeringID != nil {
		offering, err := findOffering(tx, *offeringID)
		if err != nil {
			return nil, err
		}
		offerings = append(offerings, offering)
	} else {
		err = tx.Order("created_at ASC, id ASC").Find(&offerings).Error
		if err != nil {
			return nil, persistenceError("reading offerings", err)
		}
	}

	if len(offerings) == 0 {
		return []IntegrityReport{}, nil
	}

	ids := make([]uuid.UUID, 0, len(offerings))
	for _, o := range offerings {
		ids = append(ids, o.ID)
	}

	var allocations []models.Allocation
	err = tx.Where("offering_id IN ?", ids).Find(&allocations).Error
	if err != nil {
		return nil, persistenceError("reading allocations", err)
	}

	byOffering := make(map[uuid.UUID][]models.Allocation, len(offerings))
	for _, a := range allocations {
		byOffering[a.OfferingID] = append(byOffering[a.OfferingID], a)
	}

	reports = make([]IntegrityReport, 0, len(offerings))
	for _, o := range offerings {
		reports = append(reports, check(o, byOffering[o.ID]))
	}

	return reports, nil
}

// check computes the integrity report for one offering.
func check(offering models.Offering, allocations []models.Allocation) IntegrityReport {
	total := decimal.Zero
	ratioSum := decimal.Zero
	primaries := 0

	for _, a := range allocations {
		total = total.Add(decimal.NewFromInt(a.AllocatedAmount))
		ratioSum = ratioSum.Add(decimal.NewFromFloat(a.AllocationRatio))
		if a.IsPrimaryContributor {
			primaries++
		}
	}

	difference := decimal.NewFromInt(offering.Price).Sub(total)
	ratioDeviation := ratioSum.Sub(decimal.NewFromInt(1)).Abs()

	return IntegrityReport{
		OfferingID:              offering.ID,
		OfferingType:            offering.Type,
		ProviderName:            offering.ProviderName,
		Price:                   offering.Price,
		TotalAllocated:          total.IntPart(),
		RatioSum:                ratioSum.InexactFloat64(),
		Difference:              difference.IntPart(),
		AllocationCount:         len(allocations),
		PrimaryContributorCount: primaries,
		IsValid: difference.Abs().LessThanOrEqual(decimal.NewFromInt(amountTolerance)) &&
			ratioDeviation.LessThanOrEqual(decimal.NewFromFloat(ratioTolerance)),
	}
}
