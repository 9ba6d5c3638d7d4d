package allocation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kouden-ledger/backend/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Service is the allocation engine. It is stateless apart from
// the database handle and safe for concurrent use.
type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) Service {
	return Service{DB: db}
}

// AllocateRequest describes how an offering is distributed.
type AllocateRequest struct {
	OfferingID     uuid.UUID
	ParticipantIDs []uuid.UUID
	Method         Method
	ManualAmounts  []int64 // Required for MethodManual, in participant order

	// The primary contributor. If nil or not one of the participants,
	// the first participant is the primary contributor.
	PrimaryContributorID *uuid.UUID

	ContributionNotes map[uuid.UUID]string // Optional notes per participant
}

// RecalculateRequest changes the distribution method of an existing allocation.
type RecalculateRequest struct {
	OfferingID    uuid.UUID
	Method        Method
	ManualAmounts []int64
}

// Allocate replaces all allocations of an offering with a freshly calculated set.
//
// The replacement runs in a single transaction. If any step fails,
// the previous allocations stay in place.
func (s Service) Allocate(ctx context.Context, actor Actor, req AllocateRequest) (allocations []models.Allocation, err error) {
	defer func() { observe("allocate", err) }()

	if !actor.CanWrite() {
		return nil, ErrForbidden
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		allocations, err = replace(tx, actor, req)
		return err
	})
	if err != nil {
		return nil, wrap(err)
	}

	recordUnits(allocations)
	return allocations, nil
}

// Remove deletes all allocations of an offering and updates the
// flags of all entries that were allocated to.
func (s Service) Remove(ctx context.Context, actor Actor, offeringID uuid.UUID) (err error) {
	defer func() { observe("remove", err) }()

	if !actor.CanWrite() {
		return ErrForbidden
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := findOffering(tx, offeringID)
		if err != nil {
			return err
		}

		previous, err := allocationsOf(tx, offeringID)
		if err != nil {
			return err
		}

		affected := make([]uuid.UUID, 0, len(previous))
		for _, a := range previous {
			affected = append(affected, a.BeneficiaryID)
		}

		deleted, err := deleteAllocationsOf(tx, offeringID)
		if err != nil {
			return err
		}

		log.Debug().Str("offering", offeringID.String()).Int64("deleted", deleted).Msg("removed allocations")

		return resyncFlags(tx, affected)
	})

	return wrap(err)
}

// Recalculate distributes an already allocated offering again with a different method.
// Participants, their order and the primary contributor are kept.
func (s Service) Recalculate(ctx context.Context, actor Actor, req RecalculateRequest) (allocations []models.Allocation, err error) {
	defer func() { observe("recalculate", err) }()

	if !actor.CanWrite() {
		return nil, ErrForbidden
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := allocationsOf(tx, req.OfferingID)
		if err != nil {
			return err
		}

		if len(existing) == 0 {
			return fmt.Errorf("%w for offering %s", ErrNoAllocationData, req.OfferingID)
		}

		allocate := AllocateRequest{
			OfferingID:        req.OfferingID,
			Method:            req.Method,
			ManualAmounts:     req.ManualAmounts,
			ContributionNotes: make(map[uuid.UUID]string, len(existing)),
		}

		for _, a := range existing {
			allocate.ParticipantIDs = append(allocate.ParticipantIDs, a.BeneficiaryID)
			if a.ContributionNotes != "" {
				allocate.ContributionNotes[a.BeneficiaryID] = a.ContributionNotes
			}

			if a.IsPrimaryContributor {
				id := a.BeneficiaryID
				allocate.PrimaryContributorID = &id
			}
		}

		allocations, err = replace(tx, actor, allocate)
		return err
	})
	if err != nil {
		return nil, wrap(err)
	}

	recordUnits(allocations)
	return allocations, nil
}

// wrap marks errors that do not come from the engine itself, e.g.
// a transaction that cannot be started, as persistence errors.
func wrap(err error) error {
	if err == nil {
		return nil
	}

	for _, known := range []error{ErrNotFound, ErrValidation, ErrPersistence, ErrForbidden} {
		if errors.Is(err, known) {
			return err
		}
	}

	return persistenceError("transaction", err)
}

// replace deletes the allocations of an offering and inserts new ones.
// It must be called inside of a transaction.
func replace(tx *gorm.DB, actor Actor, req AllocateRequest) ([]models.Allocation, error) {
	offering, err := findOffering(tx, req.OfferingID)
	if err != nil {
		return nil, err
	}

	if req.Method == MethodWeighted {
		log.Warn().Str("offering", req.OfferingID.String()).Msg("weighted allocation is not implemented yet, splitting equally")
	}

	shares, err := Calculate(offering.Price, req.ParticipantIDs, req.Method, req.ManualAmounts)
	if err != nil {
		return nil, err
	}

	err = requireEntries(tx, req.ParticipantIDs)
	if err != nil {
		return nil, err
	}

	previous, err := allocationsOf(tx, req.OfferingID)
	if err != nil {
		return nil, err
	}

	_, err = deleteAllocationsOf(tx, req.OfferingID)
	if err != nil {
		return nil, err
	}

	primary := req.ParticipantIDs[0]
	if req.PrimaryContributorID != nil && slices.Contains(req.ParticipantIDs, *req.PrimaryContributorID) {
		primary = *req.PrimaryContributorID
	}

	allocations := make([]models.Allocation, 0, len(shares))
	for i, share := range shares {
		allocations = append(allocations, models.Allocation{
			OfferingID:           req.OfferingID,
			BeneficiaryID:        share.ParticipantID,
			AllocatedAmount:      share.Amount,
			AllocationRatio:      share.Ratio,
			IsPrimaryContributor: share.ParticipantID == primary,
			ContributionNotes:    req.ContributionNotes[share.ParticipantID],
			Position:             i,
			CreatedBy:            actor.UserID,
		})
	}

	err = insertAllocations(tx, allocations)
	if err != nil {
		return nil, err
	}

	err = markAllocated(tx, req.ParticipantIDs)
	if err != nil {
		return nil, err
	}

	// Entries that were part of the previous allocation but are not anymore
	var dropped []uuid.UUID
	for _, a := range previous {
		if !slices.Contains(req.ParticipantIDs, a.BeneficiaryID) {
			dropped = append(dropped, a.BeneficiaryID)
		}
	}

	err = resyncFlags(tx, dropped)
	if err != nil {
		return nil, err
	}

	return allocations, nil
}
