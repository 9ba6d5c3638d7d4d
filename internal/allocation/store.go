package allocation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kouden-ledger/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// insertBatchSize limits the rows per INSERT statement.
const insertBatchSize = 100

// ordered sorts allocations in the order their participants were given in.
const ordered = "offering_allocations.created_at ASC, offering_allocations.position ASC"

func findOffering(tx *gorm.DB, id uuid.UUID) (models.Offering, error) {
	var offering models.Offering
	err := tx.First(&offering, "id = ?", id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return offering, fmt.Errorf("%w: there is no offering with ID %s", ErrNotFound, id)
	} else if err != nil {
		return offering, persistenceError("reading offering", err)
	}

	return offering, nil
}

func findEntry(tx *gorm.DB, id uuid.UUID) (models.Entry, error) {
	var entry models.Entry
	err := tx.First(&entry, "id = ?", id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return entry, fmt.Errorf("%w: there is no entry with ID %s", ErrNotFound, id)
	} else if err != nil {
		return entry, persistenceError("reading entry", err)
	}

	return entry, nil
}

// requireEntries verifies that an entry exists for every ID.
func requireEntries(tx *gorm.DB, ids []uuid.UUID) error {
	var found []uuid.UUID
	err := tx.Model(&models.Entry{}).Where("id IN ?", ids).Pluck("id", &found).Error
	if err != nil {
		return persistenceError("reading entries", err)
	}

	exists := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		exists[id] = struct{}{}
	}

	for _, id := range ids {
		if _, ok := exists[id]; !ok {
			return fmt.Errorf("%w: there is no entry with ID %s", ErrNotFound, id)
		}
	}

	return nil
}

// allocationsOf returns the allocations of an offering in participant order.
func allocationsOf(tx *gorm.DB, offeringID uuid.UUID) ([]models.Allocation, error) {
	var allocations []models.Allocation
	err := tx.Where("offering_id = ?", offeringID).Order(ordered).Find(&allocations).Error
	if err != nil {
		return nil, persistenceError("reading allocations", err)
	}

	return allocations, nil
}

// deleteAllocationsOf deletes all allocations of an offering.
func deleteAllocationsOf(tx *gorm.DB, offeringID uuid.UUID) (int64, error) {
	res := tx.Where("offering_id = ?", offeringID).Delete(&models.Allocation{})
	if res.Error != nil {
		return 0, persistenceError("deleting allocations", res.Error)
	}

	return res.RowsAffected, nil
}

// insertAllocations inserts a batch of allocations without touching
// the referenced offering and entries.
func insertAllocations(tx *gorm.DB, allocations []models.Allocation) error {
	err := tx.Omit(clause.Associations).CreateInBatches(&allocations, insertBatchSize).Error
	if err != nil {
		return persistenceError("inserting allocations", err)
	}

	return nil
}
