package allocation

import (
	"github.com/google/uuid"
	"github.com/kouden-ledger/backend/internal/models"
	"gorm.io/gorm"
)

// markAllocated sets HasOffering on all entries.
func markAllocated(tx *gorm.DB, entryIDs []uuid.UUID) error {
	if len(entryIDs) == 0 {
		return nil
	}

	err := tx.Model(&models.Entry{}).Where("id IN ?", entryIDs).UpdateColumn("has_offering", true).Error
	if err != nil {
		return persistenceError("updating entry flags", err)
	}

	return nil
}

// resyncFlags re-evaluates HasOffering for the entries.
//
// An entry keeps the flag if any allocation of any offering references it.
// All entries are checked with a single grouped query.
func resyncFlags(tx *gorm.DB, entryIDs []uuid.UUID) error {
	if len(entryIDs) == 0 {
		return nil
	}

	var referenced []uuid.UUID
	err := tx.Model(&models.Allocation{}).
		Where("beneficiary_id IN ?", entryIDs).
		Group("beneficiary_id").
		Pluck("beneficiary_id", &referenced).Error
	if err != nil {
		return persistenceError("reading remaining allocations", err)
	}

	keep := make(map[uuid.UUID]struct{}, len(referenced))
	for _, id := range referenced {
		keep[id] = struct{}{}
	}

	var unset []uuid.UUID
	for _, id := range entryIDs {
		if _, ok := keep[id]; !ok {
			unset = append(unset, id)
		}
	}

	if len(unset) > 0 {
		err = tx.Model(&models.Entry{}).Where("id IN ?", unset).UpdateColumn("has_offering", false).Error
		if err != nil {
			return persistenceError("clearing entry flags", err)
		}
	}

	return markAllocated(tx, referenced)
}
