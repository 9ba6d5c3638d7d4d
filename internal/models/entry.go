package models

import (
	"strings"

	"gorm.io/gorm"
)

// Entry is a condolence record. It receives shares of offerings
// through allocations.
type Entry struct {
	DefaultModel
	Name   string
	Amount int64 `gorm:"check:entry_amount_not_negative,amount >= 0"` // The amount of the condolence gift itself

	// HasOffering is true if and only if at least one allocation references the entry.
	// It is maintained by the allocation engine and never set by clients.
	HasOffering bool `gorm:"index"`
	Note        string
}

func (e *Entry) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Note = strings.TrimSpace(e.Note)

	if e.Amount < 0 {
		return ErrAmountNegative
	}

	return nil
}
