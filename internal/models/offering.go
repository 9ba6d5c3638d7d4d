package models

import (
	"strings"

	"gorm.io/gorm"
)

// OfferingType is the kind of an offering.
//
// swagger:enum OfferingType
type OfferingType string

const (
	OfferingTypeFlower OfferingType = "FLOWER"
	OfferingTypeFood   OfferingType = "FOOD"
	OfferingTypeOther  OfferingType = "OTHER"
)

// Offering is a shared contribution, e.g. a flower arrangement paid for
// by several people together. Its price is distributed across entries.
type Offering struct {
	DefaultModel
	Type         OfferingType
	Price        int64 `gorm:"check:offering_price_not_negative,price >= 0"`
	ProviderName string
	Note         string
}

func (o *Offering) BeforeSave(_ *gorm.DB) error {
	o.ProviderName = strings.TrimSpace(o.ProviderName)
	o.Note = strings.TrimSpace(o.Note)

	switch OfferingType(strings.ToUpper(string(o.Type))) {
	case OfferingTypeFlower, OfferingTypeFood:
		o.Type = OfferingType(strings.ToUpper(string(o.Type)))
	default:
		o.Type = OfferingTypeOther
	}

	if o.Price < 0 {
		return ErrAmountNegative
	}

	return nil
}
