package models

import (
	"errors"
)

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrReferenceNotFound = errors.New("there is no resource for the ID you specified in the reference to another resource")
)

var (
	ErrAllocationNotUnique      = errors.New("an offering can only be allocated to an entry once")
	ErrAllocationAmountNegative = errors.New("allocated amounts must not be negative")
	ErrAmountNegative           = errors.New("amounts must not be negative")
)
