package apartment

import (
	"strings"
	"unicode/utf8"

	"tenancy-service/internal/domain/money"
	"tenancy-service/internal/pkg/errs"
)

var (
	ErrInvalidAddress     = errs.Validation("street, area and city are required")
	ErrInvalidSize        = errs.Validation("size must be greater than zero")
	ErrInvalidRooms       = errs.Validation("room counts must not be negative and total rooms must be at least one")
	ErrInvalidFloor       = errs.Validation("floor must be between 0 and total floors")
	ErrDescriptionTooLong = errs.Validation("description exceeds maximum length")
)

const maxDescriptionLength = 2000

type Address struct {
	street string
	area   string
	city   string
}

func NewAddress(street, area, city string) (Address, error) {
	a := Address{
		street: strings.TrimSpace(street),
		area:   strings.TrimSpace(area),
		city:   strings.TrimSpace(city),
	}
	if a.street == "" || a.area == "" || a.city == "" {
		return Address{}, ErrInvalidAddress
	}
	return a, nil
}

func (a Address) Street() string { return a.street }
func (a Address) Area() string   { return a.area }
func (a Address) City() string   { return a.city }

// Matches is a case-insensitive substring match on any address part.
// An empty query matches everything.
func (a Address) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, part := range []string{a.street, a.area, a.city} {
		if strings.Contains(strings.ToLower(part), q) {
			return true
		}
	}
	return false
}

// Attributes is everything an owner can edit on a listing.
type Attributes struct {
	Address     Address
	RentalPrice money.Amount
	SizeSqft    int
	Description string
	TotalRooms  int
	Bedrooms    int
	Bathrooms   int
	HasParking  bool
	HasElevator bool
	TotalFloors int
	Floor       int
}

func (a Attributes) Validate() error {
	if a.Address == (Address{}) {
		return ErrInvalidAddress
	}
	if a.RentalPrice.IsZero() {
		return money.ErrNonPositive
	}
	if a.SizeSqft <= 0 {
		return ErrInvalidSize
	}
	if a.TotalRooms < 1 || a.Bedrooms < 0 || a.Bathrooms < 0 {
		return ErrInvalidRooms
	}
	if a.TotalFloors < 1 || a.Floor < 0 || a.Floor > a.TotalFloors {
		return ErrInvalidFloor
	}
	if utf8.RuneCountInString(a.Description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
