package request

import (
	"tenancy-service/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateApartmentRequest struct {
	Street      string          `json:"street" binding:"required"`
	Area        string          `json:"area" binding:"required"`
	City        string          `json:"city" binding:"required"`
	RentalPrice decimal.Decimal `json:"rentalPrice" swaggertype:"string" example:"15000.00"`
	SizeSqft    int             `json:"sizeSqft" binding:"required,gt=0"`
	Description string          `json:"description" binding:"max=2000"`
	TotalRooms  int             `json:"totalRooms" binding:"required,gte=1"`
	Bedrooms    int             `json:"bedrooms" binding:"gte=0"`
	Bathrooms   int             `json:"bathrooms" binding:"gte=0"`
	HasParking  bool            `json:"hasParking"`
	HasElevator bool            `json:"hasElevator"`
	TotalFloors int             `json:"totalFloors" binding:"required,gte=1"`
	Floor       int             `json:"floor" binding:"gte=0"`
}

func (r CreateApartmentRequest) ToInput() commands.ApartmentInput {
	return commands.ApartmentInput{
		Street:      r.Street,
		Area:        r.Area,
		City:        r.City,
		RentalPrice: r.RentalPrice.String(),
		SizeSqft:    r.SizeSqft,
		Description: r.Description,
		TotalRooms:  r.TotalRooms,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		HasParking:  r.HasParking,
		HasElevator: r.HasElevator,
		TotalFloors: r.TotalFloors,
		Floor:       r.Floor,
	}
}

// UpdateApartmentRequest leaves omitted fields untouched.
type UpdateApartmentRequest struct {
	Street      *string          `json:"street,omitempty"`
	Area        *string          `json:"area,omitempty"`
	City        *string          `json:"city,omitempty"`
	RentalPrice *decimal.Decimal `json:"rentalPrice,omitempty" swaggertype:"string"`
	SizeSqft    *int             `json:"sizeSqft,omitempty"`
	Description *string          `json:"description,omitempty"`
	TotalRooms  *int             `json:"totalRooms,omitempty"`
	Bedrooms    *int             `json:"bedrooms,omitempty"`
	Bathrooms   *int             `json:"bathrooms,omitempty"`
	HasParking  *bool            `json:"hasParking,omitempty"`
	HasElevator *bool            `json:"hasElevator,omitempty"`
	TotalFloors *int             `json:"totalFloors,omitempty"`
	Floor       *int             `json:"floor,omitempty"`
}

func (r UpdateApartmentRequest) ToPatch() commands.ApartmentPatch {
	var price *string
	if r.RentalPrice != nil {
		s := r.RentalPrice.String()
		price = &s
	}
	return commands.ApartmentPatch{
		Street:      r.Street,
		Area:        r.Area,
		City:        r.City,
		RentalPrice: price,
		SizeSqft:    r.SizeSqft,
		Description: r.Description,
		TotalRooms:  r.TotalRooms,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		HasParking:  r.HasParking,
		HasElevator: r.HasElevator,
		TotalFloors: r.TotalFloors,
		Floor:       r.Floor,
	}
}
