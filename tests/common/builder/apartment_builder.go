//go:build unit || e2e

package builder

import (
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/money"
	reqdto "tenancy-service/internal/handler/dto/request"
	"tenancy-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ApartmentBuilder struct {
	OwnerID     uuid.UUID
	Street      string
	Area        string
	City        string
	RentalPrice string
	SizeSqft    int
	Description string
	TotalRooms  int
	Bedrooms    int
	Bathrooms   int
	HasParking  bool
	HasElevator bool
	TotalFloors int
	Floor       int
	Now         time.Time

	tenantID  *uuid.UUID
	allottedAt time.Time
}

func NewApartmentBuilder() *ApartmentBuilder {
	return &ApartmentBuilder{
		OwnerID:     uuid.New(),
		Street:      "House 12, Road 5",
		Area:        "Dhanmondi",
		City:        "Dhaka",
		RentalPrice: "15000.00",
		SizeSqft:    1200,
		Description: "South facing flat near the lake",
		TotalRooms:  5,
		Bedrooms:    3,
		Bathrooms:   2,
		HasParking:  true,
		HasElevator: true,
		TotalFloors: 6,
		Floor:       3,
		Now:         time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ApartmentBuilder) With(mutate func(*ApartmentBuilder)) *ApartmentBuilder {
	mutate(b)
	return b
}

func (b *ApartmentBuilder) WithOwner(ownerID uuid.UUID) *ApartmentBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ApartmentBuilder) WithRentalPrice(price string) *ApartmentBuilder {
	b.RentalPrice = price
	return b
}

// AllottedTo makes BuildDomain return an apartment whose tenancy started at startedAt.
func (b *ApartmentBuilder) AllottedTo(tenantID uuid.UUID, startedAt time.Time) *ApartmentBuilder {
	b.tenantID = &tenantID
	b.allottedAt = startedAt
	return b
}

func (b *ApartmentBuilder) BuildAttributes() (apartment.Attributes, error) {
	addr, err := apartment.NewAddress(b.Street, b.Area, b.City)
	if err != nil {
		return apartment.Attributes{}, err
	}
	price, err := money.ParseAmount(b.RentalPrice)
	if err != nil {
		return apartment.Attributes{}, err
	}
	return apartment.Attributes{
		Address:     addr,
		RentalPrice: price,
		SizeSqft:    b.SizeSqft,
		Description: b.Description,
		TotalRooms:  b.TotalRooms,
		Bedrooms:    b.Bedrooms,
		Bathrooms:   b.Bathrooms,
		HasParking:  b.HasParking,
		HasElevator: b.HasElevator,
		TotalFloors: b.TotalFloors,
		Floor:       b.Floor,
	}, nil
}

func (b *ApartmentBuilder) BuildDomain() (*apartment.Apartment, error) {
	attrs, err := b.BuildAttributes()
	if err != nil {
		return nil, err
	}
	apt, err := apartment.NewApartment(b.OwnerID, attrs, b.Now)
	if err != nil {
		return nil, err
	}
	if b.tenantID != nil {
		if _, err := apt.Allot(*b.tenantID, b.allottedAt); err != nil {
			return nil, err
		}
	}
	return apt, nil
}

func (b *ApartmentBuilder) MustBuildDomain() *apartment.Apartment {
	apt, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return apt
}

func (b *ApartmentBuilder) BuildDTO() reqdto.CreateApartmentRequest {
	return reqdto.CreateApartmentRequest{
		Street:      b.Street,
		Area:        b.Area,
		City:        b.City,
		RentalPrice: decimal.RequireFromString(b.RentalPrice),
		SizeSqft:    b.SizeSqft,
		Description: b.Description,
		TotalRooms:  b.TotalRooms,
		Bedrooms:    b.Bedrooms,
		Bathrooms:   b.Bathrooms,
		HasParking:  b.HasParking,
		HasElevator: b.HasElevator,
		TotalFloors: b.TotalFloors,
		Floor:       b.Floor,
	}
}

func (b *ApartmentBuilder) BuildReadModel() *queries.ApartmentView {
	return &queries.ApartmentView{
		ID:          uuid.New(),
		OwnerID:     b.OwnerID,
		Address:     queries.AddressView{Street: b.Street, Area: b.Area, City: b.City},
		RentalPrice: b.RentalPrice,
		SizeSqft:    b.SizeSqft,
		Description: b.Description,
		TotalRooms:  b.TotalRooms,
		Bedrooms:    b.Bedrooms,
		Bathrooms:   b.Bathrooms,
		HasParking:  b.HasParking,
		HasElevator: b.HasElevator,
		TotalFloors: b.TotalFloors,
		Floor:       b.Floor,
		IsAllotted:  b.tenantID != nil,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}
