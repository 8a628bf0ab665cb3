package pgquery

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID                  uuid.UUID
	Name                string
	Email               string
	Phone               string
	Nid                 string
	PasswordHash        string
	Role                string
	AllottedApartmentID pgtype.UUID
	LastLogin           pgtype.Timestamptz
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Apartment struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Street           string
	Area             string
	City             string
	RentalPriceCents int64
	SizeSqft         int32
	Description      string
	TotalRooms       int32
	Bedrooms         int32
	Bathrooms        int32
	HasParking       bool
	HasElevator      bool
	TotalFloors      int32
	Floor            int32
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Allotment struct {
	ID          uuid.UUID
	ApartmentID uuid.UUID
	TenantID    uuid.UUID
	StartedAt   time.Time
	EndedAt     pgtype.Timestamptz
}

type RentalRequest struct {
	ID          uuid.UUID
	ApartmentID uuid.UUID
	RequesterID uuid.UUID
	OwnerID     uuid.UUID
	TenancyType string
	Occupants   int32
	Note        string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Payment struct {
	ID             uuid.UUID
	AllotmentID    uuid.UUID
	ApartmentID    uuid.UUID
	PayerID        uuid.UUID
	OwnerID        uuid.UUID
	AmountCents    int64
	MonthOf        string
	Method         string
	TransactionRef string
	Status         string
	SubmittedAt    time.Time
	ConfirmedAt    pgtype.Timestamptz
}

type LeaveRequest struct {
	ID          uuid.UUID
	AllotmentID uuid.UUID
	ApartmentID uuid.UUID
	RequesterID uuid.UUID
	OwnerID     uuid.UUID
	FromMonth   string
	Note        string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
