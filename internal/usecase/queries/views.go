package queries

import (
	"time"

	"github.com/google/uuid"
)

type UserView struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	Role                string     `json:"role"`
	AllottedApartmentID *uuid.UUID `json:"allottedApartmentId,omitempty"`
	IsActive            bool       `json:"isActive"`
	LastLogin           *time.Time `json:"lastLogin,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

type AddressView struct {
	Street string `json:"street"`
	Area   string `json:"area"`
	City   string `json:"city"`
}

type ApartmentView struct {
	ID          uuid.UUID   `json:"id"`
	OwnerID     uuid.UUID   `json:"ownerId"`
	Address     AddressView `json:"address"`
	RentalPrice string      `json:"rentalPrice"`
	SizeSqft    int         `json:"sizeSqft"`
	Description string      `json:"description"`
	TotalRooms  int         `json:"totalRooms"`
	Bedrooms    int         `json:"bedrooms"`
	Bathrooms   int         `json:"bathrooms"`
	HasParking  bool        `json:"hasParking"`
	HasElevator bool        `json:"hasElevator"`
	TotalFloors int         `json:"totalFloors"`
	Floor       int         `json:"floor"`
	IsAllotted  bool        `json:"isAllotted"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type OwnedApartmentView struct {
	ApartmentView
	LiveRequestCount int64 `json:"liveRequestCount"`
}

type AllotmentView struct {
	ID          uuid.UUID   `json:"id"`
	ApartmentID uuid.UUID   `json:"apartmentId"`
	TenantID    uuid.UUID   `json:"tenantId"`
	TenantName  string      `json:"tenantName"`
	TenantEmail string      `json:"tenantEmail"`
	TenantPhone string      `json:"tenantPhone"`
	StartedAt   time.Time   `json:"startedAt"`
	PaymentIDs  []uuid.UUID `json:"paymentIds"`
}

// ApartmentDetailView is what one actor may see of an apartment. Requests
// are filled for the owner only; the allotment for the owner and its tenant.
type ApartmentDetailView struct {
	Apartment *ApartmentView `json:"apartment"`
	Requests  []*RequestView `json:"requests,omitempty"`
	Allotment *AllotmentView `json:"allotment,omitempty"`
}

type MyAllotmentView struct {
	AllotmentID uuid.UUID      `json:"allotmentId"`
	StartedAt   time.Time      `json:"startedAt"`
	Apartment   *ApartmentView `json:"apartment"`
	OwnerName   string         `json:"ownerName"`
	OwnerPhone  string         `json:"ownerPhone"`
}

type RequestView struct {
	ID             uuid.UUID   `json:"id"`
	ApartmentID    uuid.UUID   `json:"apartmentId"`
	Address        AddressView `json:"address"`
	RequesterID    uuid.UUID   `json:"requesterId"`
	RequesterName  string      `json:"requesterName"`
	RequesterEmail string      `json:"requesterEmail"`
	RequesterPhone string      `json:"requesterPhone"`
	OwnerID        uuid.UUID   `json:"ownerId"`
	TenancyType    string      `json:"tenancyType"`
	Occupants      int         `json:"occupants"`
	Note           string      `json:"note"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type UnpaidMonthsView struct {
	ApartmentID uuid.UUID `json:"apartmentId"`
	AllotmentID uuid.UUID `json:"allotmentId"`
	StartedAt   time.Time `json:"startedAt"`
	Months      []string  `json:"months"`
	MonthlyRent string    `json:"monthlyRent"`
	TotalDue    string    `json:"totalDue"`
}

type PaymentView struct {
	ID             uuid.UUID   `json:"id"`
	AllotmentID    uuid.UUID   `json:"allotmentId"`
	ApartmentID    uuid.UUID   `json:"apartmentId"`
	Address        AddressView `json:"address"`
	PayerID        uuid.UUID   `json:"payerId"`
	PayerName      string      `json:"payerName"`
	OwnerID        uuid.UUID   `json:"ownerId"`
	Amount         string      `json:"amount"`
	MonthOf        string      `json:"monthOf"`
	Method         string      `json:"method"`
	TransactionRef string      `json:"transactionRef"`
	Status         string      `json:"status"`
	SubmittedAt    time.Time   `json:"submittedAt"`
	ConfirmedAt    *time.Time  `json:"confirmedAt,omitempty"`
}

type PaymentMemoView struct {
	Payment     *PaymentView `json:"payment"`
	MonthlyRent string       `json:"monthlyRent"`
	PayerPhone  string       `json:"payerPhone"`
	OwnerName   string       `json:"ownerName"`
	OwnerPhone  string       `json:"ownerPhone"`
}

type LeaveRequestView struct {
	ID             uuid.UUID   `json:"id"`
	AllotmentID    uuid.UUID   `json:"allotmentId"`
	ApartmentID    uuid.UUID   `json:"apartmentId"`
	Address        AddressView `json:"address"`
	RequesterID    uuid.UUID   `json:"requesterId"`
	RequesterName  string      `json:"requesterName"`
	RequesterPhone string      `json:"requesterPhone"`
	OwnerID        uuid.UUID   `json:"ownerId"`
	FromMonth      string      `json:"fromMonth"`
	Note           string      `json:"note"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}
