package response

import (
	"time"

	"tenancy-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type AddressResponse struct {
	Street string `json:"street"`
	Area   string `json:"area"`
	City   string `json:"city"`
}

type ApartmentResponse struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"ownerId"`
	Address     AddressResponse `json:"address"`
	RentalPrice string          `json:"rentalPrice"`
	SizeSqft    int             `json:"sizeSqft"`
	Description string          `json:"description"`
	TotalRooms  int             `json:"totalRooms"`
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   int             `json:"bathrooms"`
	HasParking  bool            `json:"hasParking"`
	HasElevator bool            `json:"hasElevator"`
	TotalFloors int             `json:"totalFloors"`
	Floor       int             `json:"floor"`
	IsAllotted  bool            `json:"isAllotted"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type OwnedApartmentResponse struct {
	ApartmentResponse
	LiveRequestCount int64 `json:"liveRequestCount"`
}

type AllotmentResponse struct {
	ID          uuid.UUID   `json:"id"`
	ApartmentID uuid.UUID   `json:"apartmentId"`
	TenantID    uuid.UUID   `json:"tenantId"`
	TenantName  string      `json:"tenantName"`
	TenantEmail string      `json:"tenantEmail"`
	TenantPhone string      `json:"tenantPhone"`
	StartedAt   time.Time   `json:"startedAt"`
	PaymentIDs  []uuid.UUID `json:"paymentIds"`
}

type ApartmentDetailResponse struct {
	Apartment *ApartmentResponse `json:"apartment"`
	Requests  []*RequestResponse `json:"requests,omitempty"`
	Allotment *AllotmentResponse `json:"allotment,omitempty"`
}

type MyAllotmentResponse struct {
	AllotmentID uuid.UUID          `json:"allotmentId"`
	StartedAt   time.Time          `json:"startedAt"`
	Apartment   *ApartmentResponse `json:"apartment"`
	OwnerName   string             `json:"ownerName"`
	OwnerPhone  string             `json:"ownerPhone"`
}

type AllotmentResultResponse struct {
	AllotmentID    uuid.UUID `json:"allotmentId"`
	ApartmentID    uuid.UUID `json:"apartmentId"`
	TenantID       uuid.UUID `json:"tenantId"`
	StartedAt      time.Time `json:"startedAt"`
	PurgedRequests int64     `json:"purgedRequests"`
}

type UnpaidMonthsResponse struct {
	ApartmentID uuid.UUID `json:"apartmentId"`
	AllotmentID uuid.UUID `json:"allotmentId"`
	StartedAt   time.Time `json:"startedAt"`
	Months      []string  `json:"months"`
	MonthlyRent string    `json:"monthlyRent"`
	TotalDue    string    `json:"totalDue"`
}

func FromApartmentView(v *queries.ApartmentView) *ApartmentResponse {
	return fill[ApartmentResponse](v)
}

func FromApartmentViews(vs []*queries.ApartmentView) []*ApartmentResponse {
	return fillAll[ApartmentResponse](vs)
}

func FromOwnedApartmentViews(vs []*queries.OwnedApartmentView) []*OwnedApartmentResponse {
	out := make([]*OwnedApartmentResponse, len(vs))
	for i, v := range vs {
		out[i] = &OwnedApartmentResponse{
			ApartmentResponse: *FromApartmentView(&v.ApartmentView),
			LiveRequestCount:  v.LiveRequestCount,
		}
	}
	return out
}

func FromApartmentDetailView(v *queries.ApartmentDetailView) *ApartmentDetailResponse {
	resp := &ApartmentDetailResponse{
		Apartment: FromApartmentView(v.Apartment),
	}
	if v.Requests != nil {
		resp.Requests = FromRequestViews(v.Requests)
	}
	if v.Allotment != nil {
		resp.Allotment = fill[AllotmentResponse](v.Allotment)
	}
	return resp
}

func FromMyAllotmentView(v *queries.MyAllotmentView) *MyAllotmentResponse {
	return &MyAllotmentResponse{
		AllotmentID: v.AllotmentID,
		StartedAt:   v.StartedAt,
		Apartment:   FromApartmentView(v.Apartment),
		OwnerName:   v.OwnerName,
		OwnerPhone:  v.OwnerPhone,
	}
}

func FromUnpaidMonthsView(v *queries.UnpaidMonthsView) *UnpaidMonthsResponse {
	resp := fill[UnpaidMonthsResponse](v)
	// nothing due is [], not null
	if resp.Months == nil {
		resp.Months = []string{}
	}
	return resp
}
