package response

import (
	"time"

	"tenancy-service/internal/usecase/commands"
	"tenancy-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestResponse struct {
	ID             uuid.UUID       `json:"id"`
	ApartmentID    uuid.UUID       `json:"apartmentId"`
	Address        AddressResponse `json:"address"`
	RequesterID    uuid.UUID       `json:"requesterId"`
	RequesterName  string          `json:"requesterName"`
	RequesterEmail string          `json:"requesterEmail"`
	RequesterPhone string          `json:"requesterPhone"`
	OwnerID        uuid.UUID       `json:"ownerId"`
	TenancyType    string          `json:"tenancyType"`
	Occupants      int             `json:"occupants"`
	Note           string          `json:"note"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type PaymentResponse struct {
	ID             uuid.UUID       `json:"id"`
	AllotmentID    uuid.UUID       `json:"allotmentId"`
	ApartmentID    uuid.UUID       `json:"apartmentId"`
	Address        AddressResponse `json:"address"`
	PayerID        uuid.UUID       `json:"payerId"`
	PayerName      string          `json:"payerName"`
	OwnerID        uuid.UUID       `json:"ownerId"`
	Amount         string          `json:"amount"`
	MonthOf        string          `json:"monthOf"`
	Method         string          `json:"method"`
	TransactionRef string          `json:"transactionRef"`
	Status         string          `json:"status"`
	SubmittedAt    time.Time       `json:"submittedAt"`
	ConfirmedAt    *time.Time      `json:"confirmedAt,omitempty"`
}

type PaymentListResponse struct {
	Items      []*PaymentResponse `json:"items"`
	NextCursor string             `json:"nextCursor,omitempty"`
}

type PaymentMemoResponse struct {
	Payment     *PaymentResponse `json:"payment"`
	MonthlyRent string           `json:"monthlyRent"`
	PayerPhone  string           `json:"payerPhone"`
	OwnerName   string           `json:"ownerName"`
	OwnerPhone  string           `json:"ownerPhone"`
}

type LeaveRequestResponse struct {
	ID             uuid.UUID       `json:"id"`
	AllotmentID    uuid.UUID       `json:"allotmentId"`
	ApartmentID    uuid.UUID       `json:"apartmentId"`
	Address        AddressResponse `json:"address"`
	RequesterID    uuid.UUID       `json:"requesterId"`
	RequesterName  string          `json:"requesterName"`
	RequesterPhone string          `json:"requesterPhone"`
	OwnerID        uuid.UUID       `json:"ownerId"`
	FromMonth      string          `json:"fromMonth"`
	Note           string          `json:"note"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	return fill[RequestResponse](v)
}

func FromRequestViews(vs []*queries.RequestView) []*RequestResponse {
	return fillAll[RequestResponse](vs)
}

func FromAllotmentResult(r *commands.AllotmentResult) *AllotmentResultResponse {
	return fill[AllotmentResultResponse](r)
}

func FromPaymentViews(vs []*queries.PaymentView, next *queries.Cursor) *PaymentListResponse {
	resp := &PaymentListResponse{Items: fillAll[PaymentResponse](vs)}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

func FromPaymentMemoView(v *queries.PaymentMemoView) *PaymentMemoResponse {
	return &PaymentMemoResponse{
		Payment:     fill[PaymentResponse](v.Payment),
		MonthlyRent: v.MonthlyRent,
		PayerPhone:  v.PayerPhone,
		OwnerName:   v.OwnerName,
		OwnerPhone:  v.OwnerPhone,
	}
}

func FromLeaveRequestView(v *queries.LeaveRequestView) *LeaveRequestResponse {
	return fill[LeaveRequestResponse](v)
}

func FromLeaveRequestViews(vs []*queries.LeaveRequestView) []*LeaveRequestResponse {
	return fillAll[LeaveRequestResponse](vs)
}
