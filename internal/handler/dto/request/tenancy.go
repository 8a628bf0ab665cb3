package request

import (
	"tenancy-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRentalRequest struct {
	TenancyType string `json:"tenancyType" binding:"required,oneof=bachelor family"`
	Occupants   int    `json:"occupants" binding:"required,gte=1"`
	Note        string `json:"note" binding:"max=500"`
}

func (r CreateRentalRequest) ToInput(apartmentID, requesterID uuid.UUID) commands.CreateRequestInput {
	return commands.CreateRequestInput{
		ApartmentID: apartmentID,
		RequesterID: requesterID,
		TenancyType: r.TenancyType,
		Occupants:   r.Occupants,
		Note:        r.Note,
	}
}

type SubmitPaymentRequest struct {
	ApartmentID    uuid.UUID       `json:"apartmentId" binding:"required"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string" example:"15000.00"`
	Method         string          `json:"method" binding:"required"`
	TransactionRef string          `json:"transactionRef" binding:"required,max=64"`
	MonthOf        string          `json:"monthOf" binding:"required" example:"2024-02"`
}

func (r SubmitPaymentRequest) ToInput(payerID uuid.UUID) commands.SubmitPaymentInput {
	return commands.SubmitPaymentInput{
		ApartmentID:    r.ApartmentID,
		PayerID:        payerID,
		Amount:         r.Amount.String(),
		Method:         r.Method,
		TransactionRef: r.TransactionRef,
		MonthOf:        r.MonthOf,
	}
}

type SubmitLeaveRequest struct {
	ApartmentID uuid.UUID `json:"apartmentId" binding:"required"`
	FromMonth   string    `json:"fromMonth" binding:"required" example:"2024-06"`
	Note        string    `json:"note"`
}

func (r SubmitLeaveRequest) ToInput(requesterID uuid.UUID) commands.SubmitLeaveInput {
	return commands.SubmitLeaveInput{
		ApartmentID: r.ApartmentID,
		RequesterID: requesterID,
		FromMonth:   r.FromMonth,
		Note:        r.Note,
	}
}
