//go:build unit || e2e

package builder

import (
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/domain/money"
	"tenancy-service/internal/domain/payment"
	reqdto "tenancy-service/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentBuilder struct {
	AllotmentID    uuid.UUID
	ApartmentID    uuid.UUID
	PayerID        uuid.UUID
	OwnerID        uuid.UUID
	Amount         string
	MonthOf        string
	Method         string
	TransactionRef string
	Status         payment.Status
	Now            time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		AllotmentID:    uuid.New(),
		ApartmentID:    uuid.New(),
		PayerID:        uuid.New(),
		OwnerID:        uuid.New(),
		Amount:         "15000.00",
		MonthOf:        "2024-01",
		Method:         "bkash",
		TransactionRef: "TXN-8F2K1",
		Status:         payment.StatusPending,
		Now:            time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC),
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

// For binds the payment to an allotted apartment.
func (b *PaymentBuilder) For(apt *apartment.Apartment) *PaymentBuilder {
	b.ApartmentID = apt.ID()
	b.OwnerID = apt.OwnerID()
	if al := apt.Allotment(); al != nil {
		b.AllotmentID = al.ID()
		b.PayerID = al.TenantID()
	}
	return b
}

func (b *PaymentBuilder) ForMonth(label string) *PaymentBuilder {
	b.MonthOf = label
	return b
}

func (b *PaymentBuilder) Confirmed() *PaymentBuilder {
	b.Status = payment.StatusConfirmed
	return b
}

func (b *PaymentBuilder) BuildSubmission() (payment.Submission, error) {
	amount, err := money.ParseAmount(b.Amount)
	if err != nil {
		return payment.Submission{}, err
	}
	month, err := ledger.ParseYearMonth(b.MonthOf)
	if err != nil {
		return payment.Submission{}, err
	}
	method, err := payment.NewMethod(b.Method)
	if err != nil {
		return payment.Submission{}, err
	}
	return payment.Submission{
		AllotmentID:    b.AllotmentID,
		ApartmentID:    b.ApartmentID,
		PayerID:        b.PayerID,
		OwnerID:        b.OwnerID,
		Amount:         amount,
		MonthOf:        month,
		Method:         method,
		TransactionRef: b.TransactionRef,
	}, nil
}

func (b *PaymentBuilder) BuildDomain() (*payment.Payment, error) {
	s, err := b.BuildSubmission()
	if err != nil {
		return nil, err
	}
	p, err := payment.NewPayment(s, b.Now)
	if err != nil {
		return nil, err
	}
	if b.Status == payment.StatusPending {
		return p, nil
	}
	var confirmedAt *time.Time
	if b.Status == payment.StatusConfirmed {
		t := b.Now
		confirmedAt = &t
	}
	return payment.ReconstructPayment(p.ID(), s, b.Status, b.Now, confirmedAt), nil
}

func (b *PaymentBuilder) MustBuildDomain() *payment.Payment {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}

func (b *PaymentBuilder) BuildDTO() reqdto.SubmitPaymentRequest {
	return reqdto.SubmitPaymentRequest{
		ApartmentID:    b.ApartmentID,
		Amount:         decimal.RequireFromString(b.Amount),
		Method:         b.Method,
		TransactionRef: b.TransactionRef,
		MonthOf:        b.MonthOf,
	}
}
