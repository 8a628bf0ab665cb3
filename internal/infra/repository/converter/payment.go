package converter

import (
	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/domain/money"
	"tenancy-service/internal/domain/payment"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/pkg/errs"
	"tenancy-service/internal/pkg/pgconv"
)

func PaymentToRow(p *payment.Payment) pgquery.Payment {
	return pgquery.Payment{
		ID:             p.ID(),
		AllotmentID:    p.AllotmentID(),
		ApartmentID:    p.ApartmentID(),
		PayerID:        p.PayerID(),
		OwnerID:        p.OwnerID(),
		AmountCents:    p.Amount().MinorUnits(),
		MonthOf:        p.MonthOf().String(),
		Method:         p.Method().String(),
		TransactionRef: p.TransactionRef(),
		Status:         p.Status().String(),
		SubmittedAt:    p.SubmittedAt(),
		ConfirmedAt:    pgconv.TimePtrToPgtype(p.ConfirmedAt()),
	}
}

func PaymentFromRow(row pgquery.Payment) (*payment.Payment, error) {
	month, err := ledger.ParseYearMonth(row.MonthOf)
	if err != nil {
		return nil, errs.Wrapf(err, "stored payment %s", row.ID)
	}
	method, err := payment.NewMethod(row.Method)
	if err != nil {
		return nil, errs.Wrapf(err, "stored payment %s", row.ID)
	}
	status, err := payment.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "stored payment %s", row.ID)
	}
	sub := payment.Submission{
		AllotmentID:    row.AllotmentID,
		ApartmentID:    row.ApartmentID,
		PayerID:        row.PayerID,
		OwnerID:        row.OwnerID,
		Amount:         money.FromMinorUnits(row.AmountCents),
		MonthOf:        month,
		Method:         method,
		TransactionRef: row.TransactionRef,
	}
	return payment.ReconstructPayment(row.ID, sub, status, row.SubmittedAt, pgconv.TimePtrFromPgtype(row.ConfirmedAt)), nil
}
