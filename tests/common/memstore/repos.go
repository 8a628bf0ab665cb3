//go:build unit

package memstore

import (
	"context"
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/leave"
	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/domain/payment"
	"tenancy-service/internal/domain/rentalrequest"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names mirror migrations/001_initial_schema.sql so callers that
// inspect infra.ConstraintName behave as against postgres.
const (
	constraintUserEmail          = "users_email_key"
	constraintActiveApartment    = "allotments_active_apartment_key"
	constraintActiveTenant       = "allotments_active_tenant_key"
	constraintLiveRequest        = "rental_requests_live_key"
	constraintConfirmedMonth     = "payments_confirmed_month_key"
	constraintOpenLeave          = "leave_requests_open_key"
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func conflict(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindConflict)
}

func duplicate(msg, constraint string) error {
	return infra.WrapRepoErr(msg, &pgconn.PgError{Code: pgErrCodeUniqueViolation, ConstraintName: constraint})
}

func missingReference(msg, constraint string) error {
	return infra.WrapRepoErr(msg, &pgconn.PgError{Code: pgErrCodeForeignKeyViolation, ConstraintName: constraint})
}

// users

type userRepo struct{ t *tables }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.t.users {
		if existing.Email() == u.Email() {
			return duplicate("failed to create user", constraintUserEmail)
		}
	}
	r.t.users[u.ID()] = cloneUser(u)
	return nil
}

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.t.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return cloneUser(u), nil
}

func (r userRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.t.locks = append(r.t.locks, "users:"+id.String())
	return r.FindByID(ctx, id)
}

func (r userRepo) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	for _, u := range r.t.users {
		if u.Email() == email {
			return cloneUser(u), nil
		}
	}
	return nil, notFound("user not found")
}

func (r userRepo) AssignAllotment(_ context.Context, userID, apartmentID uuid.UUID) error {
	u, ok := r.t.users[userID]
	if !ok {
		return notFound("user not found")
	}
	if u.AllottedApartmentID() != nil {
		return conflict("user already holds an allotment")
	}
	id := apartmentID
	r.t.users[userID] = withAllotment(u, &id, u.UpdatedAt())
	return nil
}

func (r userRepo) ReleaseAllotment(_ context.Context, userID, apartmentID uuid.UUID) error {
	u, ok := r.t.users[userID]
	if !ok {
		return notFound("user not found")
	}
	if cur := u.AllottedApartmentID(); cur == nil || *cur != apartmentID {
		return conflict("user is not allotted to this apartment")
	}
	r.t.users[userID] = withAllotment(u, nil, u.UpdatedAt())
	return nil
}

func (r userRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID) error {
	u, ok := r.t.users[userID]
	if !ok {
		return notFound("user not found")
	}
	now := time.Now()
	r.t.users[userID] = user.ReconstructUser(u.ID(), u.Profile(), u.PasswordHash(), u.Role(),
		u.AllottedApartmentID(), &now, u.IsActive(), u.CreatedAt(), u.UpdatedAt())
	return nil
}

// apartments

type apartmentRepo struct{ t *tables }

func (r apartmentRepo) Create(_ context.Context, a *apartment.Apartment) error {
	if _, ok := r.t.users[a.OwnerID()]; !ok {
		return missingReference("failed to create apartment", "apartments_owner_id_fkey")
	}
	r.t.apartments[a.ID()] = stripAllotment(a)
	return nil
}

func (r apartmentRepo) FindByID(_ context.Context, id uuid.UUID) (*apartment.Apartment, error) {
	a, ok := r.t.apartments[id]
	if !ok {
		return nil, notFound("apartment not found")
	}
	return apartment.ReconstructApartment(a.ID(), a.OwnerID(), a.Attributes(),
		r.t.activeAllotment(id), a.CreatedAt(), a.UpdatedAt()), nil
}

func (r apartmentRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*apartment.Apartment, error) {
	r.t.locks = append(r.t.locks, "apartments:"+id.String())
	return r.FindByID(ctx, id)
}

func (r apartmentRepo) Update(_ context.Context, a *apartment.Apartment) error {
	if _, ok := r.t.apartments[a.ID()]; !ok {
		return notFound("apartment not found")
	}
	r.t.apartments[a.ID()] = stripAllotment(a)
	return nil
}

// Delete cascades to the apartment's requests like the schema does.
func (r apartmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.t.apartments[id]; !ok {
		return notFound("apartment not found")
	}
	delete(r.t.apartments, id)
	for reqID, req := range r.t.requests {
		if req.ApartmentID() == id {
			delete(r.t.requests, reqID)
		}
	}
	return nil
}

func (t *tables) activeAllotment(apartmentID uuid.UUID) *apartment.Allotment {
	for _, a := range t.allotments {
		if a.ApartmentID() == apartmentID && a.IsActive() {
			return cloneAllotment(a)
		}
	}
	return nil
}

// allotments

type allotmentRepo struct{ t *tables }

func (r allotmentRepo) Create(_ context.Context, a *apartment.Allotment) error {
	for _, existing := range r.t.allotments {
		if !existing.IsActive() {
			continue
		}
		if existing.ApartmentID() == a.ApartmentID() {
			return duplicate("failed to create allotment", constraintActiveApartment)
		}
		if existing.TenantID() == a.TenantID() {
			return duplicate("failed to create allotment", constraintActiveTenant)
		}
	}
	r.t.allotments[a.ID()] = cloneAllotment(a)
	return nil
}

func (r allotmentRepo) End(_ context.Context, a *apartment.Allotment) error {
	cur, ok := r.t.allotments[a.ID()]
	if !ok {
		return notFound("allotment not found")
	}
	if !cur.IsActive() {
		return conflict("allotment already ended")
	}
	r.t.allotments[a.ID()] = apartment.ReconstructAllotment(cur.ID(), cur.ApartmentID(), cur.TenantID(),
		cur.StartedAt(), a.EndedAt(), cur.PaymentIDs())
	return nil
}

func (r allotmentRepo) AppendPayment(_ context.Context, allotmentID, paymentID uuid.UUID) error {
	cur, ok := r.t.allotments[allotmentID]
	if !ok {
		return notFound("allotment not found")
	}
	next := cloneAllotment(cur)
	if err := next.RecordPayment(paymentID); err != nil {
		return err
	}
	r.t.allotments[allotmentID] = next
	return nil
}

func (r allotmentRepo) ConfirmedMonths(_ context.Context, allotmentID uuid.UUID) ([]ledger.YearMonth, error) {
	a, ok := r.t.allotments[allotmentID]
	if !ok {
		return []ledger.YearMonth{}, nil
	}
	// history order, and only payments recorded in the history count
	months := []ledger.YearMonth{}
	for _, id := range a.PaymentIDs() {
		if p, ok := r.t.payments[id]; ok && p.IsConfirmed() {
			months = append(months, p.MonthOf())
		}
	}
	return months, nil
}

// rental requests

type requestRepo struct{ t *tables }

func (r requestRepo) Create(_ context.Context, req *rentalrequest.Request) error {
	if _, ok := r.t.apartments[req.ApartmentID()]; !ok {
		return missingReference("failed to create request", "rental_requests_apartment_id_fkey")
	}
	for _, existing := range r.t.requests {
		if existing.ApartmentID() == req.ApartmentID() &&
			existing.RequesterID() == req.RequesterID() &&
			existing.Status().IsLive() {
			return duplicate("failed to create request", constraintLiveRequest)
		}
	}
	r.t.requests[req.ID()] = cloneRequest(req)
	return nil
}

func (r requestRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*rentalrequest.Request, error) {
	req, ok := r.t.requests[id]
	if !ok {
		return nil, notFound("request not found")
	}
	return cloneRequest(req), nil
}

func (r requestRepo) UpdateStatus(_ context.Context, req *rentalrequest.Request) error {
	if _, ok := r.t.requests[req.ID()]; !ok {
		return notFound("request not found")
	}
	r.t.requests[req.ID()] = cloneRequest(req)
	return nil
}

func (r requestRepo) ExistsLive(_ context.Context, apartmentID, requesterID uuid.UUID) (bool, error) {
	for _, req := range r.t.requests {
		if req.ApartmentID() == apartmentID && req.RequesterID() == requesterID && req.Status().IsLive() {
			return true, nil
		}
	}
	return false, nil
}

func (r requestRepo) DeleteByApartment(_ context.Context, apartmentID uuid.UUID) (int64, error) {
	return r.deleteWhere(func(req *rentalrequest.Request) bool { return req.ApartmentID() == apartmentID }), nil
}

func (r requestRepo) DeleteByRequester(_ context.Context, requesterID uuid.UUID) (int64, error) {
	return r.deleteWhere(func(req *rentalrequest.Request) bool { return req.RequesterID() == requesterID }), nil
}

func (r requestRepo) deleteWhere(match func(*rentalrequest.Request) bool) int64 {
	var n int64
	for id, req := range r.t.requests {
		if match(req) {
			delete(r.t.requests, id)
			n++
		}
	}
	return n
}

// payments

type paymentRepo struct{ t *tables }

func (r paymentRepo) Create(_ context.Context, p *payment.Payment) error {
	if _, ok := r.t.allotments[p.AllotmentID()]; !ok {
		return missingReference("failed to create payment", "payments_allotment_id_fkey")
	}
	r.t.payments[p.ID()] = clonePayment(p)
	return nil
}

func (r paymentRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*payment.Payment, error) {
	p, ok := r.t.payments[id]
	if !ok {
		return nil, notFound("payment not found")
	}
	return clonePayment(p), nil
}

func (r paymentRepo) UpdateStatus(_ context.Context, p *payment.Payment) error {
	if _, ok := r.t.payments[p.ID()]; !ok {
		return notFound("payment not found")
	}
	if p.IsConfirmed() {
		for _, other := range r.t.payments {
			if other.ID() != p.ID() && other.IsConfirmed() &&
				other.AllotmentID() == p.AllotmentID() && other.MonthOf() == p.MonthOf() {
				return duplicate("failed to update payment status", constraintConfirmedMonth)
			}
		}
	}
	r.t.payments[p.ID()] = clonePayment(p)
	return nil
}

func (r paymentRepo) ExistsConfirmed(_ context.Context, allotmentID uuid.UUID, month ledger.YearMonth) (bool, error) {
	for _, p := range r.t.payments {
		if p.AllotmentID() == allotmentID && p.MonthOf() == month && p.IsConfirmed() {
			return true, nil
		}
	}
	return false, nil
}

// leave requests

type leaveRepo struct{ t *tables }

func (r leaveRepo) Create(_ context.Context, l *leave.LeaveRequest) error {
	for _, existing := range r.t.leaves {
		if existing.AllotmentID() == l.AllotmentID() && existing.Status() != leave.StatusRejected {
			return duplicate("failed to create leave request", constraintOpenLeave)
		}
	}
	r.t.leaves[l.ID()] = cloneLeave(l)
	return nil
}

func (r leaveRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*leave.LeaveRequest, error) {
	l, ok := r.t.leaves[id]
	if !ok {
		return nil, notFound("leave request not found")
	}
	return cloneLeave(l), nil
}

func (r leaveRepo) UpdateStatus(_ context.Context, l *leave.LeaveRequest) error {
	if _, ok := r.t.leaves[l.ID()]; !ok {
		return notFound("leave request not found")
	}
	r.t.leaves[l.ID()] = cloneLeave(l)
	return nil
}

func (r leaveRepo) ExistsOpen(_ context.Context, allotmentID uuid.UUID) (bool, error) {
	for _, l := range r.t.leaves {
		if l.AllotmentID() == allotmentID && l.Status() != leave.StatusRejected {
			return true, nil
		}
	}
	return false, nil
}
