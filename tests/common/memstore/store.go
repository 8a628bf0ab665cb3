//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for use-case tests.
// Transactions are serialised; each works on a copy of the tables that is
// swapped in on success and dropped on error.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/leave"
	"tenancy-service/internal/domain/payment"
	"tenancy-service/internal/domain/rentalrequest"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type tables struct {
	users      map[uuid.UUID]*user.User
	apartments map[uuid.UUID]*apartment.Apartment
	allotments map[uuid.UUID]*apartment.Allotment
	requests   map[uuid.UUID]*rentalrequest.Request
	payments   map[uuid.UUID]*payment.Payment
	leaves     map[uuid.UUID]*leave.LeaveRequest

	// row locks taken by the running transaction, in order
	locks []string
}

func newTables() *tables {
	return &tables{
		users:      map[uuid.UUID]*user.User{},
		apartments: map[uuid.UUID]*apartment.Apartment{},
		allotments: map[uuid.UUID]*apartment.Allotment{},
		requests:   map[uuid.UUID]*rentalrequest.Request{},
		payments:   map[uuid.UUID]*payment.Payment{},
		leaves:     map[uuid.UUID]*leave.LeaveRequest{},
	}
}

// Stored values are never mutated in place, so a shallow copy of each map
// is a full snapshot.
func (t *tables) clone() *tables {
	return &tables{
		users:      maps.Clone(t.users),
		apartments: maps.Clone(t.apartments),
		allotments: maps.Clone(t.allotments),
		requests:   maps.Clone(t.requests),
		payments:   maps.Clone(t.payments),
		leaves:     maps.Clone(t.leaves),
	}
}

type Store struct {
	mu        sync.Mutex
	data      *tables
	commits   int
	lastLocks []string
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{data: newTables()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	err := fn(ctx, &memTx{t: work})
	s.lastLocks = work.locks
	if err != nil {
		return err
	}
	s.data = work
	s.commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(ctx, &memTx{t: s.data.clone()})
}

// LastLocks lists the rows the most recent write transaction locked, as
// "users:<id>" or "apartments:<id>", in acquisition order.
func (s *Store) LastLocks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lastLocks)
}

// Commits counts successful write transactions.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

type memTx struct {
	t *tables
}

func (tx *memTx) Users() shared.UserRepository                 { return userRepo{tx.t} }
func (tx *memTx) Apartments() shared.ApartmentRepository       { return apartmentRepo{tx.t} }
func (tx *memTx) Allotments() shared.AllotmentRepository       { return allotmentRepo{tx.t} }
func (tx *memTx) Requests() shared.RequestRepository           { return requestRepo{tx.t} }
func (tx *memTx) Payments() shared.PaymentRepository           { return paymentRepo{tx.t} }
func (tx *memTx) LeaveRequests() shared.LeaveRequestRepository { return leaveRepo{tx.t} }
