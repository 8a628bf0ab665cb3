//go:build unit

package memstore

import (
	"slices"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/leave"
	"tenancy-service/internal/domain/payment"
	"tenancy-service/internal/domain/rentalrequest"
	"tenancy-service/internal/domain/user"

	"github.com/google/uuid"
)

// Seeding writes straight to the committed tables without constraint checks.

func (s *Store) PutUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.users[u.ID()] = cloneUser(u)
}

// PutApartment stores the apartment and, if present, its active allotment.
func (s *Store) PutApartment(a *apartment.Apartment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.apartments[a.ID()] = stripAllotment(a)
	if al := a.Allotment(); al != nil {
		s.data.allotments[al.ID()] = cloneAllotment(al)
	}
}

func (s *Store) PutAllotment(a *apartment.Allotment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.allotments[a.ID()] = cloneAllotment(a)
}

func (s *Store) PutRequest(r *rentalrequest.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.requests[r.ID()] = cloneRequest(r)
}

func (s *Store) PutPayment(p *payment.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.payments[p.ID()] = clonePayment(p)
}

func (s *Store) PutLeave(l *leave.LeaveRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.leaves[l.ID()] = cloneLeave(l)
}

// Committed-state readers.

func (s *Store) User(id uuid.UUID) (*user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.data.users[id]
	if !ok {
		return nil, false
	}
	return cloneUser(u), true
}

func (s *Store) Apartment(id uuid.UUID) (*apartment.Apartment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.data.apartments[id]
	if !ok {
		return nil, false
	}
	return apartment.ReconstructApartment(a.ID(), a.OwnerID(), a.Attributes(),
		s.data.activeAllotment(id), a.CreatedAt(), a.UpdatedAt()), true
}

func (s *Store) Allotment(id uuid.UUID) (*apartment.Allotment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.data.allotments[id]
	if !ok {
		return nil, false
	}
	return cloneAllotment(a), true
}

func (s *Store) Request(id uuid.UUID) (*rentalrequest.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.data.requests[id]
	if !ok {
		return nil, false
	}
	return cloneRequest(r), true
}

func (s *Store) Payment(id uuid.UUID) (*payment.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data.payments[id]
	if !ok {
		return nil, false
	}
	return clonePayment(p), true
}

func (s *Store) Leave(id uuid.UUID) (*leave.LeaveRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.data.leaves[id]
	if !ok {
		return nil, false
	}
	return cloneLeave(l), true
}

// RequestIDs lists stored request ids in a stable order.
func (s *Store) RequestIDs() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(s.data.requests))
	for id := range s.data.requests {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
	return ids
}

func (s *Store) ActiveAllotmentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.data.allotments {
		if a.IsActive() {
			n++
		}
	}
	return n
}
