//go:build unit || e2e

package builder

import (
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/leave"
	"tenancy-service/internal/domain/ledger"

	"github.com/google/uuid"
)

type LeaveBuilder struct {
	AllotmentID  uuid.UUID
	ApartmentID  uuid.UUID
	RequesterID  uuid.UUID
	OwnerID      uuid.UUID
	FromMonth    string
	Note         string
	NoticeMonths int
	Status       leave.Status
	Now          time.Time
}

func NewLeaveBuilder() *LeaveBuilder {
	return &LeaveBuilder{
		AllotmentID:  uuid.New(),
		ApartmentID:  uuid.New(),
		RequesterID:  uuid.New(),
		OwnerID:      uuid.New(),
		FromMonth:    "2024-06",
		Note:         "Relocating for work",
		NoticeMonths: 1,
		Status:       leave.StatusPending,
		Now:          time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *LeaveBuilder) With(mutate func(*LeaveBuilder)) *LeaveBuilder {
	mutate(b)
	return b
}

func (b *LeaveBuilder) For(apt *apartment.Apartment) *LeaveBuilder {
	b.ApartmentID = apt.ID()
	b.OwnerID = apt.OwnerID()
	if al := apt.Allotment(); al != nil {
		b.AllotmentID = al.ID()
		b.RequesterID = al.TenantID()
	}
	return b
}

func (b *LeaveBuilder) From(label string) *LeaveBuilder {
	b.FromMonth = label
	return b
}

func (b *LeaveBuilder) Rejected() *LeaveBuilder {
	b.Status = leave.StatusRejected
	return b
}

func (b *LeaveBuilder) BuildNotice() (leave.Notice, error) {
	from, err := ledger.ParseYearMonth(b.FromMonth)
	if err != nil {
		return leave.Notice{}, err
	}
	return leave.Notice{
		AllotmentID: b.AllotmentID,
		ApartmentID: b.ApartmentID,
		RequesterID: b.RequesterID,
		OwnerID:     b.OwnerID,
		FromMonth:   from,
		Note:        b.Note,
	}, nil
}

func (b *LeaveBuilder) BuildDomain() (*leave.LeaveRequest, error) {
	n, err := b.BuildNotice()
	if err != nil {
		return nil, err
	}
	l, err := leave.NewLeaveRequest(n, leave.Policy{NoticeMonths: b.NoticeMonths}, b.Now)
	if err != nil {
		return nil, err
	}
	if b.Status == leave.StatusPending {
		return l, nil
	}
	return leave.ReconstructLeaveRequest(l.ID(), n, b.Status, b.Now, b.Now), nil
}

func (b *LeaveBuilder) MustBuildDomain() *leave.LeaveRequest {
	l, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return l
}
