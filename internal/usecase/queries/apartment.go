package queries

import (
	"context"
	"strings"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/infra"
	"tenancy-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNoAllotment = errs.NotFound("no active allotment")

//go:generate mockgen -source=apartment.go -destination=../../../tests/mock/queries/apartment.go -package=queriesmock
type ApartmentQueries interface {
	ListAvailable(ctx context.Context, search string) ([]*ApartmentView, error)
	GetByID(ctx context.Context, apartmentID, actorID uuid.UUID) (*ApartmentDetailView, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*OwnedApartmentView, error)
	GetMyAllotment(ctx context.Context, tenantID uuid.UUID) (*MyAllotmentView, error)
}

type ApartmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ApartmentView, error)
	// ListAvailable takes an ILIKE pattern.
	ListAvailable(ctx context.Context, pattern string) ([]*ApartmentView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*OwnedApartmentView, error)
	FindActiveAllotment(ctx context.Context, apartmentID uuid.UUID) (*AllotmentView, error)
	FindAllotmentByTenant(ctx context.Context, tenantID uuid.UUID) (*MyAllotmentView, error)
}

// ApartmentSearchCache holds available-listing results by normalized query.
// Get returns the versioned key it looked under, and a miss is stored with
// Set under that same key. A result read before an invalidation therefore
// lands on a version nobody reads any more. An empty key means "do not store".
type ApartmentSearchCache interface {
	Get(ctx context.Context, query string) (items []*ApartmentView, key string, ok bool)
	Set(ctx context.Context, key string, items []*ApartmentView)
}

type apartmentQueriesImpl struct {
	apartments ApartmentReadStore
	requests   RequestReadStore
	cache      ApartmentSearchCache
}

func NewApartmentQueries(apartments ApartmentReadStore, requests RequestReadStore, cache ApartmentSearchCache) ApartmentQueries {
	return &apartmentQueriesImpl{
		apartments: apartments,
		requests:   requests,
		cache:      cache,
	}
}

func (q *apartmentQueriesImpl) ListAvailable(ctx context.Context, search string) ([]*ApartmentView, error) {
	query := strings.ToLower(strings.TrimSpace(search))
	items, key, ok := q.cache.Get(ctx, query)
	if ok {
		return items, nil
	}

	items, err := q.apartments.ListAvailable(ctx, likePattern(query))
	if err != nil {
		return nil, err
	}

	q.cache.Set(ctx, key, items)
	return items, nil
}

func (q *apartmentQueriesImpl) GetByID(ctx context.Context, apartmentID, actorID uuid.UUID) (*ApartmentDetailView, error) {
	apt, err := q.apartments.FindByID(ctx, apartmentID)
	if err != nil {
		return nil, notFoundAs(err, apartment.ErrApartmentNotFound)
	}
	detail := &ApartmentDetailView{Apartment: apt}

	isOwner := apt.OwnerID == actorID
	if isOwner {
		detail.Requests, err = q.requests.ListByApartment(ctx, apartmentID)
		if err != nil {
			return nil, err
		}
	}

	if apt.IsAllotted {
		allotment, err := q.apartments.FindActiveAllotment(ctx, apartmentID)
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			// vacated between the two reads
		case err != nil:
			return nil, err
		case isOwner || allotment.TenantID == actorID:
			detail.Allotment = allotment
		}
	}

	return detail, nil
}

func (q *apartmentQueriesImpl) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*OwnedApartmentView, error) {
	return q.apartments.ListByOwner(ctx, ownerID)
}

func (q *apartmentQueriesImpl) GetMyAllotment(ctx context.Context, tenantID uuid.UUID) (*MyAllotmentView, error) {
	v, err := q.apartments.FindAllotmentByTenant(ctx, tenantID)
	if err != nil {
		return nil, notFoundAs(err, ErrNoAllotment)
	}
	return v, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern matches the query as a literal substring.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

func notFoundAs(err, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return target
	}
	return err
}
