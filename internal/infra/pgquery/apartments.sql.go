package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const apartmentColumns = `a.id, a.owner_id, a.street, a.area, a.city, a.rental_price_cents, a.size_sqft, a.description,
	a.total_rooms, a.bedrooms, a.bathrooms, a.has_parking, a.has_elevator, a.total_floors, a.floor, a.created_at, a.updated_at`

func apartmentDest(a *Apartment) []any {
	return []any{
		&a.ID,
		&a.OwnerID,
		&a.Street,
		&a.Area,
		&a.City,
		&a.RentalPriceCents,
		&a.SizeSqft,
		&a.Description,
		&a.TotalRooms,
		&a.Bedrooms,
		&a.Bathrooms,
		&a.HasParking,
		&a.HasElevator,
		&a.TotalFloors,
		&a.Floor,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
}

func scanApartment(row pgx.Row) (Apartment, error) {
	var a Apartment
	err := row.Scan(apartmentDest(&a)...)
	return a, err
}

const createApartment = `
INSERT INTO apartments (
	id, owner_id, street, area, city, rental_price_cents, size_sqft, description,
	total_rooms, bedrooms, bathrooms, has_parking, has_elevator, total_floors, floor, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

func (q *Queries) CreateApartment(ctx context.Context, db DBTX, a Apartment) error {
	_, err := db.Exec(ctx, createApartment,
		a.ID,
		a.OwnerID,
		a.Street,
		a.Area,
		a.City,
		a.RentalPriceCents,
		a.SizeSqft,
		a.Description,
		a.TotalRooms,
		a.Bedrooms,
		a.Bathrooms,
		a.HasParking,
		a.HasElevator,
		a.TotalFloors,
		a.Floor,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

const getApartmentByID = `SELECT ` + apartmentColumns + ` FROM apartments a WHERE a.id = $1`

func (q *Queries) GetApartmentByID(ctx context.Context, db DBTX, id uuid.UUID) (Apartment, error) {
	return scanApartment(db.QueryRow(ctx, getApartmentByID, id))
}

const getApartmentByIDForUpdate = getApartmentByID + ` FOR UPDATE`

func (q *Queries) GetApartmentByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Apartment, error) {
	return scanApartment(db.QueryRow(ctx, getApartmentByIDForUpdate, id))
}

const updateApartment = `
UPDATE apartments SET
	street = $2, area = $3, city = $4, rental_price_cents = $5, size_sqft = $6, description = $7,
	total_rooms = $8, bedrooms = $9, bathrooms = $10, has_parking = $11, has_elevator = $12,
	total_floors = $13, floor = $14, updated_at = $15
WHERE id = $1`

func (q *Queries) UpdateApartment(ctx context.Context, db DBTX, a Apartment) (int64, error) {
	tag, err := db.Exec(ctx, updateApartment,
		a.ID,
		a.Street,
		a.Area,
		a.City,
		a.RentalPriceCents,
		a.SizeSqft,
		a.Description,
		a.TotalRooms,
		a.Bedrooms,
		a.Bathrooms,
		a.HasParking,
		a.HasElevator,
		a.TotalFloors,
		a.Floor,
		a.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteApartment = `DELETE FROM apartments WHERE id = $1`

func (q *Queries) DeleteApartment(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteApartment, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// $1 is an ILIKE pattern; '%' matches every row.
const listAvailableApartments = `
SELECT ` + apartmentColumns + `
FROM apartments a
WHERE NOT EXISTS (SELECT 1 FROM allotments al WHERE al.apartment_id = a.id AND al.ended_at IS NULL)
  AND (a.street ILIKE $1 OR a.area ILIKE $1 OR a.city ILIKE $1)
ORDER BY a.created_at DESC, a.id`

func (q *Queries) ListAvailableApartments(ctx context.Context, db DBTX, pattern string) ([]Apartment, error) {
	rows, err := db.Query(ctx, listAvailableApartments, pattern)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(r pgx.Rows) (Apartment, error) { return scanApartment(r) })
}

type OwnedApartmentRow struct {
	Apartment
	LiveRequestCount int64
	IsAllotted       bool
}

const listApartmentsByOwner = `
SELECT ` + apartmentColumns + `,
	(SELECT count(*) FROM rental_requests r WHERE r.apartment_id = a.id AND r.status IN ('pending', 'accepted')),
	EXISTS (SELECT 1 FROM allotments al WHERE al.apartment_id = a.id AND al.ended_at IS NULL)
FROM apartments a
WHERE a.owner_id = $1
ORDER BY a.created_at DESC, a.id`

func (q *Queries) ListApartmentsByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]OwnedApartmentRow, error) {
	rows, err := db.Query(ctx, listApartmentsByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(r pgx.Rows) (OwnedApartmentRow, error) {
		var o OwnedApartmentRow
		dest := append(apartmentDest(&o.Apartment), &o.LiveRequestCount, &o.IsAllotted)
		err := r.Scan(dest...)
		return o, err
	})
}
