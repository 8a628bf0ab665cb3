package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, phone, nid, password_hash, role, allotted_apartment_id, last_login, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.Nid,
		&u.PasswordHash,
		&u.Role,
		&u.AllottedApartmentID,
		&u.LastLogin,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

const createUser = `
INSERT INTO users (id, name, email, phone, nid, password_hash, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) CreateUser(ctx context.Context, db DBTX, u User) error {
	_, err := db.Exec(ctx, createUser,
		u.ID,
		u.Name,
		u.Email,
		u.Phone,
		u.Nid,
		u.PasswordHash,
		u.Role,
		u.IsActive,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

const getUserByIDForUpdate = getUserByID + ` FOR UPDATE`

func (q *Queries) GetUserByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByIDForUpdate, id))
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByEmail, email))
}

const assignUserAllotment = `
UPDATE users SET allotted_apartment_id = $2, updated_at = now()
WHERE id = $1 AND allotted_apartment_id IS NULL`

func (q *Queries) AssignUserAllotment(ctx context.Context, db DBTX, userID, apartmentID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, assignUserAllotment, userID, apartmentID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const releaseUserAllotment = `
UPDATE users SET allotted_apartment_id = NULL, updated_at = now()
WHERE id = $1 AND allotted_apartment_id = $2`

func (q *Queries) ReleaseUserAllotment(ctx context.Context, db DBTX, userID, apartmentID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, releaseUserAllotment, userID, apartmentID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const updateLastLogin = `UPDATE users SET last_login = $2 WHERE id = $1`

func (q *Queries) UpdateLastLogin(ctx context.Context, db DBTX, id uuid.UUID, at time.Time) error {
	_, err := db.Exec(ctx, updateLastLogin, id, at)
	return err
}
