package converter

import (
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/pkg/errs"
	"tenancy-service/internal/pkg/pgconv"
)

func UserToRow(u *user.User) pgquery.User {
	return pgquery.User{
		ID:                  u.ID(),
		Name:                u.Name().Value(),
		Email:               u.Email().Value(),
		Phone:               u.Phone().Value(),
		Nid:                 u.NID().Value(),
		PasswordHash:        u.PasswordHash(),
		Role:                u.Role().String(),
		AllottedApartmentID: pgconv.UUIDPtrToPgtype(u.AllottedApartmentID()),
		LastLogin:           pgconv.TimePtrToPgtype(u.LastLogin()),
		IsActive:            u.IsActive(),
		CreatedAt:           u.CreatedAt(),
		UpdatedAt:           u.UpdatedAt(),
	}
}

func UserFromRow(row pgquery.User) (*user.User, error) {
	name, err := user.NewName(row.Name)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	phone, err := user.NewPhoneNumber(row.Phone)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	nid, err := user.NewNationalID(row.Nid)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}

	return user.ReconstructUser(
		row.ID,
		user.Profile{Name: name, Email: email, Phone: phone, NID: nid},
		row.PasswordHash,
		role,
		pgconv.UUIDPtrFromPgtype(row.AllottedApartmentID),
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}
