//go:build unit

package infra_test

import (
	"database/sql"
	"testing"

	"tenancy-service/internal/infra"
	"tenancy-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_payments_allotment_month_confirmed"}
	foreignKey := &pgconn.PgError{Code: "23503", ConstraintName: "fk_allotments_apartment"}

	tests := []struct {
		name           string
		err            error
		kind           []infra.RepositoryErrorKind
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
	}{
		{name: "unique violation", err: unique, wantKind: infra.KindDuplicateKey, wantConstraint: "uq_payments_allotment_month_confirmed"},
		{name: "foreign key violation", err: foreignKey, wantKind: infra.KindForeignKeyViolated, wantConstraint: "fk_allotments_apartment"},
		{name: "other postgres error", err: &pgconn.PgError{Code: "40001"}, wantKind: infra.KindDBFailure},
		{name: "plain error", err: assert.AnError, wantKind: infra.KindDBFailure},
		{name: "explicit kind wins", err: sql.ErrNoRows, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, wantKind: infra.KindNotFound},
		{name: "explicit kind over classified", err: unique, kind: []infra.RepositoryErrorKind{infra.KindConflict}, wantKind: infra.KindConflict, wantConstraint: "uq_payments_allotment_month_confirmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed to save payment", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.wantKind))
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.wantConstraint, infra.ConstraintName(err))
			assert.Contains(t, err.Error(), "failed to save payment")
		})
	}
}

func TestIsKind_SurvivesWrapping(t *testing.T) {
	err := errs.Wrap(infra.WrapRepoErr("user not found", sql.ErrNoRows, infra.KindNotFound), "load tenant")

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	assert.False(t, infra.IsKind(assert.AnError, infra.KindNotFound))
}

func TestWrapRepoErr_NilCause(t *testing.T) {
	err := infra.WrapRepoErr("allotment is stale", nil, infra.KindConflict)

	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.Equal(t, "CONFLICT: allotment is stale", err.Error())
	assert.Empty(t, infra.ConstraintName(err))
}
