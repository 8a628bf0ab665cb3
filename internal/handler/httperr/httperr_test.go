//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/auth"
	"tenancy-service/internal/domain/payment"
	"tenancy-service/internal/domain/rentalrequest"
	"tenancy-service/internal/handler/httperr"
	"tenancy-service/internal/pkg/errs"
	"tenancy-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: payment.ErrMonthNotDue, want: http.StatusBadRequest},
		{name: "unauthenticated", err: auth.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "forbidden", err: rentalrequest.ErrOwnApartment, want: http.StatusForbidden},
		{name: "not found", err: apartment.ErrApartmentNotFound, want: http.StatusNotFound},
		{name: "conflict", err: apartment.ErrApartmentUnavailable, want: http.StatusConflict},
		{name: "wrapped conflict keeps its category", err: errs.Wrap(payment.ErrMonthAlreadyPaid, "confirm payment"), want: http.StatusConflict},
		{name: "uncategorised", err: errors.New("driver: bad connection"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httperr.StatusOf(tc.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/conflict", func(c *gin.Context) { httperr.Abort(c, apartment.ErrApartmentUnavailable) })
	r.GET("/internal", func(c *gin.Context) { httperr.Abort(c, errors.New("pq: password authentication failed")) })

	t.Run("category errors expose their message", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/conflict", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "apartment is already allotted")
	})

	t.Run("internal errors are masked", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/internal", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "password")
	})
}
