//go:build e2e

package tenancy_test

import (
	"fmt"
	"io"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/handler/dto/request"
	"tenancy-service/internal/handler/dto/response"
	"tenancy-service/tests/common/authtest"
	"tenancy-service/tests/common/dbtest"
	"tenancy-service/tests/common/httptest"
	"tenancy-service/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type tenancySuite struct {
	e2e.SharedSuite

	ownerID     uuid.UUID
	tenantID    uuid.UUID
	ownerToken  string
	tenantToken string
	otherToken  string
}

func TestTenancySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(tenancySuite))
}

func (s *tenancySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	owner := authtest.SignUp(t, s.DB, s.Router, "owner@example.com", string(user.RoleOwner))
	tenant := authtest.SignUp(t, s.DB, s.Router, "tenant@example.com", string(user.RoleTenant))
	other := authtest.SignUp(t, s.DB, s.Router, "other@example.com", string(user.RoleTenant))

	s.ownerID, s.ownerToken = owner.UserID, owner.Token
	s.tenantID, s.tenantToken = tenant.UserID, tenant.Token
	s.otherToken = other.Token
}

func (s *tenancySuite) currentMonth() ledger.YearMonth {
	loc, err := s.Config.Ledger.Location()
	require.NoError(s.T(), err)
	return ledger.MonthOf(time.Now().In(loc))
}

func (s *tenancySuite) do(method, path string, body any, token string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, method, path, body, token)
}

// serve is safe to call from another goroutine: it never touches s.T().
func (s *tenancySuite) serve(method, path, body, token string) *nethttptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := nethttptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := nethttptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *tenancySuite) createApartment() uuid.UUID {
	t := s.T()
	w := s.do(http.MethodPost, "/api/apartments", request.CreateApartmentRequest{
		Street:      "House 12, Road 5",
		Area:        "Dhanmondi",
		City:        "Dhaka",
		RentalPrice: decimal.RequireFromString("15000.00"),
		SizeSqft:    1200,
		TotalRooms:  5,
		Bedrooms:    3,
		Bathrooms:   2,
		HasParking:  true,
		TotalFloors: 6,
		Floor:       3,
	}, s.ownerToken)

	var res response.IDResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	id, err := uuid.Parse(res.ID)
	require.NoError(t, err)
	return id
}

// allot runs request, accept and confirm, leaving the tenant allotted.
func (s *tenancySuite) allot(apartmentID uuid.UUID) *response.AllotmentResultResponse {
	t := s.T()

	w := s.do(http.MethodPost, "/api/apartments/"+apartmentID.String()+"/requests",
		request.CreateRentalRequest{TenancyType: "family", Occupants: 3, Note: "moving from Chattogram"}, s.tenantToken)
	var created response.IDResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

	w = s.do(http.MethodPost, "/api/requests/"+created.ID+"/accept", nil, s.ownerToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/requests/"+created.ID+"/confirm", nil, s.tenantToken)
	var result response.AllotmentResultResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
	return &result
}

func (s *tenancySuite) listAvailable(q string) []*response.ApartmentResponse {
	var items []*response.ApartmentResponse
	w := s.do(http.MethodGet, "/api/apartments?q="+q, nil, "")
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
	return items
}

func (s *tenancySuite) TestRentalRequestFlow() {
	s.Run("confirm allots the apartment and purges other requests", func() {
		t := s.T()
		apartmentID := s.createApartment()

		require.Len(t, s.listAvailable("dhanmondi"), 1)

		w := s.do(http.MethodPost, "/api/apartments/"+apartmentID.String()+"/requests",
			request.CreateRentalRequest{TenancyType: "bachelor", Occupants: 1}, s.otherToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		result := s.allot(apartmentID)
		assert.Equal(t, apartmentID, result.ApartmentID)
		assert.Equal(t, s.tenantID, result.TenantID)
		// the confirmed request and the competing one
		assert.Equal(t, int64(2), result.PurgedRequests)

		assert.Empty(t, s.listAvailable("dhanmondi"), "allotted apartment still listed")

		var me response.UserResponse
		httptest.AssertSuccessResponse(t, s.do(http.MethodGet, "/api/auth/me", nil, s.tenantToken), http.StatusOK, &me)
		require.NotNil(t, me.AllottedApartmentID)
		assert.Equal(t, apartmentID, *me.AllottedApartmentID)

		var mine response.MyAllotmentResponse
		httptest.AssertSuccessResponse(t, s.do(http.MethodGet, "/api/allotments/mine", nil, s.tenantToken), http.StatusOK, &mine)
		assert.Equal(t, result.AllotmentID, mine.AllotmentID)
		require.NotNil(t, mine.Apartment)
		assert.Equal(t, "15000.00", mine.Apartment.RentalPrice)
	})

	s.Run("request racing a confirm never outlives the purge", func() {
		t := s.T()
		for round := range 5 {
			allotted, elsewhere := s.createApartment(), s.createApartment()
			tenant := authtest.SignUp(t, s.DB, s.Router, fmt.Sprintf("racer%d@example.com", round), string(user.RoleTenant))

			w := s.do(http.MethodPost, "/api/apartments/"+allotted.String()+"/requests",
				request.CreateRentalRequest{TenancyType: "family", Occupants: 2}, tenant.Token)
			var created response.IDResponse
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
			w = s.do(http.MethodPost, "/api/requests/"+created.ID+"/accept", nil, s.ownerToken)
			require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

			var confirm, apply *nethttptest.ResponseRecorder
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				confirm = s.serve(http.MethodPost, "/api/requests/"+created.ID+"/confirm", "", tenant.Token)
			}()
			go func() {
				defer wg.Done()
				apply = s.serve(http.MethodPost, "/api/apartments/"+elsewhere.String()+"/requests",
					`{"tenancyType":"family","occupants":2}`, tenant.Token)
			}()
			wg.Wait()

			require.Equal(t, http.StatusOK, confirm.Code, confirm.Body.String())
			assert.Contains(t, []int{http.StatusCreated, http.StatusConflict}, apply.Code, apply.Body.String())

			var live int
			require.NoError(t, s.DB.QueryRow(t.Context(),
				`SELECT count(*) FROM rental_requests WHERE requester_id = $1`, tenant.UserID).Scan(&live))
			assert.Zero(t, live, "round %d: allotted tenant still applies elsewhere", round)
		}
	})

	s.Run("duplicate live request is rejected", func() {
		apartmentID := s.createApartment()
		path := "/api/apartments/" + apartmentID.String() + "/requests"
		body := request.CreateRentalRequest{TenancyType: "family", Occupants: 2}

		require.Equal(s.T(), http.StatusCreated, s.do(http.MethodPost, path, body, s.tenantToken).Code)
		httptest.AssertErrorResponse(s.T(), s.do(http.MethodPost, path, body, s.tenantToken), http.StatusConflict, "request already sent")
	})

	s.Run("owners cannot request apartments", func() {
		apartmentID := s.createApartment()
		w := s.do(http.MethodPost, "/api/apartments/"+apartmentID.String()+"/requests",
			request.CreateRentalRequest{TenancyType: "family", Occupants: 2}, s.ownerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("confirm before accept is a conflict", func() {
		apartmentID := s.createApartment()
		w := s.do(http.MethodPost, "/api/apartments/"+apartmentID.String()+"/requests",
			request.CreateRentalRequest{TenancyType: "family", Occupants: 2}, s.tenantToken)
		var created response.IDResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

		w = s.do(http.MethodPost, "/api/requests/"+created.ID+"/confirm", nil, s.tenantToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "request is not accepted")
	})
}

func (s *tenancySuite) TestSearch() {
	s.Run("matches street, area or city ignoring case", func() {
		t := s.T()
		dbtest.CreateTestApartment(t, s.DB, s.ownerID, "Gulshan")
		dbtest.CreateTestApartment(t, s.DB, s.ownerID, "Banani")

		assert.Len(t, s.listAvailable(""), 2)
		assert.Len(t, s.listAvailable("GULSHAN"), 1)
		assert.Len(t, s.listAvailable("dhaka"), 2)
		assert.Empty(t, s.listAvailable("mirpur"))
		// wildcards in the query are literal
		assert.Empty(t, s.listAvailable("%25"))
	})

	s.Run("owner sees request counts on their listings", func() {
		t := s.T()
		apartmentID := dbtest.CreateTestApartment(t, s.DB, s.ownerID, "Uttara")
		w := s.do(http.MethodPost, "/api/apartments/"+apartmentID.String()+"/requests",
			request.CreateRentalRequest{TenancyType: "bachelor", Occupants: 2}, s.tenantToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var owned []*response.OwnedApartmentResponse
		httptest.AssertSuccessResponse(t, s.do(http.MethodGet, "/api/apartments/mine", nil, s.ownerToken), http.StatusOK, &owned)
		require.Len(t, owned, 1)
		assert.Equal(t, int64(1), owned[0].LiveRequestCount)
	})
}

func (s *tenancySuite) TestRentLedger() {
	s.Run("paying the current month clears the ledger", func() {
		t := s.T()
		apartmentID := s.createApartment()
		s.allot(apartmentID)
		month := s.currentMonth().String()
		unpaidURL := "/api/apartments/" + apartmentID.String() + "/unpaid-months"

		var unpaid response.UnpaidMonthsResponse
		httptest.AssertSuccessResponse(t, s.do(http.MethodGet, unpaidURL, nil, s.tenantToken), http.StatusOK, &unpaid)
		assert.Equal(t, []string{month}, unpaid.Months)
		assert.Equal(t, "15000.00", unpaid.TotalDue)

		w := s.do(http.MethodPost, "/api/payments", request.SubmitPaymentRequest{
			ApartmentID:    apartmentID,
			Amount:         decimal.RequireFromString("15000.00"),
			Method:         "bkash",
			TransactionRef: "BKS-0001",
			MonthOf:        month,
		}, s.tenantToken)
		var payment response.IDResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &payment)

		var pending response.PaymentListResponse
		httptest.AssertSuccessResponse(t, s.do(http.MethodGet, "/api/payments/pending", nil, s.ownerToken), http.StatusOK, &pending)
		require.Len(t, pending.Items, 1)
		assert.Equal(t, payment.ID, pending.Items[0].ID.String())

		memoURL := "/api/payments/" + payment.ID + "/memo"
		// no memo until the owner confirms
		httptest.AssertErrorResponse(t, s.do(http.MethodGet, memoURL, nil, s.tenantToken), http.StatusConflict, "")

		w = s.do(http.MethodPost, "/api/payments/"+payment.ID+"/confirm", nil, s.ownerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		httptest.AssertSuccessResponse(t, s.do(http.MethodGet, unpaidURL, nil, s.ownerToken), http.StatusOK, &unpaid)
		assert.Empty(t, unpaid.Months)
		assert.Equal(t, "0.00", unpaid.TotalDue)

		var memo response.PaymentMemoResponse
		httptest.AssertSuccessResponse(t, s.do(http.MethodGet, memoURL, nil, s.tenantToken), http.StatusOK, &memo)
		assert.Equal(t, "15000.00", memo.MonthlyRent)
		require.NotNil(t, memo.Payment)
		assert.Equal(t, "confirmed", memo.Payment.Status)
		assert.NotNil(t, memo.Payment.ConfirmedAt)

		httptest.AssertErrorResponse(t, s.do(http.MethodGet, memoURL, nil, s.otherToken), http.StatusForbidden, "")

		var history response.PaymentListResponse
		httptest.AssertSuccessResponse(t, s.do(http.MethodGet, "/api/payments?limit=10", nil, s.tenantToken), http.StatusOK, &history)
		require.Len(t, history.Items, 1)
		assert.Empty(t, history.NextCursor)
	})

	s.Run("stranger cannot read the ledger", func() {
		apartmentID := s.createApartment()
		s.allot(apartmentID)

		w := s.do(http.MethodGet, "/api/apartments/"+apartmentID.String()+"/unpaid-months", nil, s.otherToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})

	s.Run("only the allotted tenant can pay", func() {
		apartmentID := s.createApartment()
		s.allot(apartmentID)

		w := s.do(http.MethodPost, "/api/payments", request.SubmitPaymentRequest{
			ApartmentID:    apartmentID,
			Amount:         decimal.RequireFromString("15000.00"),
			Method:         "nagad",
			TransactionRef: "NGD-0001",
			MonthOf:        s.currentMonth().String(),
		}, s.otherToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})
}

func (s *tenancySuite) TestLeaveAndVacate() {
	s.Run("accepted leave then vacate relists the apartment", func() {
		t := s.T()
		apartmentID := s.createApartment()
		s.allot(apartmentID)

		tooSoon := request.SubmitLeaveRequest{ApartmentID: apartmentID, FromMonth: s.currentMonth().String()}
		httptest.AssertErrorResponse(t, s.do(http.MethodPost, "/api/leave-requests", tooSoon, s.tenantToken), http.StatusBadRequest, "notice period")

		from := s.currentMonth().AddMonths(s.Config.Ledger.LeaveNoticeMonths).String()
		w := s.do(http.MethodPost, "/api/leave-requests",
			request.SubmitLeaveRequest{ApartmentID: apartmentID, FromMonth: from, Note: "job transfer"}, s.tenantToken)
		var leaveID response.IDResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &leaveID)

		var received []*response.LeaveRequestResponse
		httptest.AssertSuccessResponse(t, s.do(http.MethodGet, "/api/leave-requests", nil, s.ownerToken), http.StatusOK, &received)
		require.Len(t, received, 1)
		assert.Equal(t, from, received[0].FromMonth)
		assert.Equal(t, "pending", received[0].Status)

		w = s.do(http.MethodPost, "/api/leave-requests/"+leaveID.ID+"/accept", nil, s.ownerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		var current response.LeaveRequestResponse
		httptest.AssertSuccessResponse(t, s.do(http.MethodGet, "/api/apartments/"+apartmentID.String()+"/leave-request", nil, s.tenantToken), http.StatusOK, &current)
		assert.Equal(t, "accepted", current.Status)

		w = s.do(http.MethodPost, "/api/apartments/"+apartmentID.String()+"/vacate", nil, s.ownerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Len(t, s.listAvailable("road%205"), 1)

		var me response.UserResponse
		httptest.AssertSuccessResponse(t, s.do(http.MethodGet, "/api/auth/me", nil, s.tenantToken), http.StatusOK, &me)
		assert.Nil(t, me.AllottedApartmentID)

		httptest.AssertErrorResponse(t, s.do(http.MethodGet, "/api/allotments/mine", nil, s.tenantToken), http.StatusNotFound, "")
	})

	s.Run("occupied apartment cannot be deleted", func() {
		apartmentID := s.createApartment()
		s.allot(apartmentID)

		w := s.do(http.MethodDelete, "/api/apartments/"+apartmentID.String(), nil, s.ownerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})
}
