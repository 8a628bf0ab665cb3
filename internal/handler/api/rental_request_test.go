//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/rentalrequest"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/handler/api"
	resdto "tenancy-service/internal/handler/dto/response"
	"tenancy-service/internal/usecase/commands"
	"tenancy-service/internal/usecase/queries"
	"tenancy-service/tests/common/builder"
	"tenancy-service/tests/common/httptest"
	"tenancy-service/tests/common/testutil"
	commandsmock "tenancy-service/tests/mock/commands"
	queriesmock "tenancy-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
	userID       uuid.UUID
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.userID = uuid.New()
	handler := api.NewRequestHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(s.userID, user.RoleTenant)
	s.router.POST("/apartments/:id/requests", auth, handler.Create)
	s.router.GET("/apartments/:id/requests", auth, handler.ListForApartment)
	s.router.GET("/requests", auth, handler.ListMine)
	s.router.GET("/requests/received", auth, handler.ListReceived)
	s.router.GET("/requests/:id", auth, handler.Get)
	s.router.POST("/requests/:id/accept", auth, handler.Accept)
	s.router.POST("/requests/:id/reject", auth, handler.Reject)
	s.router.POST("/requests/:id/confirm", auth, handler.Confirm)
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

type testCaseRequest struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *RequestHandlerTestSuite) TestCreate() {
	apartmentID := uuid.New()
	url := "/apartments/" + apartmentID.String() + "/requests"
	reqBody := builder.NewRequestBuilder().BuildDTO()
	requestID := uuid.New()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput(apartmentID, s.userID)).Return(requestID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)

		var body resdto.IDResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(requestID.String(), body.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseRequest{
			{name: "occupants boundary OK (1)", mutate: testutil.Field("occupants", 1), expectCode: http.StatusCreated},
			{name: "occupants boundary invalid (0)", mutate: testutil.Field("occupants", 0), expectCode: http.StatusBadRequest},
			{name: "note length OK (500 chars)", mutate: testutil.Field("note", strings.Repeat("a", 500)), expectCode: http.StatusCreated},
			{name: "note length invalid (501 chars)", mutate: testutil.Field("note", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
		}
		missing := []testCaseRequest{
			{name: "missing field: tenancyType (required)", mutate: testutil.Field("tenancyType", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: occupants (required)", mutate: testutil.Field("occupants", nil), expectCode: http.StatusBadRequest},
		}
		enum := []testCaseRequest{
			{name: "tenancyType bachelor", mutate: testutil.Field("tenancyType", "bachelor"), expectCode: http.StatusCreated},
			{name: "tenancyType unknown", mutate: testutil.Field("tenancyType", "company"), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseRequest{bound, missing, enum} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(requestID, nil)
					}

					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, bearer)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "already requested", err: rentalrequest.ErrAlreadyRequested, expectCode: http.StatusConflict},
			{name: "apartment taken", err: apartment.ErrApartmentUnavailable, expectCode: http.StatusConflict},
			{name: "own apartment", err: rentalrequest.ErrOwnApartment, expectCode: http.StatusForbidden},
			{name: "unknown apartment", err: apartment.ErrApartmentNotFound, expectCode: http.StatusNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.err.Error())
			})
		}
	})
}

func (s *RequestHandlerTestSuite) TestTransitions() {
	requestID := uuid.New()
	base := "/requests/" + requestID.String()

	s.Run("accept and reject answer 204", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), requestID, s.userID).Return(nil)
		s.mockCommands.EXPECT().Reject(gomock.Any(), requestID, s.userID).Return(nil)

		s.Equal(http.StatusNoContent, httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/accept", nil, bearer).Code)
		s.Equal(http.StatusNoContent, httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/reject", nil, bearer).Code)
	})

	s.Run("a decided request cannot be decided again", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), requestID, s.userID).Return(rentalrequest.ErrNotPending)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/reject", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "request is not pending")
	})

	s.Run("confirm returns the allotment", func() {
		startedAt := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
		result := &commands.AllotmentResult{
			AllotmentID:    uuid.New(),
			ApartmentID:    uuid.New(),
			TenantID:       s.userID,
			StartedAt:      startedAt,
			PurgedRequests: 3,
		}
		s.mockCommands.EXPECT().Confirm(gomock.Any(), requestID, s.userID).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/confirm", nil, bearer)

		var body resdto.AllotmentResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(result.AllotmentID, body.AllotmentID)
		s.Equal(int64(3), body.PurgedRequests)
		s.True(startedAt.Equal(body.StartedAt))
	})

	s.Run("confirm before acceptance", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), requestID, s.userID).Return(nil, rentalrequest.ErrNotAccepted)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/confirm", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "request is not accepted")
	})
}

func (s *RequestHandlerTestSuite) TestReads() {
	view := &queries.RequestView{ID: uuid.New(), RequesterID: s.userID, TenancyType: "family", Occupants: 3, Status: "pending"}

	s.Run("get one", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.userID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/"+view.ID.String(), nil, bearer)

		var body resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("family", body.TenancyType)
	})

	s.Run("someone else's request", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.userID).Return(nil, rentalrequest.ErrRequestNotVisible)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/"+view.ID.String(), nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("lists", func() {
		apartmentID := uuid.New()
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.userID).Return([]*queries.RequestView{view}, nil)
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), s.userID).Return([]*queries.RequestView{}, nil)
		s.mockQueries.EXPECT().ListForApartment(gomock.Any(), apartmentID, s.userID).Return(nil, apartment.ErrNotApartmentOwner)

		var mine []resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests", nil, bearer), http.StatusOK, &mine)
		s.Len(mine, 1)

		var received []resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/received", nil, bearer), http.StatusOK, &received)
		s.Empty(received)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/apartments/"+apartmentID.String()+"/requests", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "only the apartment owner")
	})
}
