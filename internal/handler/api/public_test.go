//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"slotbooker/internal/handler/api"
	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/queries"
	"slotbooker/tests/common/builder"
	"slotbooker/tests/common/httptest"
	"slotbooker/tests/common/testutil"
	commandsmock "slotbooker/tests/mock/commands"
	queriesmock "slotbooker/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PublicHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockPublicQueries
	mockCommands *commandsmock.MockClaimCommands
	handler      *api.PublicHandler
}

func (s *PublicHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPublicQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockClaimCommands(s.mockCtrl)
	s.handler = api.NewPublicHandler(s.mockQueries, s.mockCommands)

	s.router.GET("/p/:token", s.handler.ResolveToken)
	s.router.POST("/p/:token/claim", s.handler.ClaimSlot)
}

func (s *PublicHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPublicHandlerSuite(t *testing.T) {
	suite.Run(t, new(PublicHandlerTestSuite))
}

const testToken = "0123456789abcdef0123456789abcdef"

func (s *PublicHandlerTestSuite) TestResolveToken() {
	url := "/p/" + testToken

	s.Run("success: returns the booking page for the invite", func() {
		start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
		view := &queries.PublicBookingView{
			Title:           "Kickoff interviews",
			Timezone:        "UTC",
			DurationMinutes: 30,
			MaxSelections:   1,
			RemainingQuota:  1,
			Slots: []queries.PublicSlotItem{
				{ID: uuid.New(), StartAt: start, EndAt: start.Add(30 * time.Minute), Status: "available"},
			},
		}
		s.mockQueries.EXPECT().ResolveToken(gomock.Any(), testToken).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.PublicBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Title, response.Title)
		s.Equal(1, response.RemainingQuota)
		s.Len(response.Slots, 1)
	})

	s.Run("error: unknown token maps to 404", func() {
		s.mockQueries.EXPECT().ResolveToken(gomock.Any(), testToken).
			Return(nil, errs.ErrInvalidToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Invite not found")
	})

	s.Run("error: malformed token is indistinguishable from unknown", func() {
		s.mockQueries.EXPECT().ResolveToken(gomock.Any(), "junk").
			Return(nil, errs.ErrInvalidToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/p/junk", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Invite not found")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockQueries.EXPECT().ResolveToken(gomock.Any(), testToken).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *PublicHandlerTestSuite) TestClaimSlot() {
	url := fmt.Sprintf("/p/%s/claim", testToken)

	s.Run("success: returns the booked slot", func() {
		slotID := uuid.New()
		claim := builder.NewClaimBuilder(slotID)
		reqBody := claim.BuildDTO()

		inviteID := uuid.New()
		start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
		bookedAt := time.Now().UTC()
		view := &queries.SlotView{
			ID:        slotID,
			RequestID: uuid.New(),
			StartAt:   start,
			EndAt:     start.Add(30 * time.Minute),
			Status:    "booked",
			ClaimedBy: &inviteID,
			GuestName: &claim.GuestName,
			BookedAt:  &bookedAt,
		}

		s.mockCommands.EXPECT().ClaimSlot(gomock.Any(), testToken, slotID, claim.BuildInput()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("booked", response.Status)
		s.Equal(start.UnixMilli(), response.StartAtMs)
		s.NotNil(response.BookedAtMs)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		reqBody := builder.NewClaimBuilder(uuid.New()).BuildDTO()

		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: slot_id", mutate: testutil.Field("slot_id", nil)},
			{name: "missing field: guest_name", mutate: testutil.Field("guest_name", nil)},
			{name: "invalid guest_email format", mutate: testutil.Field("guest_email", "not-an-email")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		slotID := uuid.New()
		claim := builder.NewClaimBuilder(slotID)
		reqBody := claim.BuildDTO()

		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid token",
				commandsError:  errs.ErrInvalidToken,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Invite not found",
			},
			{
				name:           "incomplete guest details",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Guest details are incomplete",
			},
			{
				name:           "quota exhausted",
				commandsError:  errs.ErrQuotaExceeded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Selection quota exhausted for this invite",
			},
			{
				name:           "slot outside the invite's request",
				commandsError:  errs.ErrScopeMismatch,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Slot does not belong to this booking request",
			},
			{
				name:           "slot already booked",
				commandsError:  errs.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot is no longer available",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ClaimSlot(gomock.Any(), testToken, slotID, claim.BuildInput()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
