//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"slotbooker/internal/handler/api"
	reqdto "slotbooker/internal/handler/dto/request"
	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/commands"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCtrl            *gomock.Controller
	mockBookingCommands *commandsmock.MockBookingCommands
	mockInviteCommands  *commandsmock.MockInviteCommands
	mockQueries         *queriesmock.MockBookingQueries
	handler             *api.BookingHandler
	organizerID         uuid.UUID
	organizerEmail      string
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookingCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockInviteCommands = commandsmock.NewMockInviteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockBookingCommands, s.mockInviteCommands, s.mockQueries)

	s.organizerID = uuid.New()
	s.organizerEmail = "organizer@example.com"

	// Mock middleware behavior: every route sees an authenticated
	// organizer.
	authed := s.router.Group("/bookings", func(c *gin.Context) {
		c.Set("organizer_id", s.organizerID)
		c.Set("organizer_email", s.organizerEmail)
		c.Next()
	})
	authed.POST("", s.handler.CreateRequest)
	authed.GET("", s.handler.ListRequests)
	authed.GET("/:id", s.handler.GetRequest)
	authed.GET("/:id/slots", s.handler.ListSlots)
	authed.POST("/:id/slots", s.handler.AppendSlots)
	authed.POST("/:id/invites", s.handler.CreateInvites)
	authed.POST("/:id/invites/shareable", s.handler.CreateShareableInvite)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) actor() commands.OrganizerActor {
	return commands.OrganizerActor{ID: s.organizerID, Email: s.organizerEmail}
}

func (s *BookingHandlerTestSuite) TestCreateRequest() {
	url := "/bookings"
	base := builder.NewBookingBuilder()

	s.Run("success: returns 201 Created with the new request", func() {
		reqBody := base.Clone().BuildCreateDTO()
		view := base.Clone().BuildView()

		s.mockBookingCommands.EXPECT().CreateRequest(gomock.Any(), s.actor(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Title, response.Title)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		reqBody := base.Clone().BuildCreateDTO()

		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: title", mutate: testutil.Field("title", nil)},
			{name: "missing field: duration_minutes", mutate: testutil.Field("duration_minutes", nil)},
			{name: "missing field: pattern", mutate: testutil.Field("pattern", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request on unparseable pattern dates", func() {
		reqBody := base.Clone().BuildCreateDTO()
		reqBody.Pattern.StartDate = "07-09-2026"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		reqBody := base.Clone().BuildCreateDTO()

		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "empty slot pattern",
				commandsError:  commands.ErrEmptySlotPattern,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Slot pattern yields no candidate slots",
			},
			{
				name:           "too many slots",
				commandsError:  commands.ErrTooManySlots,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Slot pattern exceeds the per-request limit",
			},
			{
				name:           "domain validation",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
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
				s.mockBookingCommands.EXPECT().CreateRequest(gomock.Any(), s.actor(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestListRequests() {
	url := "/bookings"

	s.Run("success: returns the organizer's requests", func() {
		items := []*queries.RequestListItem{
			{ID: uuid.New(), Title: "First", MaxSelections: 1, SlotCount: 3, BookedCount: 1, CreatedAt: time.Now().UTC()},
			{ID: uuid.New(), Title: "Second", MaxSelections: 2, SlotCount: 5, CreatedAt: time.Now().UTC()},
		}
		s.mockQueries.EXPECT().ListRequests(gomock.Any(), s.organizerEmail).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.RequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("First", response[0].Title)
		s.Equal(1, response[0].BookedCount)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListRequests(gomock.Any(), s.organizerEmail).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BookingHandlerTestSuite) TestGetRequest() {
	base := builder.NewBookingBuilder()

	s.Run("success: returns the request", func() {
		view := base.Clone().BuildView()
		s.mockQueries.EXPECT().GetRequest(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var response resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request ID")
	})

	s.Run("error: 404 when the request does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetRequest(gomock.Any(), id).
			Return(nil, errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking request not found")
	})
}

func (s *BookingHandlerTestSuite) TestListSlots() {
	s.Run("success: returns slots with epoch-ms times", func() {
		requestID := uuid.New()
		start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
		views := []*queries.SlotView{
			{ID: uuid.New(), RequestID: requestID, StartAt: start, EndAt: start.Add(30 * time.Minute), Status: "available"},
		}
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), requestID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, fmt.Sprintf("/bookings/%s/slots", requestID), nil, "")

		var response []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(start.UnixMilli(), response[0].StartAtMs)
	})
}

func (s *BookingHandlerTestSuite) TestAppendSlots() {
	base := builder.NewBookingBuilder()

	s.Run("success: expands the pattern against the stored request", func() {
		view := base.Clone().BuildView()
		reqBody := reqdto.AppendSlotsRequest{
			Pattern: base.Clone().BuildCreateDTO().Pattern,
		}

		s.mockQueries.EXPECT().GetRequest(gomock.Any(), view.ID).
			Return(view, nil).Times(1)
		s.mockBookingCommands.EXPECT().AppendSlots(gomock.Any(), s.actor(), view.ID, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/bookings/%s/slots", view.ID), reqBody, "")

		var response resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 404 when the request does not exist", func() {
		id := uuid.New()
		reqBody := reqdto.AppendSlotsRequest{
			Pattern: base.Clone().BuildCreateDTO().Pattern,
		}

		s.mockQueries.EXPECT().GetRequest(gomock.Any(), id).
			Return(nil, errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/bookings/%s/slots", id), reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking request not found")
	})
}

func (s *BookingHandlerTestSuite) TestCreateInvites() {
	s.Run("success: returns 201 with one invite per email", func() {
		requestID := uuid.New()
		emails := []string{"a@example.com", "b@example.com"}
		views := []*queries.InviteView{
			builder.NewInviteBuilder(requestID).BuildView(),
			builder.NewInviteBuilder(requestID).BuildView(),
		}

		s.mockInviteCommands.EXPECT().CreateInvites(gomock.Any(), s.actor(), requestID, emails).
			Return(views, nil).Times(1)

		reqBody := reqdto.CreateInvitesRequest{Emails: emails}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/bookings/%s/invites", requestID), reqBody, "")

		var response []resdto.InviteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Len(response, 2)
	})

	s.Run("error: 400 when the email list is empty after filtering", func() {
		requestID := uuid.New()
		emails := []string{"   "}

		s.mockInviteCommands.EXPECT().CreateInvites(gomock.Any(), s.actor(), requestID, emails).
			Return(nil, commands.ErrNoRecipients).Times(1)

		reqBody := reqdto.CreateInvitesRequest{Emails: emails}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/bookings/%s/invites", requestID), reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "At least one recipient email is required")
	})
}

func (s *BookingHandlerTestSuite) TestCreateShareableInvite() {
	s.Run("success: returns 201 with an open invite", func() {
		requestID := uuid.New()
		view := builder.NewInviteBuilder(requestID).Shareable().BuildView()

		s.mockInviteCommands.EXPECT().CreateShareableInvite(gomock.Any(), s.actor(), requestID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/bookings/%s/invites/shareable", requestID), nil, "")

		var response resdto.InviteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Nil(response.Email)
		s.NotEmpty(response.Token)
	})

	s.Run("error: 404 when the request does not exist", func() {
		requestID := uuid.New()
		s.mockInviteCommands.EXPECT().CreateShareableInvite(gomock.Any(), s.actor(), requestID).
			Return(nil, errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/bookings/%s/invites/shareable", requestID), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking request not found")
	})
}
