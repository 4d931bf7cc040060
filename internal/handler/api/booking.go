package api

import (
	"errors"
	"net/http"

	reqdto "slotbooker/internal/handler/dto/request"
	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/handler/middleware"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	inviteCommands  commands.InviteCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	inviteCommands commands.InviteCommands,
	bookingQueries queries.BookingQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		inviteCommands:  inviteCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking request
// @Description Create a booking request and generate its candidate slots from a pattern
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateRequest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	view, err := h.bookingCommands.CreateRequest(c.Request.Context(), actor, params)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List booking requests
// @Description List the authenticated organizer's booking requests
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RequestListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListRequests(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	items, err := h.bookingQueries.ListRequests(c.Request.Context(), actor.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	out := make([]*resdto.RequestListResponse, len(items))
	for i, item := range items {
		out[i] = resdto.FromRequestListItem(item)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get booking request
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetRequest(c *gin.Context) {
	requestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetRequest(c.Request.Context(), requestID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List slots for a request
// @Description List all candidate slots with their booking state and guest details
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/slots [get]
func (h *BookingHandler) ListSlots(c *gin.Context) {
	requestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	views, err := h.bookingQueries.ListSlots(c.Request.Context(), requestID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Append slots
// @Description Generate additional candidate slots from a pattern and attach them to the request
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.AppendSlotsRequest true "Slot pattern"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/slots [post]
func (h *BookingHandler) AppendSlots(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	requestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.AppendSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	current, err := h.bookingQueries.GetRequest(c.Request.Context(), requestID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	pattern, err := req.Pattern.ToGenerateParams(current.Timezone, current.DurationMinutes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	view, err := h.bookingCommands.AppendSlots(c.Request.Context(), actor, requestID, pattern)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary Create invites
// @Description Issue one invite token per recipient email
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.CreateInvitesRequest true "Recipient emails"
// @Success 201 {array} resdto.InviteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/invites [post]
func (h *BookingHandler) CreateInvites(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	requestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.CreateInvitesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	views, err := h.inviteCommands.CreateInvites(c.Request.Context(), actor, requestID, req.Emails)
	if err != nil {
		if errors.Is(err, commands.ErrNoRecipients) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "At least one recipient email is required",
			})
			return
		}
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInviteViews(views))
}

// @Summary Create shareable invite
// @Description Issue a single open invite not bound to a recipient
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 201 {object} resdto.InviteResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/invites/shareable [post]
func (h *BookingHandler) CreateShareableInvite(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	requestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.inviteCommands.CreateShareableInvite(c.Request.Context(), actor, requestID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInviteView(view))
}

func (h *BookingHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking request not found",
		})
	case errors.Is(err, commands.ErrEmptySlotPattern):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Slot pattern yields no candidate slots",
		})
	case errors.Is(err, commands.ErrTooManySlots):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Slot pattern exceeds the per-request limit",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func requireActor(c *gin.Context) (commands.OrganizerActor, bool) {
	organizerID, okID := middleware.GetOrganizerID(c)
	email, okEmail := middleware.GetOrganizerEmail(c)
	if !okID || !okEmail {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return commands.OrganizerActor{}, false
	}
	return commands.OrganizerActor{ID: organizerID, Email: email}, true
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID",
		})
		return uuid.Nil, false
	}
	return id, true
}
