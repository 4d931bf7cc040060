package api

import (
	"errors"
	"net/http"

	reqdto "slotbooker/internal/handler/dto/request"
	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated, token-scoped booking page.
// The invite token in the path is the only credential.
type PublicHandler struct {
	publicQueries queries.PublicQueries
	claimCommands commands.ClaimCommands
}

func NewPublicHandler(publicQueries queries.PublicQueries, claimCommands commands.ClaimCommands) *PublicHandler {
	return &PublicHandler{
		publicQueries: publicQueries,
		claimCommands: claimCommands,
	}
}

// @Summary Resolve invite token
// @Description Return the booking page for an invite: request details, remaining quota and visible slots
// @Tags public
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} resdto.PublicBookingResponse
// @Failure 404 {object} map[string]string
// @Router /p/{token} [get]
func (h *PublicHandler) ResolveToken(c *gin.Context) {
	view, err := h.publicQueries.ResolveToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, errs.ErrInvalidToken) {
			// Malformed and unknown tokens are indistinguishable to the
			// caller.
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invite not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPublicBookingView(view))
}

// @Summary Claim a slot
// @Description Book one slot under an invite token
// @Tags public
// @Accept json
// @Produce json
// @Param token path string true "Invite token"
// @Param request body reqdto.ClaimSlotRequest true "Claim request"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /p/{token}/claim [post]
func (h *PublicHandler) ClaimSlot(c *gin.Context) {
	var req reqdto.ClaimSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.claimCommands.ClaimSlot(c.Request.Context(), c.Param("token"), req.SlotID, req.ToGuestInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidToken):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invite not found",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Guest details are incomplete",
			})
		case errors.Is(err, errs.ErrQuotaExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Selection quota exhausted for this invite",
			})
		case errors.Is(err, errs.ErrScopeMismatch):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot does not belong to this booking request",
			})
		case errors.Is(err, errs.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is no longer available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}
