package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "slotbooker/internal/handler/dto/request"
	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/handler/middleware"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/pkg/cookie"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands     commands.AuthCommands
	organizerQueries queries.OrganizerQueries
	cfg              config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, organizerQueries queries.OrganizerQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands:     authCommands,
		organizerQueries: organizerQueries,
		cfg:              cfg,
	}
}

// @Summary Organizer login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrOrganizerInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if duration, parseErr := time.ParseDuration(h.cfg.JWT.AccessTokenDuration); parseErr == nil {
		cookie.SetAccessTokenCookie(c, h.cfg.Cookie, result.AccessToken, duration)
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		OrganizerID: result.OrganizerID,
	})
}

// @Summary Organizer logout
// @Description Clear the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current organizer
// @Description Get the authenticated organizer's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.OrganizerView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	organizerID, ok := middleware.GetOrganizerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Organizer not authenticated",
		})
		return
	}

	organizer, err := h.organizerQueries.GetByID(c.Request.Context(), organizerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Organizer not found",
		})
		return
	}

	c.JSON(http.StatusOK, organizer)
}
