package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/carelane/clinic-api/pkg/errors"
	"github.com/carelane/clinic-api/pkg/httputil"
	"github.com/carelane/clinic-api/pkg/session"

	"github.com/carelane/clinic-api/internal/model"
	"github.com/carelane/clinic-api/internal/service/auth"
)

type Handler struct {
	service  *auth.Service
	sessions *session.Manager
}

func NewHandler(service *auth.Service, sessions *session.Manager) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}

// Login verifies credentials and issues the session cookie.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid login payload", err))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(h.sessions.TTL().Seconds()))
	httputil.RespondWithSuccess(c, http.StatusOK, nil)
}

// Logout clears the session cookie and falls back to the landing page.
func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, maxAge, "/", "", true, true)
}
