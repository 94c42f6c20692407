package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carelane/clinic-api/pkg/httputil"
	"github.com/carelane/clinic-api/pkg/session"
)

// ContextDoctorID is the context key carrying the authenticated doctor's id.
const ContextDoctorID = "doctorID"

// SessionGate resolves the session cookie to a doctor identity.
type SessionGate struct {
	sessions *session.Manager
}

func NewSessionGate(sessions *session.Manager) *SessionGate {
	return &SessionGate{sessions: sessions}
}

// Identify resolves the cookie when present and stores the doctor id in the
// request context. It never aborts; requests without a valid session simply
// proceed anonymously.
func (g *SessionGate) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err == nil && token != "" {
			if doctorID, err := g.sessions.Verify(token); err == nil {
				c.Set(ContextDoctorID, doctorID)
			}
		}
		c.Next()
	}
}

// RequireDoctor aborts unauthenticated API requests with a 401 envelope.
func (g *SessionGate) RequireDoctor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := DoctorID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.Response{
				Success: false,
				Error: &httputil.Error{
					Code:    http.StatusUnauthorized,
					Message: "authentication required",
				},
			})
			return
		}
		c.Next()
	}
}

// DoctorID returns the authenticated doctor's id, if any.
func DoctorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextDoctorID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
