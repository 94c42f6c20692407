package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/carelane/clinic-api/pkg/errors"
	"github.com/carelane/clinic-api/pkg/hash"
	"github.com/carelane/clinic-api/pkg/session"

	"github.com/carelane/clinic-api/internal/model"
	authService "github.com/carelane/clinic-api/internal/service/auth"
)

type fakeDoctorRepo struct {
	doctors map[string]*model.Doctor
}

func (f *fakeDoctorRepo) Create(_ context.Context, d *model.Doctor) error {
	f.doctors[d.Email] = d
	return nil
}

func (f *fakeDoctorRepo) GetByEmail(_ context.Context, email string) (*model.Doctor, error) {
	if d, ok := f.doctors[email]; ok {
		return d, nil
	}
	return nil, apperrors.NotFound("doctor", nil)
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Doctor, error) {
	for _, d := range f.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, apperrors.NotFound("doctor", nil)
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hasher := hash.NewSHA256Hasher()
	sessions := session.NewManager("test-secret", 2*time.Hour)
	repo := &fakeDoctorRepo{doctors: map[string]*model.Doctor{
		"jo@x.com": {
			ID:           uuid.New(),
			Name:         "Jo",
			Email:        "jo@x.com",
			PasswordHash: hasher.Hash("secret123"),
		},
	}}

	h := NewHandler(authService.NewService(repo, hasher, sessions), sessions)

	engine := gin.New()
	engine.SetHTMLTemplate(template.Must(template.New("index.html").Parse("landing")))
	h.RegisterRoutes(engine.Group(""))
	return engine
}

func login(engine *gin.Engine, email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(model.LoginRequest{Email: email, Password: password})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	engine := newTestEngine(t)

	w := login(engine, "jo@x.com", "secret123")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((2 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestLoginWrongPasswordSetsNoCookie(t *testing.T) {
	engine := newTestEngine(t)

	w := login(engine, "jo@x.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Nil(t, sessionCookie(w))
}

func TestLoginUnknownEmailLooksLikeWrongPassword(t *testing.T) {
	engine := newTestEngine(t)

	wrongPassword := login(engine, "jo@x.com", "wrong")
	unknownEmail := login(engine, "nobody@x.com", "secret123")

	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLoginMalformedBody(t *testing.T) {
	engine := newTestEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestLogoutClearsCookie(t *testing.T) {
	engine := newTestEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/logout", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "landing", w.Body.String())

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
