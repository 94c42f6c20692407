package page

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/carelane/clinic-api/internal/middleware"
	"github.com/carelane/clinic-api/internal/service/patient"
)

// Handler serves the HTML views. Unauthenticated requests receive the
// landing page content instead of an error status.
type Handler struct {
	patientSvc *patient.Service
}

func NewHandler(patientSvc *patient.Service) *Handler {
	return &Handler{patientSvc: patientSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Index)
	r.GET("/dashboard", h.Dashboard)
	r.GET("/view_patients", h.ViewPatients)
	r.GET("/settings", h.Settings)
	r.GET("/add_patient", h.AddPatientForm)
}

func (h *Handler) Index(c *gin.Context) {
	if _, ok := middleware.DoctorID(c); ok {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{})
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

func (h *Handler) Dashboard(c *gin.Context) {
	doctorID, ok := h.requireDoctor(c)
	if !ok {
		return
	}

	summary, err := h.patientSvc.Dashboard(c.Request.Context(), doctorID)
	if err != nil {
		log.Error().Err(err).Str("doctor_id", doctorID.String()).Msg("failed to build dashboard")
		c.HTML(http.StatusOK, "index.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"username":       summary.Username,
		"total_patients": summary.TotalPatients,
		"recentPatients": summary.RecentPatients,
	})
}

func (h *Handler) ViewPatients(c *gin.Context) {
	doctorID, ok := h.requireDoctor(c)
	if !ok {
		return
	}

	patients, err := h.patientSvc.ListPatients(c.Request.Context(), doctorID)
	if err != nil {
		log.Error().Err(err).Str("doctor_id", doctorID.String()).Msg("failed to list patients")
		c.HTML(http.StatusOK, "index.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "view_patients.html", gin.H{
		"patientsList": patients,
	})
}

func (h *Handler) Settings(c *gin.Context) {
	if _, ok := h.requireDoctor(c); !ok {
		return
	}
	c.HTML(http.StatusOK, "settings.html", gin.H{})
}

func (h *Handler) AddPatientForm(c *gin.Context) {
	if _, ok := h.requireDoctor(c); !ok {
		return
	}
	c.HTML(http.StatusOK, "add_patient.html", gin.H{})
}

// requireDoctor renders the landing page for anonymous requests.
func (h *Handler) requireDoctor(c *gin.Context) (uuid.UUID, bool) {
	doctorID, ok := middleware.DoctorID(c)
	if !ok {
		c.HTML(http.StatusOK, "index.html", gin.H{})
		return uuid.Nil, false
	}
	return doctorID, true
}
