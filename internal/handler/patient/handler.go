package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/carelane/clinic-api/pkg/errors"
	"github.com/carelane/clinic-api/pkg/httputil"

	"github.com/carelane/clinic-api/internal/middleware"
	"github.com/carelane/clinic-api/internal/model"
	"github.com/carelane/clinic-api/internal/service/patient"
)

type Handler struct {
	service *patient.Service
}

func NewHandler(service *patient.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/add_patient", h.AddPatient)
	r.GET("/delete_patient/:id", h.DeletePatient)
	r.GET("/api/patients", h.ListPatients)
	r.GET("/api/dashboard", h.Dashboard)
}

// AddPatient persists a patient owned by the authenticated doctor.
func (h *Handler) AddPatient(c *gin.Context) {
	doctorID, _ := middleware.DoctorID(c)

	var req model.AddPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid patient payload", err))
		return
	}

	created, err := h.service.CreatePatient(c.Request.Context(), doctorID, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusCreated, created)
}

func (h *Handler) DeletePatient(c *gin.Context) {
	doctorID, _ := middleware.DoctorID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid patient id", err))
		return
	}

	if err := h.service.DeletePatient(c.Request.Context(), doctorID, id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, nil)
}

func (h *Handler) ListPatients(c *gin.Context) {
	doctorID, _ := middleware.DoctorID(c)

	patients, err := h.service.ListPatients(c.Request.Context(), doctorID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, patients)
}

func (h *Handler) Dashboard(c *gin.Context) {
	doctorID, _ := middleware.DoctorID(c)

	summary, err := h.service.Dashboard(c.Request.Context(), doctorID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, summary)
}
