package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/carelane/clinic-api/internal/model"
	"github.com/carelane/clinic-api/internal/repository"
)

// recentLimit caps the dashboard's recent-patients selection.
const recentLimit = 6

type Service struct {
	repo       repository.PatientRepository
	doctorRepo repository.DoctorRepository
	summaries  *gocache.Cache
}

func NewService(repo repository.PatientRepository, doctorRepo repository.DoctorRepository, summaryTTL time.Duration) *Service {
	return &Service{
		repo:       repo,
		doctorRepo: doctorRepo,
		summaries:  gocache.New(summaryTTL, 2*summaryTTL),
	}
}

// CreatePatient persists a new patient owned by the given doctor.
func (s *Service) CreatePatient(ctx context.Context, doctorID uuid.UUID, req *model.AddPatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		ID:        uuid.New(),
		DoctorID:  doctorID,
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Condition: req.Condition,
		Contact:   req.Phone,
		Note:      req.Notes,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	s.summaries.Delete(doctorID.String())
	return patient, nil
}

// ListPatients returns all patients owned by the doctor, oldest first.
func (s *Service) ListPatients(ctx context.Context, doctorID uuid.UUID) ([]model.PatientSummary, error) {
	patients, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// DeletePatient removes a patient owned by the doctor. Rows owned by another
// doctor are reported as NotFound.
func (s *Service) DeletePatient(ctx context.Context, doctorID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, doctorID, id); err != nil {
		return err
	}

	s.summaries.Delete(doctorID.String())
	return nil
}

// Dashboard computes the doctor's summary: display name, total patient count
// and the newest patients, most recent first. The computed summary is cached
// briefly per doctor and invalidated on create/delete.
func (s *Service) Dashboard(ctx context.Context, doctorID uuid.UUID) (*model.DashboardSummary, error) {
	if cached, ok := s.summaries.Get(doctorID.String()); ok {
		return cached.(*model.DashboardSummary), nil
	}

	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}

	patients, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	summary := &model.DashboardSummary{
		Username:       doctor.Name,
		TotalPatients:  len(patients),
		RecentPatients: recentOf(patients),
	}

	s.summaries.SetDefault(doctorID.String(), summary)
	return summary, nil
}

// recentOf takes the tail of the creation-ordered list and reverses it, so
// the newest patient comes first and at most recentLimit entries are kept.
func recentOf(patients []model.PatientSummary) []model.PatientSummary {
	start := 0
	if len(patients) > recentLimit {
		start = len(patients) - recentLimit
	}

	recent := make([]model.PatientSummary, 0, len(patients)-start)
	for i := len(patients) - 1; i >= start; i-- {
		recent = append(recent, patients[i])
	}
	return recent
}
