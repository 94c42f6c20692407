package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/carelane/clinic-api/internal/model"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	GetByEmail(ctx context.Context, email string) (*model.Doctor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]model.PatientSummary, error)
	Delete(ctx context.Context, doctorID, id uuid.UUID) error
}
