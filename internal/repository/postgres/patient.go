package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	apperrors "github.com/carelane/clinic-api/pkg/errors"

	"github.com/carelane/clinic-api/internal/model"
	"github.com/carelane/clinic-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (id, doctor_id, name, age, gender, condition, contact, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, query,
			patient.ID,
			patient.DoctorID,
			patient.Name,
			patient.Age,
			patient.Gender,
			patient.Condition,
			patient.Contact,
			patient.Note,
			patient.CreatedAt,
		)
		return err
	})
	if err != nil {
		return apperrors.Persistence(err)
	}
	return nil
}

func (r *patientRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]model.PatientSummary, error) {
	query := `
		SELECT id, name, age, gender, condition, contact
		FROM patients
		WHERE doctor_id = $1
		ORDER BY created_at, id
	`
	patients := []model.PatientSummary{}
	if err := r.db.SelectContext(ctx, &patients, query, doctorID); err != nil {
		return nil, apperrors.Persistence(err)
	}
	return patients, nil
}

// Delete is scoped to the owning doctor; deleting another doctor's patient
// reports NotFound rather than revealing that the row exists.
func (r *patientRepository) Delete(ctx context.Context, doctorID, id uuid.UUID) error {
	query := `DELETE FROM patients WHERE id = $1 AND doctor_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, doctorID)
	if err != nil {
		return apperrors.Persistence(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.Persistence(err)
	}
	if affected == 0 {
		return apperrors.NotFound("patient", nil)
	}
	return nil
}
