package patient

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/carelane/clinic-api/pkg/errors"

	"github.com/carelane/clinic-api/internal/model"
)

type fakePatientRepo struct {
	patients []model.Patient
}

func (f *fakePatientRepo) Create(_ context.Context, p *model.Patient) error {
	f.patients = append(f.patients, *p)
	return nil
}

func (f *fakePatientRepo) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]model.PatientSummary, error) {
	summaries := []model.PatientSummary{}
	for _, p := range f.patients {
		if p.DoctorID == doctorID {
			summaries = append(summaries, model.PatientSummary{
				ID:        p.ID,
				Name:      p.Name,
				Age:       p.Age,
				Gender:    p.Gender,
				Condition: p.Condition,
				Phone:     p.Contact,
			})
		}
	}
	return summaries, nil
}

func (f *fakePatientRepo) Delete(_ context.Context, doctorID, id uuid.UUID) error {
	for i, p := range f.patients {
		if p.ID == id && p.DoctorID == doctorID {
			f.patients = append(f.patients[:i], f.patients[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("patient", nil)
}

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]*model.Doctor
}

func (f *fakeDoctorRepo) Create(_ context.Context, d *model.Doctor) error {
	f.doctors[d.ID] = d
	return nil
}

func (f *fakeDoctorRepo) GetByEmail(_ context.Context, email string) (*model.Doctor, error) {
	for _, d := range f.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, apperrors.NotFound("doctor", nil)
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Doctor, error) {
	if d, ok := f.doctors[id]; ok {
		return d, nil
	}
	return nil, apperrors.NotFound("doctor", nil)
}

func newTestService() (*Service, *fakePatientRepo, *model.Doctor) {
	repo := &fakePatientRepo{}
	doctor := &model.Doctor{ID: uuid.New(), Name: "Jo", Email: "jo@x.com"}
	doctorRepo := &fakeDoctorRepo{doctors: map[uuid.UUID]*model.Doctor{doctor.ID: doctor}}
	return NewService(repo, doctorRepo, time.Minute), repo, doctor
}

func addPatients(t *testing.T, svc *Service, doctorID uuid.UUID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.CreatePatient(context.Background(), doctorID, &model.AddPatientRequest{
			Name:      fmt.Sprintf("patient-%d", i),
			Phone:     "555",
			Condition: "flu",
			Gender:    1,
			Age:       30,
		})
		require.NoError(t, err)
	}
}

func TestCreatePatientScopedToDoctor(t *testing.T) {
	svc, repo, doctor := newTestService()

	created, err := svc.CreatePatient(context.Background(), doctor.ID, &model.AddPatientRequest{
		Name:      "Ann",
		Phone:     "555",
		Condition: "flu",
		Gender:    1,
		Age:       30,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, doctor.ID, created.DoctorID)
	require.Len(t, repo.patients, 1)
	assert.Equal(t, "Ann", repo.patients[0].Name)
	assert.Equal(t, "555", repo.patients[0].Contact)
}

func TestListPatientsExcludesOtherDoctors(t *testing.T) {
	svc, _, doctor := newTestService()
	otherDoctor := uuid.New()

	addPatients(t, svc, doctor.ID, 2)
	_, err := svc.CreatePatient(context.Background(), otherDoctor, &model.AddPatientRequest{
		Name:      "Bob",
		Phone:     "666",
		Condition: "cold",
		Age:       40,
	})
	require.NoError(t, err)

	patients, err := svc.ListPatients(context.Background(), doctor.ID)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	for _, p := range patients {
		assert.NotEqual(t, "Bob", p.Name)
	}
}

func TestDeletePatient(t *testing.T) {
	svc, repo, doctor := newTestService()

	created, err := svc.CreatePatient(context.Background(), doctor.ID, &model.AddPatientRequest{
		Name:      "Ann",
		Phone:     "555",
		Condition: "flu",
		Age:       30,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePatient(context.Background(), doctor.ID, created.ID))
	assert.Empty(t, repo.patients)

	// Second delete of the same id reports NotFound again.
	err = svc.DeletePatient(context.Background(), doctor.ID, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteNonExistentPatientReturnsNotFound(t *testing.T) {
	svc, _, doctor := newTestService()

	err := svc.DeletePatient(context.Background(), doctor.ID, uuid.New())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteOtherDoctorsPatientReturnsNotFound(t *testing.T) {
	svc, repo, doctor := newTestService()

	created, err := svc.CreatePatient(context.Background(), doctor.ID, &model.AddPatientRequest{
		Name:      "Ann",
		Phone:     "555",
		Condition: "flu",
		Age:       30,
	})
	require.NoError(t, err)

	err = svc.DeletePatient(context.Background(), uuid.New(), created.ID)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Len(t, repo.patients, 1)
}

func TestDashboardRecentSelection(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		wantRecent int
	}{
		{"no patients", 0, 0},
		{"fewer than limit", 3, 3},
		{"more than limit", 9, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, doctor := newTestService()
			addPatients(t, svc, doctor.ID, tt.total)

			summary, err := svc.Dashboard(context.Background(), doctor.ID)
			require.NoError(t, err)

			assert.Equal(t, "Jo", summary.Username)
			assert.Equal(t, tt.total, summary.TotalPatients)
			require.Len(t, summary.RecentPatients, tt.wantRecent)

			// Newest first, drawn from the tail of the stored order.
			for i, p := range summary.RecentPatients {
				assert.Equal(t, fmt.Sprintf("patient-%d", tt.total-1-i), p.Name)
			}
		})
	}
}

func TestDashboardCacheInvalidatedOnCreate(t *testing.T) {
	svc, _, doctor := newTestService()
	addPatients(t, svc, doctor.ID, 1)

	first, err := svc.Dashboard(context.Background(), doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalPatients)

	addPatients(t, svc, doctor.ID, 1)

	second, err := svc.Dashboard(context.Background(), doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.TotalPatients)
}
