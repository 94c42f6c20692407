package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carelane/clinic-api/pkg/hash"

	"github.com/carelane/clinic-api/internal/model"
	"github.com/carelane/clinic-api/internal/repository"
)

type Service struct {
	repo   repository.DoctorRepository
	hasher hash.Hasher
}

func NewService(repo repository.DoctorRepository, hasher hash.Hasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
	}
}

// CreateDoctor persists a new doctor with a hashed credential. The plaintext
// password is never stored.
func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Gender:       req.Gender,
		PasswordHash: s.hasher.Hash(req.Password),
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return doctor, nil
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	doctor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return doctor, nil
}

func (s *Service) GetDoctorByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	doctor, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return doctor, nil
}
