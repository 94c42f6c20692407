package auth

import (
	"context"
	"fmt"

	apperrors "github.com/carelane/clinic-api/pkg/errors"
	"github.com/carelane/clinic-api/pkg/hash"
	"github.com/carelane/clinic-api/pkg/session"

	"github.com/carelane/clinic-api/internal/repository"
)

type Service struct {
	doctorRepo repository.DoctorRepository
	hasher     hash.Hasher
	sessions   *session.Manager
}

func NewService(doctorRepo repository.DoctorRepository, hasher hash.Hasher, sessions *session.Manager) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		hasher:     hasher,
		sessions:   sessions,
	}
}

// Login resolves the doctor by email and compares credential digests. Lookup
// misses and digest mismatches both surface as the same generic failure so
// callers cannot enumerate registered emails.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	doctor, err := s.doctorRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.Unauthenticated("invalid credentials")
		}
		return "", fmt.Errorf("failed to look up doctor: %w", err)
	}

	if !s.hasher.Compare(doctor.PasswordHash, password) {
		return "", apperrors.Unauthenticated("invalid credentials")
	}

	token, err := s.sessions.Issue(doctor.ID)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return token, nil
}
