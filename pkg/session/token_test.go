package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour)
	doctorID := uuid.New()

	token, err := m.Issue(doctorID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	resolved, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, doctorID, resolved)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour)
	other := NewManager("other-secret", 2*time.Hour)

	token, err := m.Issue(uuid.New())
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Issue(uuid.New())
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour)

	for _, token := range []string{"", "not-a-token", uuid.New().String()} {
		_, err := m.Verify(token)
		assert.Error(t, err)
	}
}
