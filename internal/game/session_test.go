package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	m := NewSessionManager()

	info := m.Create()
	assert.NotEmpty(t, info.ID)
	assert.False(t, info.CreatedAt.IsZero())

	got, err := m.Get(info.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, got.ID)

	_, err = m.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMarkAnsweredIsOncePerCell(t *testing.T) {
	m := NewSessionManager()
	info := m.Create()

	require.NoError(t, m.MarkAnswered(info.ID, 7))
	assert.ErrorIs(t, m.MarkAnswered(info.ID, 7), ErrAlreadyAnswered)

	answered, err := m.IsAnswered(info.ID, 7)
	require.NoError(t, err)
	assert.True(t, answered)

	// Other cells and other sessions are unaffected.
	require.NoError(t, m.MarkAnswered(info.ID, 8))
	other := m.Create()
	require.NoError(t, m.MarkAnswered(other.ID, 7))
}

func TestAnsweredReturnsACopy(t *testing.T) {
	m := NewSessionManager()
	info := m.Create()
	require.NoError(t, m.MarkAnswered(info.ID, 1))

	marks, err := m.Answered(info.ID)
	require.NoError(t, err)
	marks[2] = true

	answered, err := m.IsAnswered(info.ID, 2)
	require.NoError(t, err)
	assert.False(t, answered, "mutating the copy must not leak into the session")
}

func TestResetClearsMarksOnly(t *testing.T) {
	m := NewSessionManager()
	info := m.Create()
	require.NoError(t, m.MarkAnswered(info.ID, 1))
	require.NoError(t, m.MarkAnswered(info.ID, 2))

	require.NoError(t, m.Reset(info.ID))

	marks, err := m.Answered(info.ID)
	require.NoError(t, err)
	assert.Empty(t, marks)

	// The cell can be picked again after a reset.
	require.NoError(t, m.MarkAnswered(info.ID, 1))

	assert.ErrorIs(t, m.Reset("missing"), ErrSessionNotFound)
}

func TestDeleteSession(t *testing.T) {
	m := NewSessionManager()
	info := m.Create()

	m.Delete(info.ID)
	_, err := m.Get(info.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Deleting twice is harmless.
	m.Delete(info.ID)
}
