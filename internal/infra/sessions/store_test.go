package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bedylmz/toolshare-fe/internal/domain"
)

func newSession(id string, lastActive time.Time) *domain.PickerSession {
	return &domain.PickerSession{
		ID:           id,
		ToolID:       5,
		UserID:       12,
		Today:        domain.DayOf(lastActive),
		Cursor:       domain.CursorFor(lastActive),
		CreatedAt:    lastActive,
		LastActiveAt: lastActive,
	}
}

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore()
	now := time.Date(2024, time.June, 8, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Create(newSession("s1", now)))

	t.Run("duplicate id is rejected", func(t *testing.T) {
		assert.ErrorIs(t, store.Create(newSession("s1", now)), ErrSessionExists)
	})

	t.Run("get returns an isolated copy", func(t *testing.T) {
		copy1, err := store.Get("s1")
		require.NoError(t, err)

		copy1.Selection.Restart(now)

		copy2, err := store.Get("s1")
		require.NoError(t, err)
		assert.Equal(t, domain.SelectionEmpty, copy2.Selection.State())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Get("missing")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore()
	now := time.Date(2024, time.June, 8, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Create(newSession("s1", now)))

	t.Run("mutations are visible to subsequent reads", func(t *testing.T) {
		err := store.Update("s1", func(s *domain.PickerSession) error {
			s.Cursor = s.Cursor.Next()
			return nil
		})
		require.NoError(t, err)

		got, err := store.Get("s1")
		require.NoError(t, err)
		assert.Equal(t, time.July, got.Cursor.Month)
	})

	t.Run("mutations stick even when fn returns an error", func(t *testing.T) {
		wantErr := assert.AnError
		err := store.Update("s1", func(s *domain.PickerSession) error {
			s.ValidationError = "в выбранном диапазоне есть чужая резервация"
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)

		got, err := store.Get("s1")
		require.NoError(t, err)
		assert.Equal(t, "в выбранном диапазоне есть чужая резервация", got.ValidationError)
	})

	t.Run("deleted session is not updated", func(t *testing.T) {
		called := false
		err := store.Update("missing", func(s *domain.PickerSession) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.False(t, called)
	})
}

func TestStoreDeleteExpired(t *testing.T) {
	store := NewStore()
	base := time.Date(2024, time.June, 8, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Create(newSession("fresh", base.Add(-5*time.Minute))))
	require.NoError(t, store.Create(newSession("stale", base.Add(-45*time.Minute))))

	removed := store.DeleteExpired(base, 30*time.Minute)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Count())

	_, err := store.Get("stale")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = store.Get("fresh")
	assert.NoError(t, err)
}
