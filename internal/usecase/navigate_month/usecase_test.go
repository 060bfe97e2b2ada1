package navigate_month

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bedylmz/toolshare-fe/internal/domain"
	"github.com/bedylmz/toolshare-fe/internal/infra/sessions"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newFixture(t *testing.T, cursor domain.CalendarCursor) (*UseCase, *sessions.Store) {
	t.Helper()
	store := sessions.NewStore()
	session := &domain.PickerSession{
		ID:           "sess-1",
		ToolID:       42,
		UserID:       12,
		Today:        time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC),
		Cursor:       cursor,
		CreatedAt:    time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC),
		LastActiveAt: time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Create(session))
	return NewUseCase(store, noopLogger{}), store
}

func TestExecute_NextAndPrev(t *testing.T) {
	uc, _ := newFixture(t, domain.CalendarCursor{Month: time.June, Year: 2024})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 12, Direction: DirectionNext})
	require.NoError(t, err)
	assert.Equal(t, time.July, resp.Month)
	assert.Equal(t, 2024, resp.Year)

	resp, err = uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 12, Direction: DirectionPrev})
	require.NoError(t, err)
	assert.Equal(t, time.June, resp.Month)
	assert.Equal(t, 2024, resp.Year)
}

func TestExecute_YearWrap(t *testing.T) {
	uc, _ := newFixture(t, domain.CalendarCursor{Month: time.December, Year: 2024})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 12, Direction: DirectionNext})
	require.NoError(t, err)
	assert.Equal(t, time.January, resp.Month)
	assert.Equal(t, 2025, resp.Year)

	resp, err = uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 12, Direction: DirectionPrev})
	require.NoError(t, err)
	assert.Equal(t, time.December, resp.Month)
	assert.Equal(t, 2024, resp.Year)
}

func TestExecute_NavigationKeepsSelection(t *testing.T) {
	uc, store := newFixture(t, domain.CalendarCursor{Month: time.June, Year: 2024})

	start := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Update("sess-1", func(s *domain.PickerSession) error {
		s.Selection.Restart(start)
		return nil
	}))

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 12, Direction: DirectionNext})
	require.NoError(t, err)

	session, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SelectionStartOnly, session.Selection.State())
	assert.Equal(t, start, *session.Selection.Start)
}

func TestExecute_InvalidDirection(t *testing.T) {
	uc, _ := newFixture(t, domain.CalendarCursor{Month: time.June, Year: 2024})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 12, Direction: "sideways"})
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestExecute_SessionNotFound(t *testing.T) {
	uc, _ := newFixture(t, domain.CalendarCursor{Month: time.June, Year: 2024})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", UserID: 12, Direction: DirectionNext})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	uc, store := newFixture(t, domain.CalendarCursor{Month: time.June, Year: 2024})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 99, Direction: DirectionNext})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// курсор чужой сессии не сдвинулся
	session, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, time.June, session.Cursor.Month)
}
