package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bedylmz/toolshare-fe/internal/domain"
	"github.com/bedylmz/toolshare-fe/internal/infra/sessions"
	"github.com/bedylmz/toolshare-fe/pkg/ptr"
)

const (
	borrowerAyse   int64 = 7
	borrowerMehmet int64 = 12
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
}

func newSession() *domain.PickerSession {
	return &domain.PickerSession{
		ID:       "sess-1",
		ToolID:   42,
		ToolName: "Matkap",
		OwnerID:  3,
		UserID:   borrowerMehmet,
		UserName: "Mehmet",
		Today:    day(14),
		Cursor:   domain.CalendarCursor{Month: time.June, Year: 2024},
		Availability: []domain.AvailabilityRecord{
			{
				CheckDate:        day(20),
				IsAvailable:      false,
				ReservationStart: ptr.Ptr(day(20)),
				ReservationEnd:   ptr.Ptr(day(22)),
				BorrowerID:       ptr.Ptr(borrowerAyse),
				BorrowerName:     ptr.Ptr("Ayşe"),
			},
		},
		CreatedAt:    day(14),
		LastActiveAt: day(14),
	}
}

func newUseCase(t *testing.T, session *domain.PickerSession) *UseCase {
	t.Helper()
	store := sessions.NewStore()
	require.NoError(t, store.Create(session))
	return NewUseCase(store, noopLogger{})
}

func TestExecute_MonthGrid(t *testing.T) {
	uc := newUseCase(t, newSession())

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: borrowerMehmet})
	require.NoError(t, err)

	assert.Equal(t, time.June, resp.Month)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 30, resp.DaysInMonth)
	// 1 июня 2024 суббота, сетка с понедельника
	assert.Equal(t, 5, resp.FirstWeekdayOffset)
	require.Len(t, resp.Days, 30)

	// прошедшие дни месяца
	assert.Equal(t, domain.DayStatusPast, resp.Days[0].Status)
	assert.Equal(t, domain.DayStatusPast, resp.Days[12].Status)
	assert.False(t, resp.Days[12].Selectable)

	// сегодня и далее свободны
	assert.Equal(t, domain.DayStatusFree, resp.Days[13].Status)
	assert.True(t, resp.Days[13].Selectable)

	// чужая резервация 20..22 с tooltip
	for _, idx := range []int{19, 20, 21} {
		assert.Equal(t, domain.DayStatusBlockedByOther, resp.Days[idx].Status, "day %d", idx+1)
		assert.False(t, resp.Days[idx].Selectable)
		assert.Equal(t, "Ayşe", resp.Days[idx].ReservedBy)
	}
	assert.Equal(t, domain.DayStatusFree, resp.Days[22].Status)

	assert.Equal(t, domain.SelectionEmpty, resp.Selection.State)
	assert.Zero(t, resp.Selection.DayCount)
	assert.Empty(t, resp.ValidationError)
	assert.False(t, resp.Degraded)
}

func TestExecute_SelectionStatuses(t *testing.T) {
	session := newSession()
	session.Selection.Restart(day(15))
	session.Selection.SetEnd(day(18))
	uc := newUseCase(t, session)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: borrowerMehmet})
	require.NoError(t, err)

	// концы диапазона и строго внутренние дни различаются
	assert.Equal(t, domain.DayStatusRangeEndpoint, resp.Days[14].Status)
	assert.Equal(t, domain.DayStatusInRange, resp.Days[15].Status)
	assert.Equal(t, domain.DayStatusInRange, resp.Days[16].Status)
	assert.Equal(t, domain.DayStatusRangeEndpoint, resp.Days[17].Status)

	assert.Equal(t, domain.SelectionComplete, resp.Selection.State)
	assert.Equal(t, 4, resp.Selection.DayCount)
}

func TestExecute_OwnReservationRemainsSelectable(t *testing.T) {
	session := newSession()
	session.Availability = append(session.Availability, domain.AvailabilityRecord{
		CheckDate:        day(25),
		IsAvailable:      false,
		ReservationStart: ptr.Ptr(day(25)),
		ReservationEnd:   ptr.Ptr(day(26)),
		BorrowerID:       ptr.Ptr(borrowerMehmet),
		BorrowerName:     ptr.Ptr("Mehmet"),
	})
	uc := newUseCase(t, session)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: borrowerMehmet})
	require.NoError(t, err)

	assert.Equal(t, domain.DayStatusOwnReservation, resp.Days[24].Status)
	assert.True(t, resp.Days[24].Selectable)
	assert.Empty(t, resp.Days[24].ReservedBy)
}

func TestExecute_DegradedSession(t *testing.T) {
	session := newSession()
	session.Availability = nil
	session.Degraded = true
	uc := newUseCase(t, session)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: borrowerMehmet})
	require.NoError(t, err)

	assert.True(t, resp.Degraded)
	// без данных доступности все непрошедшие дни свободны
	assert.Equal(t, domain.DayStatusFree, resp.Days[19].Status)
	assert.True(t, resp.Days[19].Selectable)
}

func TestExecute_SessionNotFound(t *testing.T) {
	uc := NewUseCase(sessions.NewStore(), noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", UserID: borrowerMehmet})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	uc := newUseCase(t, newSession())

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: borrowerAyse})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(t, newSession())

	_, err := uc.Execute(context.Background(), &Request{SessionID: "", UserID: borrowerMehmet})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
