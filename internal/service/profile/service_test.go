package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeClient struct {
	user            *toolservice.User
	userErr         error
	tools           []toolservice.Tool
	toolsErr        error
	reservations    []toolservice.Reservation
	reservationsErr error
}

func (f *fakeClient) GetUser(context.Context, int64) (*toolservice.User, error) {
	return f.user, f.userErr
}

func (f *fakeClient) ListUserTools(context.Context, int64) ([]toolservice.Tool, error) {
	return f.tools, f.toolsErr
}

func (f *fakeClient) ListUserReservations(context.Context, int64) ([]toolservice.Reservation, error) {
	return f.reservations, f.reservationsErr
}

func TestGetProfile(t *testing.T) {
	client := &fakeClient{
		user: &toolservice.User{UserID: 7, UserName: "Ayşe", CreatedAt: "2023-01-15", AvgScore: 4.6, ReviewCount: 11},
		tools: []toolservice.Tool{
			{ToolID: 1, ToolName: "Matkap", Category: "Elektrikli Aletler", IsAvailable: true},
		},
		reservations: []toolservice.Reservation{
			{ReservationID: 5, ToolID: 2, StartDate: "2024-06-10", EndDate: "2024-06-12", Status: "active"},
		},
	}
	svc := NewService(client, noopLogger{})

	resp, err := svc.GetProfile(context.Background(), 7, 7)
	require.NoError(t, err)

	assert.Equal(t, "Ayşe", resp.User.UserName)
	assert.Equal(t, "2023-01-15", resp.User.MemberSince)
	assert.InDelta(t, 4.6, resp.User.AvgScore, 0.001)
	require.Len(t, resp.Tools, 1)
	assert.Equal(t, "Matkap", resp.Tools[0].ToolName)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "2024-06-10", resp.Reservations[0].StartDate)
}

func TestGetProfile_OwnProfileOnly(t *testing.T) {
	svc := NewService(&fakeClient{}, noopLogger{})

	_, err := svc.GetProfile(context.Background(), 7, 12)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetProfile_UserNotFound(t *testing.T) {
	svc := NewService(&fakeClient{userErr: toolservice.ErrUserNotFound}, noopLogger{})

	_, err := svc.GetProfile(context.Background(), 7, 7)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetProfile_UpstreamFailure(t *testing.T) {
	client := &fakeClient{
		user:     &toolservice.User{UserID: 7, UserName: "Ayşe"},
		toolsErr: errors.New("connection refused"),
	}
	svc := NewService(client, noopLogger{})

	_, err := svc.GetProfile(context.Background(), 7, 7)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetReservations(t *testing.T) {
	client := &fakeClient{
		reservations: []toolservice.Reservation{
			{ReservationID: 5, ToolID: 2, Status: "active"},
			{ReservationID: 6, ToolID: 3, Status: "completed"},
		},
	}
	svc := NewService(client, noopLogger{})

	resp, err := svc.GetReservations(context.Background(), 12, 12)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestGetReservations_OwnHistoryOnly(t *testing.T) {
	svc := NewService(&fakeClient{}, noopLogger{})

	_, err := svc.GetReservations(context.Background(), 12, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
