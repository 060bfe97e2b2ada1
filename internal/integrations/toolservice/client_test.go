package toolservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bedylmz/toolshare-fe/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, noopLogger{}, nil), srv
}

func TestGetTool(t *testing.T) {
	t.Run("returns the tool on 200", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tools/42", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"tool_id": 42, "tool_name": "Bosch Matkap", "user_id": 7, "is_available": true}`))
		})

		tool, err := client.GetTool(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), tool.ToolID)
		assert.Equal(t, "Bosch Matkap", tool.ToolName)
		assert.Equal(t, int64(7), tool.UserID)
	})

	t.Run("maps 404 to ErrToolNotFound", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetTool(context.Background(), 42)

		assert.ErrorIs(t, err, ErrToolNotFound)
	})

	t.Run("wraps unexpected status codes", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		_, err := client.GetTool(context.Background(), 42)

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestGetAvailability(t *testing.T) {
	t.Run("normalizes timestamps to day granularity", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tools/5/availability", r.URL.Path)
			assert.Equal(t, "2024-06-01", r.URL.Query().Get("start_date"))
			assert.Equal(t, "90", r.URL.Query().Get("days"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{
					"check_date": "2024-06-10T00:00:00Z",
					"is_available": false,
					"reservation_start": "2024-06-10T09:00:00Z",
					"reservation_end": "2024-06-12",
					"borrower_id": 7,
					"borrower_name": "Ayşe"
				}
			]`))
		})

		from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		records, err := client.GetAvailability(context.Background(), 5, from, 90)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), records[0].CheckDate)
		assert.False(t, records[0].IsAvailable)
		require.NotNil(t, records[0].BorrowerID)
		assert.Equal(t, int64(7), *records[0].BorrowerID)

		start, end, ok := records[0].Window()
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, time.June, 12, 23, 59, 59, 0, time.UTC), end)
	})

	t.Run("rejects malformed check_date", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"check_date": "10.06.2024", "is_available": false}]`))
		})

		_, err := client.GetAvailability(context.Background(), 5, time.Now(), 90)

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestGetAvailabilityWithGracefulDegradation(t *testing.T) {
	t.Run("passes tool-not-found through", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetAvailabilityWithGracefulDegradation(context.Background(), 5, time.Now(), 90)

		assert.ErrorIs(t, err, ErrToolNotFound)
	})

	t.Run("degrades on upstream failure", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.GetAvailabilityWithGracefulDegradation(context.Background(), 5, time.Now(), 90)

		assert.ErrorIs(t, err, ErrServiceDegraded)
	})
}

func TestCreateReservation(t *testing.T) {
	t.Run("creates a reservation", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/reservations", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"reservation_id": 101, "tool_id": 5, "user_id": 12, "start_t": "2024-06-16", "end_t": "2024-06-19", "status": "pending"}`))
		})

		res, err := client.CreateReservation(context.Background(), ReservationCreate{
			ToolID:    5,
			UserID:    12,
			StartDate: "2024-06-16",
			EndDate:   "2024-06-19",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(101), res.ReservationID)
		assert.Equal(t, "pending", res.Status)
	})

	t.Run("maps 409 to ErrReservationConflict", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})

		_, err := client.CreateReservation(context.Background(), ReservationCreate{ToolID: 5, UserID: 12})

		assert.ErrorIs(t, err, ErrReservationConflict)
	})

	t.Run("maps 422 to ErrInvalidRequest", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		})

		_, err := client.CreateReservation(context.Background(), ReservationCreate{ToolID: 5, UserID: 12})

		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestGetStatisticsSummary(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/statistics/summary", r.URL.Path)
		w.Write([]byte(`{"total_users": 10, "total_tools": 25, "total_reservations": 40, "total_reviews": 12, "active_borrowers": 6, "active_lenders": 8, "avg_tools_per_owner": 3.1}`))
	})

	summary, err := client.GetStatisticsSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 25, summary.TotalTools)
	require.NotNil(t, summary.AvgToolsPerOwner)
	assert.InDelta(t, 3.1, *summary.AvgToolsPerOwner, 0.001)
}

func TestRecordToDomainKeepsBorrowerIdentity(t *testing.T) {
	name := "Mehmet"
	id := int64(12)
	raw := AvailabilityRecord{
		CheckDate:    "2024-06-10",
		IsAvailable:  false,
		BorrowerID:   &id,
		BorrowerName: &name,
	}

	rec, err := raw.ToDomain()

	require.NoError(t, err)
	assert.True(t, rec.BelongsTo(12))
	assert.False(t, rec.BelongsTo(7))
	assert.Equal(t, domain.DayOf(rec.CheckDate), rec.CheckDate)
}
