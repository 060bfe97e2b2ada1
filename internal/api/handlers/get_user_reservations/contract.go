package get_user_reservations

import (
	"context"

	"github.com/bedylmz/toolshare-fe/internal/service/profile/models"
)

type ProfileService interface {
	GetReservations(ctx context.Context, userID, actorID int64) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
