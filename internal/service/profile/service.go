package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
	"github.com/bedylmz/toolshare-fe/internal/service/profile/models"
)

// Service сервис профиля пользователя
type Service struct {
	client ToolServiceClient
	logger Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(client ToolServiceClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// GetProfile собирает профиль: данные пользователя, его инструменты и
// историю резерваций. Пользователь видит только собственный профиль
func (s *Service) GetProfile(ctx context.Context, userID, actorID int64) (*models.ProfileResponse, error) {
	s.logger.Info("GetProfile: fetching profile user=%d for actor=%d", userID, actorID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if userID != actorID {
		s.logger.Warn("GetProfile: actor=%d denied access to profile user=%d", actorID, userID)
		return nil, ErrAccessDenied
	}

	user, err := s.client.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, toolservice.ErrUserNotFound) {
			s.logger.Warn("GetProfile: user=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: upstream error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - upstream error: %v", ErrInternal, err)
	}

	tools, err := s.client.ListUserTools(ctx, userID)
	if err != nil {
		s.logger.Error("GetProfile: failed to list tools for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - failed to list tools: %v", ErrInternal, err)
	}

	reservations, err := s.client.ListUserReservations(ctx, userID)
	if err != nil {
		s.logger.Error("GetProfile: failed to list reservations for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - failed to list reservations: %v", ErrInternal, err)
	}

	return &models.ProfileResponse{
		User:         models.FromAPIUser(user),
		Tools:        models.FromAPITools(tools),
		Reservations: models.FromAPIReservations(reservations),
	}, nil
}

// GetReservations возвращает историю резерваций пользователя.
// Доступна только самому пользователю
func (s *Service) GetReservations(ctx context.Context, userID, actorID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("GetReservations: fetching reservations user=%d for actor=%d", userID, actorID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if userID != actorID {
		s.logger.Warn("GetReservations: actor=%d denied access to reservations of user=%d", actorID, userID)
		return nil, ErrAccessDenied
	}

	reservations, err := s.client.ListUserReservations(ctx, userID)
	if err != nil {
		if errors.Is(err, toolservice.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetReservations: upstream error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetReservations - upstream error: %v", ErrInternal, err)
	}

	infos := models.FromAPIReservations(reservations)
	return &models.ReservationListResponse{Reservations: infos, Total: len(infos)}, nil
}
