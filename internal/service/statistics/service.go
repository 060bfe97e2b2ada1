package statistics

import (
	"context"
	"fmt"

	"github.com/bedylmz/toolshare-fe/internal/service/statistics/models"
)

// Service сервис статистики сообщества
type Service struct {
	client ToolServiceClient
	logger Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(client ToolServiceClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// GetStatistics собирает дашборд статистики из четырех выборок
// marketplace API
func (s *Service) GetStatistics(ctx context.Context) (*models.StatisticsResponse, error) {
	s.logger.Info("GetStatistics: fetching community statistics")

	summary, err := s.client.GetStatisticsSummary(ctx)
	if err != nil {
		s.logger.Error("GetStatistics: failed to fetch summary: %v", err)
		return nil, fmt.Errorf("%w: GetStatistics - failed to fetch summary: %v", ErrInternal, err)
	}

	active, err := s.client.ListAllActiveUsers(ctx)
	if err != nil {
		s.logger.Error("GetStatistics: failed to list active users: %v", err)
		return nil, fmt.Errorf("%w: GetStatistics - failed to list active users: %v", ErrInternal, err)
	}

	dualRole, err := s.client.ListDualRoleUsers(ctx)
	if err != nil {
		s.logger.Error("GetStatistics: failed to list dual-role users: %v", err)
		return nil, fmt.Errorf("%w: GetStatistics - failed to list dual-role users: %v", ErrInternal, err)
	}

	lendersOnly, err := s.client.ListLendersOnly(ctx)
	if err != nil {
		s.logger.Error("GetStatistics: failed to list lenders-only users: %v", err)
		return nil, fmt.Errorf("%w: GetStatistics - failed to list lenders-only users: %v", ErrInternal, err)
	}

	return &models.StatisticsResponse{
		Summary:     models.FromAPISummary(summary),
		ActiveUsers: models.FromAPIActiveUsers(active),
		DualRole:    models.FromAPIUserRefs(dualRole),
		LendersOnly: models.FromAPIUserRefs(lendersOnly),
	}, nil
}
