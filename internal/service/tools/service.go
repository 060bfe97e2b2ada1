package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bedylmz/toolshare-fe/internal/domain"
	"github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
	"github.com/bedylmz/toolshare-fe/internal/service/tools/models"
)

// Service сервис каталога инструментов
type Service struct {
	client ToolServiceClient
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(client ToolServiceClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// List возвращает каталог инструментов с фильтрами.
// Поиск - подстрока имени без учета регистра; фильтр категории
// отключается пустым значением или значением "все категории"
func (s *Service) List(ctx context.Context, req *models.ListToolsRequest) (*models.ToolListResponse, error) {
	s.logger.Info("List: fetching tools, search=%q, category=%q", req.Search, req.Category)

	tools, err := s.client.ListTools(ctx)
	if err != nil {
		s.logger.Error("List: upstream error: %v", err)
		return nil, fmt.Errorf("%w: List - upstream error: %v", ErrInternal, err)
	}

	filtered := filterTools(tools, req.Search, req.Category)

	s.logger.Info("List: %d of %d tools matched", len(filtered), len(tools))
	return models.FromAPITools(filtered), nil
}

// GetByID возвращает один инструмент каталога
func (s *Service) GetByID(ctx context.Context, toolID int64) (*models.ToolResponse, error) {
	s.logger.Info("GetByID: fetching tool id=%d", toolID)

	if toolID <= 0 {
		return nil, fmt.Errorf("%w: toolID must be positive", ErrInvalidInput)
	}

	tool, err := s.client.GetTool(ctx, toolID)
	if err != nil {
		if errors.Is(err, toolservice.ErrToolNotFound) {
			s.logger.Warn("GetByID: tool id=%d not found", toolID)
			return nil, ErrToolNotFound
		}
		s.logger.Error("GetByID: upstream error for tool id=%d: %v", toolID, err)
		return nil, fmt.Errorf("%w: GetByID - upstream error: %v", ErrInternal, err)
	}

	return models.FromAPITool(tool), nil
}

// Create публикует новый инструмент от имени пользователя
func (s *Service) Create(ctx context.Context, req *models.CreateToolRequest) (*models.ToolResponse, error) {
	s.logger.Info("Create: user=%d publishes tool %q", req.UserID, req.ToolName)

	name := strings.TrimSpace(req.ToolName)
	if name == "" {
		return nil, fmt.Errorf("%w: tool name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxToolNameLength {
		return nil, fmt.Errorf("%w: tool name is too long", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	tool, err := s.client.CreateTool(ctx, toolservice.ToolCreate{
		ToolName: name,
		Category: strings.TrimSpace(req.Category),
		UserID:   req.UserID,
	})
	if err != nil {
		if errors.Is(err, toolservice.ErrInvalidRequest) {
			s.logger.Warn("Create: upstream rejected tool %q: %v", name, err)
			return nil, fmt.Errorf("%w: upstream rejected tool", ErrInvalidInput)
		}
		s.logger.Error("Create: upstream error for tool %q: %v", name, err)
		return nil, fmt.Errorf("%w: Create - upstream error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: tool id=%d published", tool.ToolID)
	return models.FromAPITool(tool), nil
}

// filterTools применяет поиск по имени и фильтр категории
func filterTools(tools []toolservice.Tool, search, category string) []toolservice.Tool {
	search = strings.ToLower(strings.TrimSpace(search))
	filterCategory := category != "" && category != domain.CategoryAll

	filtered := make([]toolservice.Tool, 0, len(tools))
	for _, tool := range tools {
		if search != "" && !strings.Contains(strings.ToLower(tool.ToolName), search) {
			continue
		}
		if filterCategory && tool.Category != category {
			continue
		}
		filtered = append(filtered, tool)
	}
	return filtered
}
