package models

import (
	"github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
)

// ListToolsRequest запрос каталога с фильтрами
type ListToolsRequest struct {
	Search   string // подстрока имени, без учета регистра
	Category string // пусто или "Tümü" - без фильтра
}

// CreateToolRequest запрос на публикацию инструмента
type CreateToolRequest struct {
	ToolName string
	Category string
	UserID   int64
}

// ToolResponse модель инструмента для ответа API
type ToolResponse struct {
	ToolID      int64   `json:"tool_id"`
	ToolName    string  `json:"tool_name"`
	Category    string  `json:"category"`
	UserID      int64   `json:"user_id"`
	OwnerName   *string `json:"owner_name,omitempty"`
	IsAvailable bool    `json:"is_available"`
}

// ToolListResponse список инструментов каталога
type ToolListResponse struct {
	Tools []ToolResponse `json:"tools"`
	Total int            `json:"total"`
}

// FromAPITool конвертирует инструмент marketplace API в модель ответа
func FromAPITool(t *toolservice.Tool) *ToolResponse {
	return &ToolResponse{
		ToolID:      t.ToolID,
		ToolName:    t.ToolName,
		Category:    t.Category,
		UserID:      t.UserID,
		OwnerName:   t.OwnerName,
		IsAvailable: t.IsAvailable,
	}
}

// FromAPITools конвертирует список инструментов в модель ответа
func FromAPITools(tools []toolservice.Tool) *ToolListResponse {
	out := make([]ToolResponse, 0, len(tools))
	for i := range tools {
		out = append(out, *FromAPITool(&tools[i]))
	}
	return &ToolListResponse{Tools: out, Total: len(out)}
}
