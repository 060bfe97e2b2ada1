package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
	"github.com/bedylmz/toolshare-fe/internal/service/tools/models"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeClient struct {
	tools     []toolservice.Tool
	listErr   error
	tool      *toolservice.Tool
	toolErr   error
	created   *toolservice.Tool
	createErr error
	gotCreate toolservice.ToolCreate
}

func (f *fakeClient) ListTools(context.Context) ([]toolservice.Tool, error) {
	return f.tools, f.listErr
}

func (f *fakeClient) GetTool(_ context.Context, toolID int64) (*toolservice.Tool, error) {
	if f.toolErr != nil {
		return nil, f.toolErr
	}
	return f.tool, nil
}

func (f *fakeClient) CreateTool(_ context.Context, req toolservice.ToolCreate) (*toolservice.Tool, error) {
	f.gotCreate = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func catalog() []toolservice.Tool {
	return []toolservice.Tool{
		{ToolID: 1, ToolName: "Matkap", Category: "Elektrikli Aletler", UserID: 7, IsAvailable: true},
		{ToolID: 2, ToolName: "Akülü Matkap", Category: "Elektrikli Aletler", UserID: 3, IsAvailable: true},
		{ToolID: 3, ToolName: "Çekiç", Category: "El Aletleri", UserID: 7, IsAvailable: false},
	}
}

func TestList_NoFilters(t *testing.T) {
	svc := NewService(&fakeClient{tools: catalog()}, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListToolsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
}

func TestList_SearchIsCaseInsensitive(t *testing.T) {
	svc := NewService(&fakeClient{tools: catalog()}, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListToolsRequest{Search: "matkap"})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Matkap", resp.Tools[0].ToolName)
	assert.Equal(t, "Akülü Matkap", resp.Tools[1].ToolName)
}

func TestList_CategoryFilter(t *testing.T) {
	svc := NewService(&fakeClient{tools: catalog()}, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListToolsRequest{Category: "El Aletleri"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Çekiç", resp.Tools[0].ToolName)

	// "все категории" отключает фильтр
	resp, err = svc.List(context.Background(), &models.ListToolsRequest{Category: "Tümü"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
}

func TestList_CombinedFilters(t *testing.T) {
	svc := NewService(&fakeClient{tools: catalog()}, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListToolsRequest{
		Search:   "akülü",
		Category: "Elektrikli Aletler",
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(2), resp.Tools[0].ToolID)
}

func TestList_UpstreamFailure(t *testing.T) {
	svc := NewService(&fakeClient{listErr: errors.New("connection refused")}, noopLogger{})

	_, err := svc.List(context.Background(), &models.ListToolsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByID(t *testing.T) {
	svc := NewService(&fakeClient{tool: &toolservice.Tool{ToolID: 1, ToolName: "Matkap"}}, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Matkap", resp.ToolName)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeClient{toolErr: toolservice.ErrToolNotFound}, noopLogger{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestCreate(t *testing.T) {
	client := &fakeClient{created: &toolservice.Tool{ToolID: 9, ToolName: "Testere", UserID: 7}}
	svc := NewService(client, noopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateToolRequest{
		ToolName: "  Testere  ",
		Category: "El Aletleri",
		UserID:   7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), resp.ToolID)
	// имя обрезается перед отправкой
	assert.Equal(t, "Testere", client.gotCreate.ToolName)
}

func TestCreate_ValidationErrors(t *testing.T) {
	svc := NewService(&fakeClient{}, noopLogger{})

	tests := []struct {
		name string
		req  *models.CreateToolRequest
	}{
		{name: "empty name", req: &models.CreateToolRequest{ToolName: "   ", UserID: 7}},
		{name: "too long name", req: &models.CreateToolRequest{ToolName: strings.Repeat("a", 101), UserID: 7}},
		{name: "zero user", req: &models.CreateToolRequest{ToolName: "Testere", UserID: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_UpstreamRejects(t *testing.T) {
	svc := NewService(&fakeClient{createErr: toolservice.ErrInvalidRequest}, noopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateToolRequest{ToolName: "Testere", UserID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
