package toolservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bedylmz/toolshare-fe/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик запросов к marketplace API
type MetricsRecorder interface {
	RecordUpstreamRequest(operation, outcome string)
}

// Client клиент для работы с внешним marketplace API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder // может быть nil, если метрики выключены
}

// NewClient создает новый экземпляр клиента marketplace API
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsRecorder) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

func (c *Client) record(operation, outcome string) {
	if c.metrics != nil {
		c.metrics.RecordUpstreamRequest(operation, outcome)
	}
}

// doJSON выполняет запрос и декодирует успешный ответ в out.
// Обработка неуспешных статус-кодов остаётся на вызывающем методе
func (c *Client) doJSON(ctx context.Context, method, url string, body interface{}, out interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && out != nil {
		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
		return resp, nil
	}

	return resp, nil
}

// unexpectedStatus формирует ошибку для необработанного статус-кода
func unexpectedStatus(resp *http.Response) error {
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}

// ListTools получает список всех инструментов
func (c *Client) ListTools(ctx context.Context) ([]Tool, error) {
	url := fmt.Sprintf("%s/tools", c.baseURL)

	var tools []Tool
	resp, err := c.doJSON(ctx, http.MethodGet, url, nil, &tools)
	if err != nil {
		c.record("list_tools", "error")
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.record("list_tools", "error")
		return nil, unexpectedStatus(resp)
	}

	c.record("list_tools", "ok")
	return tools, nil
}

// GetTool получает инструмент по ID
func (c *Client) GetTool(ctx context.Context, toolID int64) (*Tool, error) {
	url := fmt.Sprintf("%s/tools/%d", c.baseURL, toolID)

	var tool Tool
	resp, err := c.doJSON(ctx, http.MethodGet, url, nil, &tool)
	if err != nil {
		c.record("get_tool", "error")
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		c.record("get_tool", "ok")
		return &tool, nil
	case http.StatusNotFound:
		resp.Body.Close()
		c.record("get_tool", "ok")
		return nil, ErrToolNotFound
	default:
		c.record("get_tool", "error")
		return nil, unexpectedStatus(resp)
	}
}

// CreateTool создает новый инструмент (публикация объявления)
func (c *Client) CreateTool(ctx context.Context, req ToolCreate) (*Tool, error) {
	url := fmt.Sprintf("%s/tools", c.baseURL)

	var tool Tool
	resp, err := c.doJSON(ctx, http.MethodPost, url, req, &tool)
	if err != nil {
		c.record("create_tool", "error")
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		c.record("create_tool", "ok")
		return &tool, nil
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		resp.Body.Close()
		c.record("create_tool", "ok")
		return nil, ErrInvalidRequest
	default:
		c.record("create_tool", "error")
		return nil, unexpectedStatus(resp)
	}
}

// GetAvailability получает записи доступности инструмента на horizonDays дней
// вперёд начиная с from. Все даты в ответе нормализуются до границы дня
func (c *Client) GetAvailability(ctx context.Context, toolID int64, from time.Time, horizonDays int) ([]domain.AvailabilityRecord, error) {
	url := fmt.Sprintf("%s/tools/%d/availability?start_date=%s&days=%d",
		c.baseURL, toolID, domain.FormatDay(from), horizonDays)

	var raw []AvailabilityRecord
	resp, err := c.doJSON(ctx, http.MethodGet, url, nil, &raw)
	if err != nil {
		c.record("get_availability", "error")
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		resp.Body.Close()
		c.record("get_availability", "ok")
		return nil, ErrToolNotFound
	default:
		c.record("get_availability", "error")
		return nil, unexpectedStatus(resp)
	}

	records := make([]domain.AvailabilityRecord, 0, len(raw))
	for i := range raw {
		rec, err := raw[i].ToDomain()
		if err != nil {
			c.record("get_availability", "error")
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		records = append(records, rec)
	}

	c.record("get_availability", "ok")
	return records, nil
}

// GetAvailabilityWithGracefulDegradation получает записи доступности с graceful degradation.
// При недоступности marketplace API возвращает ErrServiceDegraded: календарь
// продолжает работать без известных конфликтов, а не блокирует пользователя
func (c *Client) GetAvailabilityWithGracefulDegradation(ctx context.Context, toolID int64, from time.Time, horizonDays int) ([]domain.AvailabilityRecord, error) {
	c.log.Info("Fetching availability for tool_id=%d, horizon=%d days", toolID, horizonDays)

	records, err := c.GetAvailability(ctx, toolID, from, horizonDays)
	if err != nil {
		// Бизнес-ошибку "инструмент не найден" пробрасываем дальше
		if errors.Is(err, ErrToolNotFound) {
			c.log.Warn("Availability requested for unknown tool_id=%d", toolID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки
		// парсинга) применяем graceful degradation.
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("ToolService unavailable, applying graceful degradation for tool_id=%d: %v", toolID, err)
		c.record("availability_degradation", "degraded")
		return nil, fmt.Errorf("%w: tool_id=%d, error=%v", ErrServiceDegraded, toolID, err)
	}

	c.log.Info("Successfully fetched %d availability records for tool_id=%d", len(records), toolID)
	return records, nil
}

// CreateReservation создает резервацию инструмента на закрытый диапазон дат.
// Серверная валидация конфликтов остаётся за marketplace API
func (c *Client) CreateReservation(ctx context.Context, req ReservationCreate) (*Reservation, error) {
	url := fmt.Sprintf("%s/reservations", c.baseURL)

	var reservation Reservation
	resp, err := c.doJSON(ctx, http.MethodPost, url, req, &reservation)
	if err != nil {
		c.record("create_reservation", "error")
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		c.record("create_reservation", "ok")
		return &reservation, nil
	case http.StatusConflict:
		resp.Body.Close()
		c.record("create_reservation", "ok")
		return nil, ErrReservationConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		resp.Body.Close()
		c.record("create_reservation", "ok")
		return nil, ErrInvalidRequest
	case http.StatusNotFound:
		resp.Body.Close()
		c.record("create_reservation", "ok")
		return nil, ErrToolNotFound
	default:
		c.record("create_reservation", "error")
		return nil, unexpectedStatus(resp)
	}
}

// GetUser получает пользователя по ID
func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	url := fmt.Sprintf("%s/users/%d", c.baseURL, userID)

	var user User
	resp, err := c.doJSON(ctx, http.MethodGet, url, nil, &user)
	if err != nil {
		c.record("get_user", "error")
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		c.record("get_user", "ok")
		return &user, nil
	case http.StatusNotFound:
		resp.Body.Close()
		c.record("get_user", "ok")
		return nil, ErrUserNotFound
	default:
		c.record("get_user", "error")
		return nil, unexpectedStatus(resp)
	}
}

// ListUserTools получает инструменты, опубликованные пользователем
func (c *Client) ListUserTools(ctx context.Context, userID int64) ([]Tool, error) {
	url := fmt.Sprintf("%s/users/%d/tools", c.baseURL, userID)

	var tools []Tool
	resp, err := c.doJSON(ctx, http.MethodGet, url, nil, &tools)
	if err != nil {
		c.record("list_user_tools", "error")
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.record("list_user_tools", "error")
		return nil, unexpectedStatus(resp)
	}

	c.record("list_user_tools", "ok")
	return tools, nil
}

// ListUserReservations получает историю резерваций пользователя
func (c *Client) ListUserReservations(ctx context.Context, userID int64) ([]Reservation, error) {
	url := fmt.Sprintf("%s/users/%d/reservations", c.baseURL, userID)

	var reservations []Reservation
	resp, err := c.doJSON(ctx, http.MethodGet, url, nil, &reservations)
	if err != nil {
		c.record("list_user_reservations", "error")
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.record("list_user_reservations", "error")
		return nil, unexpectedStatus(resp)
	}

	c.record("list_user_reservations", "ok")
	return reservations, nil
}

// GetStatisticsSummary получает сводную статистику системы
func (c *Client) GetStatisticsSummary(ctx context.Context) (*StatisticsSummary, error) {
	url := fmt.Sprintf("%s/statistics/summary", c.baseURL)

	var summary StatisticsSummary
	resp, err := c.doJSON(ctx, http.MethodGet, url, nil, &summary)
	if err != nil {
		c.record("get_statistics_summary", "error")
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.record("get_statistics_summary", "error")
		return nil, unexpectedStatus(resp)
	}

	c.record("get_statistics_summary", "ok")
	return &summary, nil
}

// ListAllActiveUsers получает всех пользователей, активных как заёмщик или владелец
func (c *Client) ListAllActiveUsers(ctx context.Context) ([]ActiveUser, error) {
	url := fmt.Sprintf("%s/statistics/active-users", c.baseURL)

	var users []ActiveUser
	resp, err := c.doJSON(ctx, http.MethodGet, url, nil, &users)
	if err != nil {
		c.record("list_active_users", "error")
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.record("list_active_users", "error")
		return nil, unexpectedStatus(resp)
	}

	c.record("list_active_users", "ok")
	return users, nil
}

// ListDualRoleUsers получает пользователей, одновременно берущих и дающих инструменты
func (c *Client) ListDualRoleUsers(ctx context.Context) ([]UserRef, error) {
	url := fmt.Sprintf("%s/statistics/dual-role-users", c.baseURL)

	var users []UserRef
	resp, err := c.doJSON(ctx, http.MethodGet, url, nil, &users)
	if err != nil {
		c.record("list_dual_role_users", "error")
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.record("list_dual_role_users", "error")
		return nil, unexpectedStatus(resp)
	}

	c.record("list_dual_role_users", "ok")
	return users, nil
}

// ListLendersOnly получает пользователей, которые только дают инструменты
func (c *Client) ListLendersOnly(ctx context.Context) ([]UserRef, error) {
	url := fmt.Sprintf("%s/statistics/lenders-only", c.baseURL)

	var users []UserRef
	resp, err := c.doJSON(ctx, http.MethodGet, url, nil, &users)
	if err != nil {
		c.record("list_lenders_only", "error")
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.record("list_lenders_only", "error")
		return nil, unexpectedStatus(resp)
	}

	c.record("list_lenders_only", "ok")
	return users, nil
}
