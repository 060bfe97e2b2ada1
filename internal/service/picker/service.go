package picker

import (
	"errors"
	"fmt"
	"time"

	"github.com/bedylmz/toolshare-fe/internal/infra/sessions"
)

// Service сервис жизненного цикла сессий выбора дат: закрытие по
// запросу пользователя и периодическая уборка истекших сессий
type Service struct {
	store        SessionStore
	timeProvider TimeProvider
	logger       Logger
	metrics      MetricsRecorder
	ttl          time.Duration
}

// NewService создает новый экземпляр сервиса жизненного цикла.
// metrics может быть nil, если метрики выключены
func NewService(store SessionStore, ttl time.Duration, logger Logger, metrics MetricsRecorder) *Service {
	return &Service{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		metrics:      metrics,
		ttl:          ttl,
	}
}

// Close закрывает сессию по запросу пользователя. Закрыть можно
// только собственную сессию
func (s *Service) Close(sessionID string, userID int64) error {
	s.logger.Info("Close: user=%d closes session %s", userID, sessionID)

	if sessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if userID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	session, err := s.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("Close: failed to load session %s: %v", sessionID, err)
		return fmt.Errorf("%w: Close - failed to load session: %v", ErrInternal, err)
	}
	if session.UserID != userID {
		s.logger.Warn("Close: user=%d denied to close session %s of user=%d", userID, sessionID, session.UserID)
		return ErrAccessDenied
	}

	if err := s.store.Delete(sessionID); err != nil && !errors.Is(err, sessions.ErrSessionNotFound) {
		s.logger.Error("Close: failed to delete session %s: %v", sessionID, err)
		return fmt.Errorf("%w: Close - failed to delete session: %v", ErrInternal, err)
	}

	s.reportActive()
	return nil
}

// SweepExpired удаляет сессии, простоявшие без действий дольше TTL.
// Вызывается планировщиком
func (s *Service) SweepExpired() {
	removed := s.store.DeleteExpired(s.timeProvider.Now(), s.ttl)
	if removed > 0 {
		s.logger.Info("SweepExpired: removed %d expired sessions", removed)
		if s.metrics != nil {
			s.metrics.AddExpiredSessions(removed)
		}
	}
	s.reportActive()
}

func (s *Service) reportActive() {
	if s.metrics != nil {
		s.metrics.SetActiveSessions(s.store.Count())
	}
}
