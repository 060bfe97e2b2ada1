package sessions

import (
	"sync"
	"time"

	"github.com/bedylmz/toolshare-fe/internal/domain"
)

// Store потокобезопасное in-memory хранилище сессий выбора дат.
// Сессия целиком принадлежит одному экземпляру модального окна на клиенте,
// поэтому персистентность не нужна: состояние живёт от открытия до
// подтверждения/закрытия/истечения TTL
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*domain.PickerSession
}

// NewStore создает новое хранилище сессий
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*domain.PickerSession),
	}
}

// Create сохраняет новую сессию
func (s *Store) Create(session *domain.PickerSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		return ErrSessionExists
	}
	s.sessions[session.ID] = session
	return nil
}

// Get возвращает глубокую копию сессии для чтения.
// Копия защищает вызывающий код от конкурентных мутаций
func (s *Store) Get(id string) (*domain.PickerSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
}

// Update применяет fn к сессии под блокировкой. Мутации fn фиксируются
// даже если fn возвращает ошибку: это позволяет state machine сохранять
// сообщение об ошибке валидации на сессии и одновременно сообщать о
// конфликте вызывающему коду.
// Если сессия уже удалена, возвращает ErrSessionNotFound и fn не вызывается:
// результат операции просто отбрасывается, а не применяется к мёртвой сессии
func (s *Store) Update(id string, fn func(*domain.PickerSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(session)
}

// Delete удаляет сессию
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Count возвращает количество активных сессий
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// DeleteExpired удаляет сессии, неактивные дольше ttl, и возвращает
// количество удалённых. Вызывается периодической cron-задачей
func (s *Store) DeleteExpired(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.IsExpired(now, ttl) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
