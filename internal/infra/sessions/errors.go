package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена в хранилище
	// (закрыта, подтверждена или удалена по истечении TTL)
	ErrSessionNotFound = errors.New("picker session not found")

	// ErrSessionExists возвращается при попытке создать сессию с занятым ID
	ErrSessionExists = errors.New("picker session already exists")
)
