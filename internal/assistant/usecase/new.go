package usecase

import (
	"sync"

	"conversational-support-assistant/internal/assistant"
	"conversational-support-assistant/internal/session/repository"
	"conversational-support-assistant/pkg/log"
)

// sessionLock serializes turns of one session. refs counts the callers
// currently holding or waiting on it, guarded by implUseCase.mu.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	turn assistant.TurnRunner

	// mu guards locks. Each session gets its own mutex so turns of the
	// same session serialize without blocking other sessions. Entries are
	// reference counted and removed when the last holder releases, so the
	// map only tracks sessions with work in flight.
	mu    sync.Mutex
	locks map[string]*sessionLock
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase
func New(l log.Logger, repo repository.Repository, turn assistant.TurnRunner) assistant.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		turn:  turn,
		locks: make(map[string]*sessionLock),
	}
}

// lockSession acquires the session's mutex, creating the entry on first use.
// Every call must be paired with unlockSession.
func (uc *implUseCase) lockSession(key string) *sessionLock {
	uc.mu.Lock()
	l, ok := uc.locks[key]
	if !ok {
		l = &sessionLock{}
		uc.locks[key] = l
	}
	l.refs++
	uc.mu.Unlock()

	l.mu.Lock()
	return l
}

// unlockSession releases the session's mutex and drops the map entry once
// nobody else holds or waits on it.
func (uc *implUseCase) unlockSession(key string, l *sessionLock) {
	l.mu.Unlock()

	uc.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(uc.locks, key)
	}
	uc.mu.Unlock()
}
