package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("board session not found")
	ErrAlreadyAnswered = errors.New("question already answered in this session")
)

// SessionInfo is the exported view of a board session.
type SessionInfo struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type sessionState struct {
	info     SessionInfo
	answered map[uint]bool
}

// SessionManager tracks which cells have been picked in each board session.
// Marks live in memory only; resetting a session never touches stored
// content.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*sessionState),
	}
}

func (m *SessionManager) Create() SessionInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := &sessionState{
		info: SessionInfo{
			ID:        uuid.NewString(),
			CreatedAt: time.Now(),
		},
		answered: make(map[uint]bool),
	}
	m.sessions[state.info.ID] = state
	return state.info
}

func (m *SessionManager) Get(id string) (SessionInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[id]
	if !ok {
		return SessionInfo{}, ErrSessionNotFound
	}
	return state.info, nil
}

// Answered returns a copy of the session's answered set.
func (m *SessionManager) Answered(id string) (map[uint]bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := make(map[uint]bool, len(state.answered))
	for qid := range state.answered {
		cp[qid] = true
	}
	return cp, nil
}

// MarkAnswered marks a cell as picked. Picking the same cell twice in one
// session fails with ErrAlreadyAnswered.
func (m *SessionManager) MarkAnswered(id string, questionID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if state.answered[questionID] {
		return ErrAlreadyAnswered
	}
	state.answered[questionID] = true
	return nil
}

func (m *SessionManager) IsAnswered(id string, questionID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[id]
	if !ok {
		return false, ErrSessionNotFound
	}
	return state.answered[questionID], nil
}

// Reset clears the answered marks of one session.
func (m *SessionManager) Reset(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	state.answered = make(map[uint]bool)
	return nil
}

func (m *SessionManager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
