package session

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Light-Brands/local-ide-sub000/internal/logging"
	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

// Backend is the remote side of chat session lifecycle. Implementations live
// in the client package; a nil backend keeps everything local.
type Backend interface {
	CreateSession(ctx context.Context) (string, error)
	DeleteSession(ctx context.Context, id string) error
	ListSessions(ctx context.Context) ([]types.RemoteSession, error)
}

var chatNamePattern = regexp.MustCompile(`^Chat (\d+)$`)

// ChatManager owns the ordered chat session list and the active-session
// pointer. Local state is the source of truth for the UI; remote calls are
// attached asynchronously and never block or roll back a local change.
type ChatManager struct {
	mu       sync.RWMutex
	sessions []*types.ChatSession
	activeID string
	backend  Backend
	log      *logging.Logger
	now      func() time.Time
}

// NewChatManager creates a chat manager. backend may be nil.
func NewChatManager(backend Backend, log *logging.Logger) *ChatManager {
	if log == nil {
		log = logging.NewNop()
	}
	return &ChatManager{backend: backend, log: log, now: time.Now}
}

// Create appends a new session named "Chat N" and marks it active. N is one
// past the highest auto-assigned number ever seen, so freed numbers are not
// reused. The backend id is attached asynchronously once the remote side
// confirms.
func (m *ChatManager) Create() types.ChatSession {
	m.mu.Lock()
	now := m.now()
	s := &types.ChatSession{
		ID:         uuid.New().String(),
		Name:       m.nextNameLocked(),
		CreatedAt:  now,
		LastActive: now,
	}
	m.sessions = append(m.sessions, s)
	m.activeID = s.ID
	out := cloneSession(s)
	m.mu.Unlock()

	if m.backend != nil {
		go m.attachRemote(out.ID)
	}
	return out
}

func (m *ChatManager) attachRemote(localID string) {
	backendID, err := m.backend.CreateSession(context.Background())
	if err != nil {
		m.log.Warn("backend session create failed", zap.String("session", localID), zap.Error(err))
		return
	}
	m.AttachBackend(localID, backendID)
}

func (m *ChatManager) nextNameLocked() string {
	next := 1
	for _, s := range m.sessions {
		if match := chatNamePattern.FindStringSubmatch(s.Name); match != nil {
			if n, err := strconv.Atoi(match[1]); err == nil && n >= next {
				next = n + 1
			}
		}
	}
	return fmt.Sprintf("Chat %d", next)
}

// Delete removes a session locally and re-points the active pointer to the
// first remaining session, or clears it. The remote teardown is dispatched
// fire-and-forget afterward; its failure is logged and never rolled back.
func (m *ChatManager) Delete(id string) bool {
	m.mu.Lock()
	idx := m.indexLocked(id)
	if idx < 0 {
		m.mu.Unlock()
		return false
	}

	backendID := m.sessions[idx].BackendID
	m.sessions = append(m.sessions[:idx], m.sessions[idx+1:]...)
	if m.activeID == id {
		if len(m.sessions) > 0 {
			m.activeID = m.sessions[0].ID
		} else {
			m.activeID = ""
		}
	}
	m.mu.Unlock()

	if m.backend != nil && backendID != nil {
		remoteID := *backendID
		go func() {
			if err := m.backend.DeleteSession(context.Background(), remoteID); err != nil {
				m.log.Warn("backend session delete failed", zap.String("backend_id", remoteID), zap.Error(err))
			}
		}()
	}
	return true
}

// AttachBackend records the backend-confirmed id for a locally created
// session. Keyed by local id and idempotent: once a backend id is set,
// further calls are no-ops.
func (m *ChatManager) AttachBackend(localID, backendID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexLocked(localID)
	if idx < 0 || m.sessions[idx].BackendID != nil {
		return
	}
	m.sessions[idx].BackendID = &backendID
	m.sessions[idx].Persisted = true
}

// Activate points the active pointer at an existing session.
func (m *ChatManager) Activate(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexLocked(id)
	if idx < 0 {
		return false
	}
	m.activeID = id
	m.sessions[idx].LastActive = m.now()
	return true
}

// Active returns a copy of the active session, if any.
func (m *ChatManager) Active() (types.ChatSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.indexLocked(m.activeID)
	if idx < 0 {
		return types.ChatSession{}, false
	}
	return cloneSession(m.sessions[idx]), true
}

// ActiveID returns the active session id, or "".
func (m *ChatManager) ActiveID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeID
}

// List returns copies of all sessions in creation order.
func (m *ChatManager) List() []types.ChatSession {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.ChatSession, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, cloneSession(s))
	}
	return out
}

// Append adds a message to a session's transcript and bumps its last-active
// time.
func (m *ChatManager) Append(id string, msg types.ChatMessage) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexLocked(id)
	if idx < 0 {
		return false
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = m.now()
	}
	m.sessions[idx].Messages = append(m.sessions[idx].Messages, msg)
	m.sessions[idx].LastActive = m.now()
	return true
}

// Rename sets a session's display name.
func (m *ChatManager) Rename(id, name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexLocked(id)
	if idx < 0 || name == "" {
		return false
	}
	m.sessions[idx].Name = name
	return true
}

// Reconcile marks sessions whose backend id is no longer known remotely as
// unpersisted. The local list itself is never pruned by reconciliation.
func (m *ChatManager) Reconcile(remote []types.RemoteSession) {
	known := make(map[string]bool, len(remote))
	for _, r := range remote {
		known[r.ID] = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.BackendID != nil {
			s.Persisted = known[*s.BackendID]
		}
	}
}

// Reset drops every session and clears the active pointer.
func (m *ChatManager) Reset() {
	m.mu.Lock()
	m.sessions = nil
	m.activeID = ""
	m.mu.Unlock()
}

// Restore replaces the session list from a persisted snapshot. The active id
// is kept only if it resolves.
func (m *ChatManager) Restore(sessions []types.ChatSession, activeID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions = make([]*types.ChatSession, 0, len(sessions))
	for i := range sessions {
		s := sessions[i]
		m.sessions = append(m.sessions, &s)
	}
	m.activeID = ""
	if m.indexLocked(activeID) >= 0 {
		m.activeID = activeID
	} else if len(m.sessions) > 0 {
		m.activeID = m.sessions[0].ID
	}
}

func (m *ChatManager) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, s := range m.sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func cloneSession(s *types.ChatSession) types.ChatSession {
	out := *s
	out.Messages = append([]types.ChatMessage(nil), s.Messages...)
	if s.BackendID != nil {
		id := *s.BackendID
		out.BackendID = &id
	}
	return out
}
