package auth

import (
	"context"
	"sync"

	"autoflow/internal/usecase/interfaces"
)

// MemoryTokenStore keeps sessions in process memory. Sessions do not
// survive a restart; clients just log in again.
type MemoryTokenStore struct {
	mu       sync.Mutex
	sessions map[string]interfaces.Session
}

var _ interfaces.ITokenStore = (*MemoryTokenStore)(nil)

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{sessions: make(map[string]interfaces.Session)}
}

func (s *MemoryTokenStore) Put(ctx context.Context, session interfaces.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

func (s *MemoryTokenStore) Get(ctx context.Context, token string) (interfaces.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	return session, ok, nil
}

func (s *MemoryTokenStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
