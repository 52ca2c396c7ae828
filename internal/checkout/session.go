package checkout

import (
	"sync"

	"github.com/google/uuid"
	"github.com/larosas-pizzeria/ordering-api/internal/models"
)

// Session owns one visitor's cart and checkout flow. Each session belongs
// to a single logical actor; the mutex only guards against concurrent HTTP
// requests for the same session id.
type Session struct {
	ID   string
	Cart *Cart
	Flow *Flow

	mu sync.Mutex
}

// Lock acquires the session for one operation
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session
func (s *Session) Unlock() { s.mu.Unlock() }

// Store keeps live sessions in memory, keyed by id
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session with a fresh cart and flow
func (s *Store) Create(defaults models.CustomerDetails) *Session {
	sess := &Session{
		ID:   uuid.New().String(),
		Cart: &Cart{},
		Flow: NewFlow(defaults),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session with the given id
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}
