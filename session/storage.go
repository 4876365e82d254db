package session

import (
	"context"
	"errors"
	"sync"
)

// ErrStorageUnavailable is an exported constant or variable used by the console client.
var ErrStorageUnavailable = errors.New("session storage unavailable")

// Slot key suffixes. Kept stable so sessions written by one process
// revision restore under the next.
const (
	tokenSlot    = "auth_token"
	identitySlot = "auth_user"
)

// Storage defines a public type used by goConsole APIs.
//
// Storage is the two-slot durable mirror of the session: one slot for the
// raw bearer token, one for the encoded identity. Implementations must
// persist and remove the pair as a unit: a reader may never observe one
// slot without the other.
type Storage interface {
	// Load returns both slots. ok is false when the pair is absent.
	Load(ctx context.Context) (token string, identity []byte, ok bool, err error)

	// Store writes both slots. A partially applied write is not allowed
	// to survive a crash in any implementation.
	Store(ctx context.Context, token string, identity []byte) error

	// Clear removes both slots. Clearing an empty storage is a no-op.
	Clear(ctx context.Context) error
}

// MemoryStorage defines a public type used by goConsole APIs.
//
// MemoryStorage instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MemoryStorage struct {
	mu       sync.Mutex
	token    string
	identity []byte
	present  bool
}

// NewMemoryStorage describes the newmemorystorage operation and its observable behavior.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load describes the load operation and its observable behavior.
func (m *MemoryStorage) Load(context.Context) (string, []byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.present {
		return "", nil, false, nil
	}

	identity := make([]byte, len(m.identity))
	copy(identity, m.identity)
	return m.token, identity, true, nil
}

// Store describes the store operation and its observable behavior.
func (m *MemoryStorage) Store(_ context.Context, token string, identity []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.identity = make([]byte, len(identity))
	copy(m.identity, identity)
	m.present = true
	return nil
}

// Clear describes the clear operation and its observable behavior.
func (m *MemoryStorage) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	m.identity = nil
	m.present = false
	return nil
}
