package memory

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/persistence"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/types"
)

// MemoryPersistence is an in-memory implementation of ICommitmentPersistence.
// Intended for tests and one-shot CLI runs.
//
// All data is lost when the process exits.
// Thread-safe using sync.RWMutex for concurrent access.
// Deep copies data to prevent external mutation.
type MemoryPersistence struct {
	mu sync.RWMutex

	// name -> Commitment
	commitments map[string]*types.Commitment

	closed bool
}

// Ensure MemoryPersistence implements ICommitmentPersistence
var _ persistence.ICommitmentPersistence = (*MemoryPersistence)(nil)

// NewMemoryPersistence creates a new in-memory persistence layer.
func NewMemoryPersistence(logger *zap.Logger) *MemoryPersistence {
	if logger != nil {
		logger.Sugar().Warnw("Using in-memory persistence, commitments will be lost on exit",
			"hint", "set ALLOWLIST_PERSISTENCE_TYPE=badger to keep them")
	}

	return &MemoryPersistence{
		commitments: make(map[string]*types.Commitment),
	}
}

// SaveCommitment persists a commitment under its name.
func (m *MemoryPersistence) SaveCommitment(commitment *types.Commitment) error {
	if err := persistence.ValidateCommitment(commitment); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	m.commitments[commitment.Name] = commitment.Copy()
	return nil
}

// LoadCommitment retrieves a commitment by name.
func (m *MemoryPersistence) LoadCommitment(name string) (*types.Commitment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	commitment, exists := m.commitments[name]
	if !exists {
		return nil, nil // Not found is not an error
	}

	return commitment.Copy(), nil
}

// ListCommitments returns all commitments sorted by name.
func (m *MemoryPersistence) ListCommitments() ([]*types.Commitment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	names := make([]string, 0, len(m.commitments))
	for name := range m.commitments {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]*types.Commitment, 0, len(names))
	for _, name := range names {
		result = append(result, m.commitments[name].Copy())
	}

	return result, nil
}

// DeleteCommitment removes a commitment by name.
func (m *MemoryPersistence) DeleteCommitment(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	delete(m.commitments, name)
	return nil
}

// Close marks the persistence layer as closed.
func (m *MemoryPersistence) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

// HealthCheck reports whether the persistence layer is still open.
func (m *MemoryPersistence) HealthCheck() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return fmt.Errorf("persistence layer is closed")
	}
	return nil
}
