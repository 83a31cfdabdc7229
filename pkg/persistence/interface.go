package persistence

import "github.com/Layr-Labs/merkle-allowlist-go/pkg/types"

// ICommitmentPersistence stores allowlist commitments keyed by name.
// All implementations must be thread-safe.
//
// The interface supports:
// - Commitment management (save, load, list, delete)
// - Lifecycle management (close, health check)
type ICommitmentPersistence interface {
	// SaveCommitment persists a commitment under its Name.
	// Overwrites any existing commitment with the same name.
	SaveCommitment(commitment *types.Commitment) error

	// LoadCommitment retrieves a commitment by name.
	// Returns nil if it doesn't exist, error only on storage failure.
	LoadCommitment(name string) (*types.Commitment, error)

	// ListCommitments returns all commitments sorted by name.
	// Returns empty slice if none exist, error only on storage failure.
	ListCommitments() ([]*types.Commitment, error)

	// DeleteCommitment removes a commitment by name.
	// Idempotent - returns nil if it doesn't exist.
	DeleteCommitment(name string) error

	// Close cleanly shuts down the persistence layer.
	// Idempotent - safe to call multiple times.
	// After Close(), all other operations should return errors.
	Close() error

	// HealthCheck verifies the persistence layer is operational.
	HealthCheck() error
}

// Supported persistence backends
const (
	TypeMemory = "memory"
	TypeBadger = "badger"
	TypeRedis  = "redis"
)
