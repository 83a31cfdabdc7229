package redis

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/persistence"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/types"
)

// Key prefixes for namespacing in Redis
const (
	keyPrefixCommitment  = "allowlist:commitment:"
	keySchemaVersion     = "allowlist:metadata:schema_version"
	currentSchemaVersion = "v1"

	// Redis has no prefix iteration, so names are also kept in a set
	keySetCommitments = "allowlist:commitments:index"

	operationTimeout = 5 * time.Second
)

// RedisPersistence stores commitments in Redis so several operators can share them.
type RedisPersistence struct {
	client    *redis.Client
	logger    *zap.Logger
	keyPrefix string
	mu        sync.RWMutex
	closed    bool
}

// Ensure RedisPersistence implements ICommitmentPersistence
var _ persistence.ICommitmentPersistence = (*RedisPersistence)(nil)

// RedisConfig holds the configuration for connecting to Redis
type RedisConfig struct {
	// Address is the Redis server address (host:port)
	Address string
	// Password is the optional Redis password
	Password string
	// DB is the Redis database number (0-15)
	DB int
	// KeyPrefix is prepended to every key, e.g. "tenant-a:" gives
	// "tenant-a:allowlist:commitment:<name>".
	KeyPrefix string
}

// NewRedisPersistence connects to Redis and initializes the schema version.
func NewRedisPersistence(cfg *RedisConfig, logger *zap.Logger) (*RedisPersistence, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}

	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	rp := &RedisPersistence{
		client:    client,
		logger:    logger,
		keyPrefix: cfg.KeyPrefix,
	}

	if err := rp.initSchema(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Sugar().Infow("Redis persistence initialized",
		"address", cfg.Address,
		"db", cfg.DB,
		"key_prefix", cfg.KeyPrefix,
	)

	return rp, nil
}

func (r *RedisPersistence) prefixKey(key string) string {
	if r.keyPrefix == "" {
		return key
	}
	return r.keyPrefix + key
}

func (r *RedisPersistence) commitmentKey(name string) string {
	return r.prefixKey(keyPrefixCommitment + name)
}

// initSchema initializes or validates the schema version
func (r *RedisPersistence) initSchema(ctx context.Context) error {
	schemaKey := r.prefixKey(keySchemaVersion)

	existingVersion, err := r.client.Get(ctx, schemaKey).Result()
	if err == redis.Nil {
		return r.client.Set(ctx, schemaKey, currentSchemaVersion, 0).Err()
	}
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if existingVersion != currentSchemaVersion {
		return fmt.Errorf("unsupported schema version: %s (expected: %s)", existingVersion, currentSchemaVersion)
	}

	return nil
}

// SaveCommitment writes the commitment and indexes its name in one pipeline
func (r *RedisPersistence) SaveCommitment(commitment *types.Commitment) error {
	if err := persistence.ValidateCommitment(commitment); err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	data, err := persistence.MarshalCommitment(commitment)
	if err != nil {
		return fmt.Errorf("failed to marshal Commitment: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.commitmentKey(commitment.Name), data, 0)
	pipe.SAdd(ctx, r.prefixKey(keySetCommitments), commitment.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save Commitment: %w", err)
	}

	return nil
}

// LoadCommitment retrieves a commitment by name, returning nil if absent
func (r *RedisPersistence) LoadCommitment(name string) (*types.Commitment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.commitmentKey(name)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load Commitment: %w", err)
	}

	commitment, err := persistence.UnmarshalCommitment(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal Commitment: %w", err)
	}

	return commitment, nil
}

// ListCommitments returns all commitments sorted by name
func (r *RedisPersistence) ListCommitments() ([]*types.Commitment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	names, err := r.client.SMembers(ctx, r.prefixKey(keySetCommitments)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list Commitment index: %w", err)
	}
	sort.Strings(names)

	commitments := make([]*types.Commitment, 0, len(names))
	if len(names) == 0 {
		return commitments, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = r.commitmentKey(name)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Commitments: %w", err)
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Indexed but the value is gone; skip it
			r.logger.Sugar().Warnw("Commitment missing for indexed name", "name", names[i])
			continue
		}

		commitment, err := persistence.UnmarshalCommitment([]byte(raw))
		if err != nil {
			r.logger.Sugar().Warnw("Failed to unmarshal Commitment, skipping",
				"name", names[i], "error", err)
			continue
		}

		commitments = append(commitments, commitment)
	}

	return commitments, nil
}

// DeleteCommitment removes a commitment and its index entry
func (r *RedisPersistence) DeleteCommitment(name string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.commitmentKey(name))
	pipe.SRem(ctx, r.prefixKey(keySetCommitments), name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete Commitment: %w", err)
	}

	return nil
}

// Close closes the Redis client. Calling it twice is a no-op.
func (r *RedisPersistence) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.mu.Unlock()

	if err := r.client.Close(); err != nil {
		return fmt.Errorf("failed to close Redis client: %w", err)
	}

	r.logger.Sugar().Info("Redis persistence closed")
	return nil
}

// HealthCheck pings Redis and checks the schema version key
func (r *RedisPersistence) HealthCheck() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}

	_, err := r.client.Get(ctx, r.prefixKey(keySchemaVersion)).Result()
	if err == redis.Nil {
		return fmt.Errorf("schema version not found - database may not be properly initialized")
	}
	if err != nil {
		return fmt.Errorf("failed to verify schema version: %w", err)
	}

	return nil
}
