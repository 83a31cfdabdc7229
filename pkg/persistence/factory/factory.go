package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/config"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/persistence"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/persistence/badger"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/persistence/memory"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/persistence/redis"
)

// NewPersistence opens the commitment store selected by cfg.PersistenceType.
func NewPersistence(cfg *config.AllowlistConfig, logger *zap.Logger) (persistence.ICommitmentPersistence, error) {
	switch cfg.PersistenceType {
	case persistence.TypeMemory, "":
		return memory.NewMemoryPersistence(logger), nil
	case persistence.TypeBadger:
		return badger.NewBadgerPersistence(cfg.DataPath, logger)
	case persistence.TypeRedis:
		return redis.NewRedisPersistence(&redis.RedisConfig{
			Address:   cfg.RedisAddress,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.RedisKeyPrefix,
		}, logger)
	default:
		return nil, fmt.Errorf("unsupported persistence type: %s", cfg.PersistenceType)
	}
}
