package main

import (
	"context"
	"fmt"

	"github.com/Layr-Labs/chain-indexer/pkg/clients/ethereum"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/allowlist"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/config"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/contractCaller"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/contractCaller/caller"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/logger"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/persistence"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/persistence/factory"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/transactionSigner"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/types"
)

// commandEnv holds what every command needs once flags are parsed
type commandEnv struct {
	cfg    *config.AllowlistConfig
	logger *zap.Logger
	store  persistence.ICommitmentPersistence
}

// newContractCaller is swapped out in tests
var newContractCaller = dialContractCaller

func parseAllowlistConfig(c *cli.Context) *config.AllowlistConfig {
	return &config.AllowlistConfig{
		Hasher:          c.String("hasher"),
		Policy:          c.String("policy"),
		LeafEncoding:    c.String("leaf-encoding"),
		PersistenceType: c.String("persistence"),
		DataPath:        c.String("data-path"),
		RedisAddress:    c.String("redis-address"),
		RedisPassword:   c.String("redis-password"),
		RedisDB:         c.Int("redis-db"),
		RedisKeyPrefix:  c.String("redis-key-prefix"),
		ChainID:         config.ChainId(c.Uint64("chain-id")),
		RpcUrl:          c.String("rpc-url"),
		ContractAddress: c.String("contract-address"),
		PrivateKey:      c.String("private-key"),
		RPCRateLimit:    c.Float64("rpc-rate-limit"),
		Debug:           c.Bool("verbose"),
	}
}

// setup parses and validates configuration, then opens the commitment store.
// The caller must call close.
func setup(c *cli.Context) (*commandEnv, error) {
	cfg := parseAllowlistConfig(c)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	appLogger, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := factory.NewPersistence(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s persistence: %w", cfg.PersistenceType, err)
	}

	return &commandEnv{cfg: cfg, logger: appLogger, store: store}, nil
}

func (r *commandEnv) close() {
	if err := r.store.Close(); err != nil {
		r.logger.Sugar().Warnw("Failed to close persistence", "error", err)
	}
	_ = r.logger.Sync()
}

// loadAllowlist builds the allowlist from --input or rebuilds a stored commitment from --name.
// The commitment is nil when the list came from a file.
func (r *commandEnv) loadAllowlist(c *cli.Context) (*allowlist.Allowlist, *types.Commitment, error) {
	input, name := c.String("input"), c.String("name")
	switch {
	case input != "" && name != "":
		return nil, nil, fmt.Errorf("use either --input or --name, not both")
	case input != "":
		addresses, err := allowlist.LoadAddresses(input)
		if err != nil {
			return nil, nil, err
		}
		settings, err := r.cfg.AllowlistSettings()
		if err != nil {
			return nil, nil, err
		}
		al, err := allowlist.NewAllowlist(addresses, settings)
		return al, nil, err
	case name != "":
		commitment, err := r.store.LoadCommitment(name)
		if err != nil {
			return nil, nil, err
		}
		if commitment == nil {
			return nil, nil, fmt.Errorf("no commitment named %q", name)
		}
		al, err := allowlist.FromCommitment(commitment)
		return al, commitment, err
	default:
		return nil, nil, fmt.Errorf("one of --input or --name is required")
	}
}

// dialContractCaller connects to the configured RPC endpoint. A signer is
// created only when needsSigner is set.
func dialContractCaller(ctx context.Context, cfg *config.AllowlistConfig, l *zap.Logger, needsSigner bool) (contractCaller.IContractCaller, error) {
	ethClient := ethereum.NewEthereumClient(&ethereum.EthereumClientConfig{
		BaseUrl:   cfg.RpcUrl,
		BlockType: ethereum.BlockType_Latest,
	}, l)

	client, err := ethClient.GetEthereumContractCaller()
	if err != nil {
		return nil, fmt.Errorf("failed to get contract caller: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if chainID.Uint64() != uint64(cfg.ChainID) {
		return nil, fmt.Errorf("RPC endpoint reports chain ID %d, configured %d", chainID.Uint64(), cfg.ChainID)
	}

	var signer transactionSigner.ITransactionSigner
	if needsSigner {
		signer, err = transactionSigner.NewTransactionSigner(&transactionSigner.SignerConfig{
			PrivateKey: cfg.PrivateKey,
		}, client, l)
		if err != nil {
			return nil, fmt.Errorf("failed to create transaction signer: %w", err)
		}
	}

	cc, err := caller.NewContractCaller(client, signer, &caller.ContractCallerConfig{
		RPCRateLimit: cfg.RPCRateLimit,
	}, l)
	if err != nil {
		return nil, err
	}
	return cc, nil
}

// chainCaller validates the chain settings and returns a caller for them
func (r *commandEnv) chainCaller(ctx context.Context, needsContract, needsSigner bool) (contractCaller.IContractCaller, error) {
	if err := r.cfg.ValidateChain(needsContract, needsSigner); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	return newContractCaller(ctx, r.cfg, r.logger, needsSigner)
}
