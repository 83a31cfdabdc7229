package caller

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/transactionSigner"
)

type ContractCallerConfig struct {
	// RPCRateLimit caps RPC requests per second. Zero disables limiting.
	RPCRateLimit float64
}

type ContractCaller struct {
	backend transactionSigner.EthereumBackend
	signer  transactionSigner.ITransactionSigner
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewContractCaller wraps backend for whitelist calls. signer may be nil for read-only use.
func NewContractCaller(
	backend transactionSigner.EthereumBackend,
	signer transactionSigner.ITransactionSigner,
	cfg *ContractCallerConfig,
	logger *zap.Logger,
) (*ContractCaller, error) {
	if backend == nil {
		return nil, fmt.Errorf("ethereum backend cannot be nil")
	}

	var limiter *rate.Limiter
	if cfg != nil && cfg.RPCRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPCRateLimit), 1)
	}

	return &ContractCaller{
		backend: backend,
		signer:  signer,
		limiter: limiter,
		logger:  logger,
	}, nil
}

// wait blocks until the rate limiter admits another RPC call
func (cc *ContractCaller) wait(ctx context.Context) error {
	if cc.limiter == nil {
		return nil
	}
	return cc.limiter.Wait(ctx)
}
