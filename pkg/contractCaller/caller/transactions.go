package caller

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

func (cc *ContractCaller) buildTransactionOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if cc.signer == nil {
		return nil, ErrNoSigner
	}
	if err := cc.wait(ctx); err != nil {
		return nil, err
	}
	return cc.signer.GetTransactOpts(ctx)
}

func (cc *ContractCaller) signAndSendTransaction(ctx context.Context, tx *ethereumTypes.Transaction, operation string) (*ethereumTypes.Receipt, error) {
	to := "contract creation"
	if tx.To() != nil {
		to = tx.To().Hex()
	}
	cc.logger.Sugar().Infow("Signing and sending transaction",
		zap.String("operation", operation),
		zap.String("from", cc.signer.GetFromAddress().Hex()),
		zap.String("to", to),
	)

	if err := cc.wait(ctx); err != nil {
		return nil, err
	}
	receipt, err := cc.signer.SignAndSendTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return receipt, nil
}
