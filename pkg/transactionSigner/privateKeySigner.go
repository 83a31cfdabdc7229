package transactionSigner

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// fallbackGasTipCap is used when the node does not support eth_maxPriorityFeePerGas
var fallbackGasTipCap = big.NewInt(1500000000) // 1.5 gwei

const baseFeeMultiplier = 2

// PrivateKeySigner implements ITransactionSigner with a local ECDSA key
type PrivateKeySigner struct {
	backend     EthereumBackend
	logger      *zap.Logger
	chainID     *big.Int
	privateKey  *ecdsa.PrivateKey
	fromAddress common.Address
}

// NewPrivateKeySigner parses a hex private key (with or without 0x) and
// reads the chain ID from the backend.
func NewPrivateKeySigner(privateKeyHex string, backend EthereumBackend, logger *zap.Logger) (*PrivateKeySigner, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	chainID, err := backend.ChainID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	return &PrivateKeySigner{
		backend:     backend,
		logger:      logger,
		chainID:     chainID,
		privateKey:  privateKey,
		fromAddress: crypto.PubkeyToAddress(privateKey.PublicKey),
	}, nil
}

// GetTransactOpts returns keyed options with NoSend set, so bindings only
// build the transaction and SignAndSendTransaction submits it.
func (s *PrivateKeySigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.privateKey, s.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	opts.NoSend = true
	return opts, nil
}

// EstimateGasPriceAndLimit returns the fee cap and buffered gas limit for tx
func (s *PrivateKeySigner) EstimateGasPriceAndLimit(ctx context.Context, tx *types.Transaction) (*big.Int, uint64, error) {
	estimate, err := s.estimate(ctx, tx)
	if err != nil {
		return nil, 0, err
	}
	return estimate.gasFeeCap, estimate.gasLimit, nil
}

// txEstimate is what SignAndSendTransaction fills a dynamic fee tx with
type txEstimate struct {
	gasTipCap *big.Int
	gasFeeCap *big.Int
	gasLimit  uint64
}

func (s *PrivateKeySigner) estimate(ctx context.Context, tx *types.Transaction) (*txEstimate, error) {
	gasTipCap, maxFeePerGas, err := s.estimateFees(ctx)
	if err != nil {
		return nil, err
	}

	gasLimit, err := s.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:      s.fromAddress,
		To:        tx.To(),
		GasTipCap: gasTipCap,
		GasFeeCap: maxFeePerGas,
		Value:     tx.Value(),
		Data:      tx.Data(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	return &txEstimate{
		gasTipCap: gasTipCap,
		gasFeeCap: maxFeePerGas,
		gasLimit:  addGasBuffer(gasLimit),
	}, nil
}

func (s *PrivateKeySigner) estimateFees(ctx context.Context) (*big.Int, *big.Int, error) {
	gasTipCap, err := s.backend.SuggestGasTipCap(ctx)
	if err != nil {
		s.logger.Sugar().Warnw("cannot get gasTipCap, using fallback", zap.Error(err))
		gasTipCap = fallbackGasTipCap
	}

	header, err := s.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get latest block header: %w", err)
	}
	if header.BaseFee == nil {
		return nil, nil, fmt.Errorf("chain does not support EIP-1559 transactions")
	}

	// basefee * multiplier + tip
	maxFeePerGas := new(big.Int).Add(
		new(big.Int).Mul(header.BaseFee, big.NewInt(baseFeeMultiplier)),
		gasTipCap,
	)
	return gasTipCap, maxFeePerGas, nil
}

// SignAndSendTransaction rebuilds tx as an EIP-1559 transaction with fresh
// fees and nonce, signs it, sends it and waits until it is mined.
func (s *PrivateKeySigner) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	estimate, err := s.estimate(ctx, tx)
	if err != nil {
		return nil, err
	}

	nonce, err := s.backend.PendingNonceAt(ctx, s.fromAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	signedTx, err := types.SignNewTx(s.privateKey, types.LatestSignerForChainID(s.chainID), &types.DynamicFeeTx{
		ChainID:   s.chainID,
		Nonce:     nonce,
		GasTipCap: estimate.gasTipCap,
		GasFeeCap: estimate.gasFeeCap,
		Gas:       estimate.gasLimit,
		To:        tx.To(),
		Value:     tx.Value(),
		Data:      tx.Data(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	s.logger.Info("SignAndSendTransaction: sending transaction",
		zap.String("to", destination(signedTx)),
		zap.String("maxPriorityFeePerGas", estimate.gasTipCap.String()),
		zap.String("maxFeePerGas", estimate.gasFeeCap.String()),
		zap.Uint64("gasLimit", signedTx.Gas()),
		zap.Uint64("nonce", nonce),
	)

	if err := s.backend.SendTransaction(ctx, signedTx); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	receipt, err := bind.WaitMined(ctx, s.backend, signedTx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction receipt: %w", err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		s.logger.Error("SignAndSendTransaction: transaction failed",
			zap.String("txHash", receipt.TxHash.Hex()),
			zap.Uint64("status", receipt.Status),
			zap.Uint64("gasUsed", receipt.GasUsed),
		)
		return nil, fmt.Errorf("transaction %s failed with status %d", receipt.TxHash.Hex(), receipt.Status)
	}

	s.logger.Info("SignAndSendTransaction: transaction succeeded",
		zap.String("txHash", receipt.TxHash.Hex()),
		zap.Uint64("gasUsed", receipt.GasUsed),
		zap.Uint64("blockNumber", receipt.BlockNumber.Uint64()),
	)

	return receipt, nil
}

// GetFromAddress returns the address that will be used for signing
func (s *PrivateKeySigner) GetFromAddress() common.Address {
	return s.fromAddress
}

func destination(tx *types.Transaction) string {
	if tx.To() == nil {
		return "contract creation"
	}
	return tx.To().Hex()
}
