package transactionSigner

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/logger"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/testutil"
)

func Test_PrivateKeySigner_SendTransaction(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	require.NoError(t, err)

	chain := testutil.NewSimulatedChain(t)

	signer, err := NewTransactionSigner(&SignerConfig{PrivateKey: chain.PrivateKeyHex()}, chain.Client, l)
	require.NoError(t, err)
	assert.Equal(t, chain.Address, signer.GetFromAddress())

	recipient := common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	value := big.NewInt(1e15)
	tx := types.NewTx(&types.DynamicFeeTx{To: &recipient, Value: value})

	feeCap, gasLimit, err := signer.EstimateGasPriceAndLimit(ctx, tx)
	require.NoError(t, err)
	assert.Equal(t, 1, feeCap.Sign())
	assert.Equal(t, uint64(21000*12/10), gasLimit)

	receipt, err := signer.SignAndSendTransaction(ctx, tx)
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	// The sent transaction carries the same gas limit EstimateGasPriceAndLimit reports
	sent, _, err := chain.Client.TransactionByHash(ctx, receipt.TxHash)
	require.NoError(t, err)
	assert.Equal(t, gasLimit, sent.Gas())
	assert.Equal(t, uint8(types.DynamicFeeTxType), sent.Type())
	assert.True(t, sent.GasTipCap().Cmp(sent.GasFeeCap()) <= 0)

	balance, err := chain.Client.BalanceAt(ctx, recipient, nil)
	require.NoError(t, err)
	assert.Equal(t, value, balance)

	// Nonce is refetched, so a second send with the same template succeeds
	_, err = signer.SignAndSendTransaction(ctx, tx)
	require.NoError(t, err)
}

func Test_PrivateKeySigner_TransactOpts(t *testing.T) {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	require.NoError(t, err)
	chain := testutil.NewSimulatedChain(t)

	signer, err := NewPrivateKeySigner(chain.PrivateKeyHex(), chain.Client, l)
	require.NoError(t, err)

	opts, err := signer.GetTransactOpts(context.Background())
	require.NoError(t, err)
	assert.True(t, opts.NoSend)
	assert.Equal(t, chain.Address, opts.From)
}

func Test_NewTransactionSigner_InvalidKey(t *testing.T) {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	require.NoError(t, err)
	chain := testutil.NewSimulatedChain(t)

	_, err = NewTransactionSigner(&SignerConfig{}, chain.Client, l)
	require.Error(t, err)

	_, err = NewTransactionSigner(&SignerConfig{PrivateKey: "0xnothex"}, chain.Client, l)
	require.Error(t, err)
}
