package caller

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/allowlist"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/logger"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/merkle"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/testutil"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/transactionSigner"
)

func newTestCaller(t *testing.T) (*ContractCaller, *testutil.SimulatedChain) {
	t.Helper()

	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	require.NoError(t, err)

	chain := testutil.NewSimulatedChain(t)
	signer, err := transactionSigner.NewPrivateKeySigner(chain.PrivateKeyHex(), chain.Client, l)
	require.NoError(t, err)

	cc, err := NewContractCaller(chain.Client, signer, &ContractCallerConfig{RPCRateLimit: 1000}, l)
	require.NoError(t, err)
	return cc, chain
}

func tutorialAllowlist(t *testing.T) (*allowlist.Allowlist, []common.Address) {
	t.Helper()
	addresses, err := allowlist.ParseAddresses(testutil.TutorialAddresses)
	require.NoError(t, err)
	al, err := allowlist.NewAllowlist(addresses, nil)
	require.NoError(t, err)
	return al, addresses
}

func Test_MerkleWhitelist_EndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cc, _ := newTestCaller(t)
	al, addresses := tutorialAllowlist(t)

	contractAddress, receipt, err := cc.DeployMerkleWhitelist(ctx)
	require.NoError(t, err)
	require.NotEqual(t, common.Address{}, contractAddress)
	require.NotNil(t, receipt)

	root, err := cc.GetMerkleRoot(ctx, contractAddress)
	require.NoError(t, err)
	assert.Equal(t, common.Hash{}, root)

	proof, err := al.ProofFor(addresses[0])
	require.NoError(t, err)

	t.Run("Root not set", func(t *testing.T) {
		_, err := cc.IsWhitelisted(ctx, contractAddress, addresses[0], proof)
		require.ErrorIs(t, err, ErrRootNotSet)
	})

	_, err = cc.SetMerkleRoot(ctx, contractAddress, al.Root())
	require.NoError(t, err)

	root, err = cc.GetMerkleRoot(ctx, contractAddress)
	require.NoError(t, err)
	assert.Equal(t, testutil.TutorialRoot, root.Hex())

	t.Run("Every member is whitelisted on chain", func(t *testing.T) {
		for _, addr := range addresses {
			proof, err := al.ProofFor(addr)
			require.NoError(t, err)
			ok, err := cc.IsWhitelisted(ctx, contractAddress, addr, proof)
			require.NoError(t, err)
			assert.True(t, ok, "address %s", addr.Hex())
		}
	})

	t.Run("Wrong proof is rejected", func(t *testing.T) {
		ok, err := cc.IsWhitelisted(ctx, contractAddress, addresses[1], proof)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Odd-sized list agrees with the contract", func(t *testing.T) {
		odd, err := allowlist.NewAllowlist(testutil.CreateTestAddresses(t, 7), nil)
		require.NoError(t, err)
		_, err = cc.SetMerkleRoot(ctx, contractAddress, odd.Root())
		require.NoError(t, err)

		for _, addr := range odd.Addresses() {
			p, err := odd.ProofFor(addr)
			require.NoError(t, err)
			ok, err := cc.IsWhitelisted(ctx, contractAddress, addr, p)
			require.NoError(t, err)
			assert.True(t, ok, "address %s", addr.Hex())
		}
	})

	t.Run("Nil proof", func(t *testing.T) {
		_, err := cc.IsWhitelisted(ctx, contractAddress, addresses[0], nil)
		require.ErrorIs(t, err, merkle.ErrInvalidProof)
	})
}

func Test_ContractCaller_ReadOnly(t *testing.T) {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	require.NoError(t, err)
	chain := testutil.NewSimulatedChain(t)

	cc, err := NewContractCaller(chain.Client, nil, nil, l)
	require.NoError(t, err)

	_, _, err = cc.DeployMerkleWhitelist(context.Background())
	require.ErrorIs(t, err, ErrNoSigner)

	_, err = cc.SetMerkleRoot(context.Background(), common.Address{1}, common.Hash{1})
	require.ErrorIs(t, err, ErrNoSigner)
}

func Test_NewContractCaller_NilBackend(t *testing.T) {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	require.NoError(t, err)
	_, err = NewContractCaller(nil, nil, nil, l)
	require.Error(t, err)
}
