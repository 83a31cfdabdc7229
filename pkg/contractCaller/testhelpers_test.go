package contractCaller

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/allowlist"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/contractCaller/caller"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/testutil"
)

func TestMockContractCaller(t *testing.T) {
	ctx := context.Background()
	m := NewMockContractCaller()

	addr, receipt, err := m.DeployMerkleWhitelist(ctx)
	require.NoError(t, err)
	assert.Equal(t, addr, receipt.ContractAddress)

	addresses, err := allowlist.ParseAddresses(testutil.TutorialAddresses)
	require.NoError(t, err)
	al, err := allowlist.NewAllowlist(addresses, nil)
	require.NoError(t, err)
	proof, err := al.ProofFor(addresses[0])
	require.NoError(t, err)

	_, err = m.IsWhitelisted(ctx, addr, addresses[0], proof)
	require.ErrorIs(t, err, caller.ErrRootNotSet)

	_, err = m.SetMerkleRoot(ctx, addr, al.Root())
	require.NoError(t, err)
	assert.Equal(t, 1, m.SetCalls)

	ok, err := m.IsWhitelisted(ctx, addr, addresses[0], proof)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.IsWhitelisted(ctx, addr, addresses[1], proof)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = m.SetMerkleRoot(ctx, common.Address{9}, al.Root())
	require.Error(t, err)
}
