package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/testutil"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/types"
)

func TestMemoryPersistence_SaveAndLoadCommitment(t *testing.T) {
	mp := NewMemoryPersistence(nil)
	defer func() { _ = mp.Close() }()

	commitment := testutil.CreateTestCommitment("genesis-mint")
	require.NoError(t, mp.SaveCommitment(commitment))

	loaded, err := mp.LoadCommitment("genesis-mint")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, commitment, loaded)
}

func TestMemoryPersistence_LoadCommitment_NotFound(t *testing.T) {
	mp := NewMemoryPersistence(nil)
	defer func() { _ = mp.Close() }()

	loaded, err := mp.LoadCommitment("missing")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryPersistence_SaveCommitment_Invalid(t *testing.T) {
	mp := NewMemoryPersistence(nil)
	defer func() { _ = mp.Close() }()

	require.Error(t, mp.SaveCommitment(nil))
	require.Error(t, mp.SaveCommitment(&types.Commitment{}))
}

func TestMemoryPersistence_DeepCopy(t *testing.T) {
	mp := NewMemoryPersistence(nil)
	defer func() { _ = mp.Close() }()

	commitment := testutil.CreateTestCommitment("copy")
	require.NoError(t, mp.SaveCommitment(commitment))

	// Mutating the original after save must not leak into storage
	commitment.Addresses[0] = common.Address{}
	loaded, err := mp.LoadCommitment("copy")
	require.NoError(t, err)
	assert.NotEqual(t, common.Address{}, loaded.Addresses[0])

	// Mutating a loaded copy must not leak either
	loaded.Root = common.Hash{}
	again, err := mp.LoadCommitment("copy")
	require.NoError(t, err)
	assert.NotEqual(t, common.Hash{}, again.Root)
}

func TestMemoryPersistence_ListAndDelete(t *testing.T) {
	mp := NewMemoryPersistence(nil)
	defer func() { _ = mp.Close() }()

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, mp.SaveCommitment(testutil.CreateTestCommitment(name)))
	}

	list, err := mp.ListCommitments()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, "bravo", list[1].Name)
	assert.Equal(t, "charlie", list[2].Name)

	require.NoError(t, mp.DeleteCommitment("bravo"))
	require.NoError(t, mp.DeleteCommitment("bravo")) // idempotent

	list, err = mp.ListCommitments()
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestMemoryPersistence_Closed(t *testing.T) {
	mp := NewMemoryPersistence(nil)
	require.NoError(t, mp.HealthCheck())
	require.NoError(t, mp.Close())
	require.NoError(t, mp.Close())

	require.Error(t, mp.HealthCheck())
	require.Error(t, mp.SaveCommitment(testutil.CreateTestCommitment("x")))
	_, err := mp.LoadCommitment("x")
	require.Error(t, err)
	_, err = mp.ListCommitments()
	require.Error(t, err)
}

func TestMemoryPersistence_ConcurrentAccess(t *testing.T) {
	mp := NewMemoryPersistence(nil)
	defer func() { _ = mp.Close() }()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("list-%d", i)
			assert.NoError(t, mp.SaveCommitment(testutil.CreateTestCommitment(name)))
			_, err := mp.LoadCommitment(name)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	list, err := mp.ListCommitments()
	require.NoError(t, err)
	assert.Len(t, list, 20)
}
