package badger

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/logger"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/types"
)

func newTestCommitment(name string) *types.Commitment {
	tx := common.HexToHash("0x01")
	return &types.Commitment{
		ID:           "id-" + name,
		Name:         name,
		Root:         common.HexToHash("0xeeefd63003e0e702cb41cd0043015a6e26ddb38073cc6ffeb0ba3e808ba8c097"),
		Hasher:       "keccak256",
		Policy:       "sorted",
		LeafEncoding: "single",
		Addresses: []common.Address{
			common.HexToAddress("0x4B20993Bc481177ec7E8f571ceCaE8A9e22C02db"),
		},
		PublishTxHash: &tx,
		CreatedAt:     1700000000,
	}
}

func newTestPersistence(t *testing.T, dir string) *BadgerPersistence {
	t.Helper()
	testLogger, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})

	bp, err := NewBadgerPersistence(dir, testLogger)
	require.NoError(t, err)
	return bp
}

func TestBadgerPersistence_SaveAndLoadCommitment(t *testing.T) {
	bp := newTestPersistence(t, t.TempDir())
	defer func() { _ = bp.Close() }()

	commitment := newTestCommitment("genesis-mint")
	require.NoError(t, bp.SaveCommitment(commitment))

	loaded, err := bp.LoadCommitment("genesis-mint")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, commitment, loaded)
}

func TestBadgerPersistence_LoadCommitment_NotFound(t *testing.T) {
	bp := newTestPersistence(t, t.TempDir())
	defer func() { _ = bp.Close() }()

	loaded, err := bp.LoadCommitment("missing")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestBadgerPersistence_ListAndDelete(t *testing.T) {
	bp := newTestPersistence(t, t.TempDir())
	defer func() { _ = bp.Close() }()

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, bp.SaveCommitment(newTestCommitment(name)))
	}

	list, err := bp.ListCommitments()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, []string{list[0].Name, list[1].Name, list[2].Name})

	require.NoError(t, bp.DeleteCommitment("alpha"))
	require.NoError(t, bp.DeleteCommitment("alpha"))

	list, err = bp.ListCommitments()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestBadgerPersistence_SurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	bp := newTestPersistence(t, dir)
	require.NoError(t, bp.SaveCommitment(newTestCommitment("durable")))
	require.NoError(t, bp.Close())

	reopened := newTestPersistence(t, dir)
	defer func() { _ = reopened.Close() }()

	loaded, err := reopened.LoadCommitment("durable")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "durable", loaded.Name)
}

func TestBadgerPersistence_Closed(t *testing.T) {
	bp := newTestPersistence(t, t.TempDir())
	require.NoError(t, bp.HealthCheck())
	require.NoError(t, bp.Close())
	require.NoError(t, bp.Close())

	require.Error(t, bp.HealthCheck())
	require.Error(t, bp.SaveCommitment(newTestCommitment("x")))
	_, err := bp.LoadCommitment("x")
	require.Error(t, err)
}

func TestBadgerPersistence_ConcurrentAccess(t *testing.T) {
	bp := newTestPersistence(t, t.TempDir())
	defer func() { _ = bp.Close() }()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, bp.SaveCommitment(newTestCommitment(fmt.Sprintf("list-%d", i))))
		}(i)
	}
	wg.Wait()

	list, err := bp.ListCommitments()
	require.NoError(t, err)
	assert.Len(t, list, 10)
}
