package testutil

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/types"
)

// TutorialAddresses is the four-account allowlist with a known root and proof.
var TutorialAddresses = []string{
	"0x5B38Da6a701c568545dCfcB03FcB875f56beddC4",
	"0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2",
	"0x4B20993Bc481177ec7E8f571ceCaE8A9e22C02db",
	"0x78731D3Ca6b7E34aC0F824c42a7cC18A495cabaB",
}

// TutorialRoot is the sorted-pair keccak256 root of TutorialAddresses.
const TutorialRoot = "0xeeefd63003e0e702cb41cd0043015a6e26ddb38073cc6ffeb0ba3e808ba8c097"

// CreateTestAddresses returns n fresh random addresses
func CreateTestAddresses(t *testing.T, n int) []common.Address {
	t.Helper()
	addresses := make([]common.Address, n)
	for i := range addresses {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)
		addresses[i] = crypto.PubkeyToAddress(key.PublicKey)
	}
	return addresses
}

// CreateTestCommitment returns a populated commitment for persistence tests
func CreateTestCommitment(name string) *types.Commitment {
	addresses := make([]common.Address, len(TutorialAddresses))
	for i, a := range TutorialAddresses {
		addresses[i] = common.HexToAddress(a)
	}
	return &types.Commitment{
		ID:           "test-" + name,
		Name:         name,
		Root:         common.HexToHash(TutorialRoot),
		Hasher:       "keccak256",
		Policy:       "sorted",
		LeafEncoding: "single",
		Addresses:    addresses,
		CreatedAt:    1700000000,
	}
}

// SimulatedChain is an in-process chain that mines a block for every sent transaction.
type SimulatedChain struct {
	Backend    *simulated.Backend
	Client     *AutoMiningClient
	PrivateKey *ecdsa.PrivateKey
	Address    common.Address
}

// AutoMiningClient commits a block after each SendTransaction so receipts are
// available to callers waiting on them.
type AutoMiningClient struct {
	simulated.Client
	backend *simulated.Backend
}

func (c *AutoMiningClient) SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error {
	if err := c.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.backend.Commit()
	return nil
}

// PrivateKeyHex returns the funded account's key as 0x-prefixed hex
func (s *SimulatedChain) PrivateKeyHex() string {
	return hexutil.Encode(crypto.FromECDSA(s.PrivateKey))
}

// NewSimulatedChain starts a simulated backend with one funded account.
// The backend is closed when the test ends.
func NewSimulatedChain(t *testing.T) *SimulatedChain {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey)

	balance := new(big.Int).Mul(big.NewInt(1000), big.NewInt(1e18))
	backend := simulated.NewBackend(ethtypes.GenesisAlloc{
		address: {Balance: balance},
	})
	t.Cleanup(func() { _ = backend.Close() })

	return &SimulatedChain{
		Backend:    backend,
		Client:     &AutoMiningClient{Client: backend.Client(), backend: backend},
		PrivateKey: key,
		Address:    address,
	}
}
