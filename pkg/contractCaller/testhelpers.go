package contractCaller

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/contractCaller/caller"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/merkle"
)

// MockContractCaller keeps whitelist roots in memory and verifies proofs the
// way the contract does: keccak256 leaves and sorted pairs.
type MockContractCaller struct {
	mu       sync.Mutex
	roots    map[common.Address]common.Hash
	deployer common.Address
	nonce    uint64
	SetCalls int
}

var _ IContractCaller = (*MockContractCaller)(nil)

func NewMockContractCaller() *MockContractCaller {
	return &MockContractCaller{
		roots:    make(map[common.Address]common.Hash),
		deployer: common.HexToAddress("0x00000000000000000000000000000000000000d0"),
	}
}

func (m *MockContractCaller) DeployMerkleWhitelist(ctx context.Context) (common.Address, *ethTypes.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	addr := crypto.CreateAddress(m.deployer, m.nonce)
	m.nonce++
	m.roots[addr] = common.Hash{}

	return addr, m.receipt(addr), nil
}

func (m *MockContractCaller) SetMerkleRoot(ctx context.Context, contractAddress common.Address, root common.Hash) (*ethTypes.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.roots[contractAddress]; !ok {
		return nil, fmt.Errorf("no contract at %s", contractAddress.Hex())
	}
	m.roots[contractAddress] = root
	m.SetCalls++
	return m.receipt(contractAddress), nil
}

func (m *MockContractCaller) GetMerkleRoot(ctx context.Context, contractAddress common.Address) (common.Hash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	root, ok := m.roots[contractAddress]
	if !ok {
		return common.Hash{}, fmt.Errorf("no contract at %s", contractAddress.Hex())
	}
	return root, nil
}

func (m *MockContractCaller) IsWhitelisted(ctx context.Context, contractAddress common.Address, account common.Address, proof *merkle.MerkleProof) (bool, error) {
	root, err := m.GetMerkleRoot(ctx, contractAddress)
	if err != nil {
		return false, err
	}
	if root == (common.Hash{}) {
		return false, caller.ErrRootNotSet
	}
	return merkle.VerifyProof(account.Bytes(), proof, root, merkle.DefaultTreeConfig())
}

func (m *MockContractCaller) receipt(addr common.Address) *ethTypes.Receipt {
	return &ethTypes.Receipt{
		Status:          ethTypes.ReceiptStatusSuccessful,
		ContractAddress: addr,
		BlockNumber:     new(big.Int).SetUint64(m.nonce),
	}
}
