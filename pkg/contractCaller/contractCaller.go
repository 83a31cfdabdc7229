package contractCaller

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/contractCaller/caller"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/merkle"
)

// IContractCaller is the on-chain surface of the whitelist contract.
type IContractCaller interface {
	DeployMerkleWhitelist(ctx context.Context) (common.Address, *ethereumTypes.Receipt, error)

	SetMerkleRoot(ctx context.Context, contractAddress common.Address, root common.Hash) (*ethereumTypes.Receipt, error)

	GetMerkleRoot(ctx context.Context, contractAddress common.Address) (common.Hash, error)

	IsWhitelisted(
		ctx context.Context,
		contractAddress common.Address,
		account common.Address,
		proof *merkle.MerkleProof,
	) (bool, error)
}

var _ IContractCaller = (*caller.ContractCaller)(nil)
