package caller

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/merkle"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/middleware-bindings/MerkleWhitelist"
)

var (
	// ErrNoSigner is returned by write operations on a read-only caller.
	ErrNoSigner = errors.New("contract caller has no transaction signer")

	// ErrRootNotSet is returned when isWhitelist is called before setRoot.
	ErrRootNotSet = errors.New("merkle root is not set on the whitelist contract")
)

// rootNotSetReason is the revert string of isWhitelist on an empty root
const rootNotSetReason = "Root Hash is not set"

// DeployMerkleWhitelist deploys a new whitelist contract and returns its address
func (cc *ContractCaller) DeployMerkleWhitelist(ctx context.Context) (common.Address, *types.Receipt, error) {
	txOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return common.Address{}, nil, errors.Wrap(err, "failed to build transaction options")
	}

	_, tx, _, err := MerkleWhitelist.DeployMerkleWhitelist(txOpts, cc.backend)
	if err != nil {
		return common.Address{}, nil, errors.Wrap(err, "failed to create deployment transaction")
	}

	receipt, err := cc.signAndSendTransaction(ctx, tx, "DeployMerkleWhitelist")
	if err != nil {
		return common.Address{}, nil, err
	}

	cc.logger.Sugar().Infow("Deployed whitelist contract",
		"address", receipt.ContractAddress.Hex(),
		"txHash", receipt.TxHash.Hex(),
	)
	return receipt.ContractAddress, receipt, nil
}

// SetMerkleRoot publishes root to the whitelist contract with setRoot(bytes32)
func (cc *ContractCaller) SetMerkleRoot(ctx context.Context, contractAddress common.Address, root common.Hash) (*types.Receipt, error) {
	whitelist, err := MerkleWhitelist.NewMerkleWhitelistTransactor(contractAddress, cc.backend)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create whitelist transactor")
	}

	txOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build transaction options")
	}

	tx, err := whitelist.SetRoot(txOpts, root)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create setRoot transaction")
	}

	cc.logger.Sugar().Infow("Publishing merkle root",
		"contract", contractAddress.Hex(),
		"root", root.Hex(),
	)

	return cc.signAndSendTransaction(ctx, tx, "SetMerkleRoot")
}

// GetMerkleRoot reads merkleRoot() from the whitelist contract
func (cc *ContractCaller) GetMerkleRoot(ctx context.Context, contractAddress common.Address) (common.Hash, error) {
	whitelist, err := MerkleWhitelist.NewMerkleWhitelistCaller(contractAddress, cc.backend)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to create whitelist caller")
	}

	if err := cc.wait(ctx); err != nil {
		return common.Hash{}, err
	}
	root, err := whitelist.MerkleRoot(&bind.CallOpts{Context: ctx})
	if err != nil {
		return common.Hash{}, errors.Wrapf(err, "failed to read merkle root from %s", contractAddress.Hex())
	}
	return root, nil
}

// IsWhitelisted asks the contract whether account is proven by proof under its stored root.
// The contract hashes pairs in sorted order, so proof must come from a sorted tree.
func (cc *ContractCaller) IsWhitelisted(
	ctx context.Context,
	contractAddress common.Address,
	account common.Address,
	proof *merkle.MerkleProof,
) (bool, error) {
	if proof == nil {
		return false, merkle.ErrInvalidProof
	}

	whitelist, err := MerkleWhitelist.NewMerkleWhitelistCaller(contractAddress, cc.backend)
	if err != nil {
		return false, errors.Wrap(err, "failed to create whitelist caller")
	}

	if err := cc.wait(ctx); err != nil {
		return false, err
	}
	ok, err := whitelist.IsWhitelist(&bind.CallOpts{Context: ctx}, account, proof.Bytes32Proof())
	if err != nil {
		if strings.Contains(err.Error(), rootNotSetReason) {
			return false, errors.Wrapf(ErrRootNotSet, "contract %s", contractAddress.Hex())
		}
		return false, errors.Wrapf(err, "isWhitelist(%s) failed", account.Hex())
	}
	return ok, nil
}
