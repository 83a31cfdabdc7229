// Package allowlist commits to a set of account addresses with a merkle root
// that a whitelist contract can check membership against.
//
// Leaves are keccak256(address) by default, the same value a contract computes
// with keccak256(abi.encodePacked(account)), and pairs are sorted before hashing
// to match OpenZeppelin's MerkleProof.
package allowlist

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/merkle"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/types"
)

// Config names the hashing rules so they can be persisted next to a root.
type Config struct {
	Hasher       string
	Policy       merkle.Policy
	LeafEncoding merkle.LeafEncoding
}

// DefaultConfig matches the whitelist contract: keccak256, sorted pairs, single leaf hash.
func DefaultConfig() *Config {
	return &Config{
		Hasher:       merkle.HasherKeccak256,
		Policy:       merkle.PolicySorted,
		LeafEncoding: merkle.LeafEncodingSingle,
	}
}

// TreeConfig resolves the named hasher into a merkle.TreeConfig.
func (c *Config) TreeConfig() (*merkle.TreeConfig, error) {
	hasher, err := merkle.NewHasher(c.Hasher)
	if err != nil {
		return nil, err
	}
	return &merkle.TreeConfig{
		Hasher:       hasher,
		Policy:       c.Policy,
		LeafEncoding: c.LeafEncoding,
	}, nil
}

// ContractCompatible reports whether roots built with c can be checked by the
// whitelist contract, which hashes leaves once with keccak256 and sorts pairs.
func (c *Config) ContractCompatible() error {
	resolved := resolveConfig(c)
	if resolved.Hasher != merkle.HasherKeccak256 {
		return errors.Errorf("contract hashes with keccak256, allowlist uses %s", resolved.Hasher)
	}
	if resolved.Policy != merkle.PolicySorted {
		return errors.Errorf("contract sorts pairs, allowlist uses %s policy", resolved.Policy)
	}
	if resolved.LeafEncoding != merkle.LeafEncodingSingle {
		return errors.Errorf("contract hashes leaves once, allowlist uses %s encoding", resolved.LeafEncoding)
	}
	return nil
}

func resolveConfig(cfg *Config) *Config {
	resolved := DefaultConfig()
	if cfg == nil {
		return resolved
	}
	if cfg.Hasher != "" {
		resolved.Hasher = cfg.Hasher
	}
	if cfg.Policy != "" {
		resolved.Policy = cfg.Policy
	}
	if cfg.LeafEncoding != "" {
		resolved.LeafEncoding = cfg.LeafEncoding
	}
	return resolved
}

// Allowlist is an ordered address list and the merkle tree built over it.
type Allowlist struct {
	addresses []common.Address
	config    *Config
	tree      *merkle.MerkleTree
}

// NewAllowlist builds the tree over addresses in the order given.
func NewAllowlist(addresses []common.Address, cfg *Config) (*Allowlist, error) {
	cfg = resolveConfig(cfg)
	treeConfig, err := cfg.TreeConfig()
	if err != nil {
		return nil, err
	}

	values := make([][]byte, len(addresses))
	for i, addr := range addresses {
		values[i] = addr.Bytes()
	}

	tree, err := merkle.BuildMerkleTree(values, treeConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build allowlist tree: %w", err)
	}

	return &Allowlist{
		addresses: append([]common.Address(nil), addresses...),
		config:    cfg,
		tree:      tree,
	}, nil
}

// FromCommitment rebuilds the allowlist a commitment describes and checks its root.
func FromCommitment(c *types.Commitment) (*Allowlist, error) {
	if c == nil {
		return nil, fmt.Errorf("commitment cannot be nil")
	}
	al, err := NewAllowlist(c.Addresses, &Config{
		Hasher:       c.Hasher,
		Policy:       merkle.Policy(c.Policy),
		LeafEncoding: merkle.LeafEncoding(c.LeafEncoding),
	})
	if err != nil {
		return nil, err
	}
	if al.Root() != c.Root {
		return nil, fmt.Errorf("commitment %q root mismatch: stored %s, rebuilt %s", c.Name, c.Root.Hex(), al.Root().Hex())
	}
	return al, nil
}

// Commitment returns a new persistable record for this allowlist under name.
func (a *Allowlist) Commitment(name string) *types.Commitment {
	return &types.Commitment{
		ID:           uuid.New().String(),
		Name:         name,
		Root:         a.Root(),
		Hasher:       a.config.Hasher,
		Policy:       a.config.Policy.String(),
		LeafEncoding: a.config.LeafEncoding.String(),
		Addresses:    a.Addresses(),
		CreatedAt:    time.Now().Unix(),
	}
}

func (a *Allowlist) Root() common.Hash {
	return a.tree.Root
}

// HexRoot is the 0x-prefixed root, ready to pass to setRoot(bytes32).
func (a *Allowlist) HexRoot() string {
	return a.tree.Root.Hex()
}

func (a *Allowlist) Tree() *merkle.MerkleTree {
	return a.tree
}

func (a *Allowlist) Config() Config {
	return *a.config
}

func (a *Allowlist) Addresses() []common.Address {
	return append([]common.Address(nil), a.addresses...)
}

func (a *Allowlist) Len() int {
	return len(a.addresses)
}

// ProofFor returns the proof for addr. An address listed more than once
// must be proven with ProofAt.
func (a *Allowlist) ProofFor(addr common.Address) (*merkle.MerkleProof, error) {
	proof, err := a.tree.GenerateProofForValue(addr.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "address %s", addr.Hex())
	}
	return proof, nil
}

func (a *Allowlist) ProofAt(index int) (*merkle.MerkleProof, error) {
	return a.tree.GenerateProof(index)
}

// IndexOf returns the first position of addr in the list, or -1.
func (a *Allowlist) IndexOf(addr common.Address) int {
	for i, listed := range a.addresses {
		if listed == addr {
			return i
		}
	}
	return -1
}

// MemberProof is ProofFor, except an address listed more than once is proven
// at its first position.
func (a *Allowlist) MemberProof(addr common.Address) (*merkle.MerkleProof, error) {
	proof, err := a.ProofFor(addr)
	if errors.Is(err, merkle.ErrDuplicateLeaf) {
		return a.ProofAt(a.IndexOf(addr))
	}
	return proof, err
}

// HexProof returns the proof for addr as the bytes32[] hex list a contract call takes.
func (a *Allowlist) HexProof(addr common.Address) ([]string, error) {
	proof, err := a.ProofFor(addr)
	if err != nil {
		return nil, err
	}
	return proof.HexProof(), nil
}

// Contains verifies addr against this allowlist's root.
func (a *Allowlist) Contains(addr common.Address, proof *merkle.MerkleProof) (bool, error) {
	return a.tree.VerifyProof(addr.Bytes(), proof)
}

// VerifyAddress checks addr against a root without the list, as a contract would.
func VerifyAddress(addr common.Address, proof *merkle.MerkleProof, root common.Hash, cfg *Config) (bool, error) {
	treeConfig, err := resolveConfig(cfg).TreeConfig()
	if err != nil {
		return false, err
	}
	return merkle.VerifyProof(addr.Bytes(), proof, root, treeConfig)
}
