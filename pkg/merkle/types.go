package merkle

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Digest is a fixed-width hash output. Leaves, internal nodes and roots are all digests.
type Digest = common.Hash

// DigestLength is the width in bytes of every digest in a tree.
const DigestLength = common.HashLength

// Policy decides the child order used when hashing a pair of digests.
type Policy string

const (
	// PolicySorted hashes the lexicographically smaller digest first: H(min(a,b) || max(a,b)).
	// Proofs need no left/right metadata. This is what OpenZeppelin's MerkleProof expects.
	PolicySorted Policy = "sorted"

	// PolicyPositional hashes in array order: H(a || b).
	// Proofs carry, per step, whether the sibling sits on the left.
	PolicyPositional Policy = "positional"
)

func (p Policy) String() string {
	return string(p)
}

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicySorted, PolicyPositional:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("unsupported merkle policy: %q", s)
	}
}

// LeafEncoding decides how a raw value becomes a leaf digest.
type LeafEncoding string

const (
	// LeafEncodingSingle hashes the value once: H(v). Compatible with
	// keccak256(abi.encodePacked(account)) leaves. Values exactly two digests
	// long are rejected since they could be confused with an internal node.
	LeafEncodingSingle LeafEncoding = "single"

	// LeafEncodingDouble hashes the value twice: H(H(v)). Accepts any payload.
	LeafEncodingDouble LeafEncoding = "double"
)

func (e LeafEncoding) String() string {
	return string(e)
}

func ParseLeafEncoding(s string) (LeafEncoding, error) {
	switch LeafEncoding(s) {
	case LeafEncodingSingle, LeafEncodingDouble:
		return LeafEncoding(s), nil
	default:
		return "", fmt.Errorf("unsupported leaf encoding: %q", s)
	}
}

// TreeConfig holds the hashing rules shared by construction and verification.
// A proof only verifies under the same config the tree was built with.
type TreeConfig struct {
	Hasher       Hasher
	Policy       Policy
	LeafEncoding LeafEncoding
}

// DefaultTreeConfig returns keccak256 with sorted pairs and single leaf hashing.
func DefaultTreeConfig() *TreeConfig {
	return &TreeConfig{
		Hasher:       NewKeccak256Hasher(),
		Policy:       PolicySorted,
		LeafEncoding: LeafEncodingSingle,
	}
}

// MerkleTree is an immutable binary merkle tree.
type MerkleTree struct {
	// Leaves contains the leaf digests in input order. It is a copy; proofs
	// and verification read the tree's own layers, so writes here are ignored.
	Leaves []Digest

	// Root is the merkle root. Same as Leaves, a copy of the stored value.
	Root Digest

	config *TreeConfig

	// layers stores all tree layers for proof generation
	// layers[0] = leaves, layers[len-1] = root
	layers [][]Digest
}

// MerkleProof represents a proof that a leaf is included in the tree.
type MerkleProof struct {
	// LeafIndex is the position of the leaf in the tree's input order
	LeafIndex int

	// Leaf is the digest of the leaf being proven
	Leaf Digest

	// Proof contains the sibling digests from leaf to root.
	// Layers where the node was an unpaired tail contribute nothing.
	Proof []Digest

	// SiblingOnLeft is only set under PolicyPositional; SiblingOnLeft[i]
	// reports whether Proof[i] is the left child of the pair.
	SiblingOnLeft []bool
}
