package merkle

import (
	"bytes"

	"github.com/pkg/errors"
)

// BuildMerkleTree creates a binary merkle tree from raw values, in the order given.
//
// Each value is hashed into a leaf according to cfg.LeafEncoding. Pairs are hashed
// according to cfg.Policy. If a layer has an odd number of nodes the last one is
// promoted unchanged to the next layer; it is never paired with itself.
// A nil cfg means DefaultTreeConfig().
func BuildMerkleTree(values [][]byte, cfg *TreeConfig) (*MerkleTree, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "cannot build merkle tree from empty value list")
	}

	leaves := make([]Digest, len(values))
	for i, v := range values {
		if v == nil {
			return nil, errors.Wrapf(ErrInvalidInput, "value at index %d is nil", i)
		}
		leaf, err := hashLeaf(v, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "value at index %d", i)
		}
		leaves[i] = leaf
	}

	return buildFromLeaves(leaves, cfg)
}

// BuildMerkleTreeFromLeaves creates a tree over leaf digests the caller already hashed.
func BuildMerkleTreeFromLeaves(leaves []Digest, cfg *TreeConfig) (*MerkleTree, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}
	if len(leaves) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "cannot build merkle tree from empty leaf list")
	}

	owned := make([]Digest, len(leaves))
	copy(owned, leaves)
	return buildFromLeaves(owned, cfg)
}

func buildFromLeaves(leaves []Digest, cfg *TreeConfig) (*MerkleTree, error) {
	layers := make([][]Digest, 0)
	layers = append(layers, leaves)

	currentLayer := leaves
	for len(currentLayer) > 1 {
		nextLayer := make([]Digest, 0, (len(currentLayer)+1)/2)

		for i := 0; i+1 < len(currentLayer); i += 2 {
			parent, err := hashPair(cfg, currentLayer[i], currentLayer[i+1])
			if err != nil {
				return nil, err
			}
			nextLayer = append(nextLayer, parent)
		}

		// Odd tail is promoted as is
		if len(currentLayer)%2 == 1 {
			nextLayer = append(nextLayer, currentLayer[len(currentLayer)-1])
		}

		layers = append(layers, nextLayer)
		currentLayer = nextLayer
	}

	exported := make([]Digest, len(leaves))
	copy(exported, leaves)

	return &MerkleTree{
		Leaves: exported,
		Root:   currentLayer[0],
		config: cfg,
		layers: layers,
	}, nil
}

// GenerateProof creates a merkle proof for the leaf at the given index.
// The proof consists of sibling digests along the path from leaf to root.
func (mt *MerkleTree) GenerateProof(leafIndex int) (*MerkleProof, error) {
	leaves := mt.layers[0]
	if leafIndex < 0 || leafIndex >= len(leaves) {
		return nil, errors.Wrapf(ErrLeafNotFound, "leaf index %d out of bounds (tree has %d leaves)", leafIndex, len(leaves))
	}

	positional := mt.config.Policy == PolicyPositional
	proof := &MerkleProof{
		LeafIndex: leafIndex,
		Leaf:      leaves[leafIndex],
		Proof:     make([]Digest, 0, len(mt.layers)-1),
	}
	if positional {
		proof.SiblingOnLeft = make([]bool, 0, len(mt.layers)-1)
	}

	index := leafIndex
	for layer := 0; layer < len(mt.layers)-1; layer++ {
		currentLayer := mt.layers[layer]

		// Unpaired tail, nothing to hash with at this layer
		if index == len(currentLayer)-1 && len(currentLayer)%2 == 1 {
			index = index / 2
			continue
		}

		proof.Proof = append(proof.Proof, currentLayer[index^1])
		if positional {
			proof.SiblingOnLeft = append(proof.SiblingOnLeft, index%2 == 1)
		}

		index = index / 2
	}

	return proof, nil
}

// GenerateProofForLeaf resolves a leaf digest to its index and creates its proof.
// Leaves that occur more than once must be proven by index.
func (mt *MerkleTree) GenerateProofForLeaf(leaf Digest) (*MerkleProof, error) {
	index := -1
	matches := 0
	for i, l := range mt.layers[0] {
		if l == leaf {
			index = i
			matches++
		}
	}

	switch {
	case matches == 0:
		return nil, errors.Wrapf(ErrLeafNotFound, "leaf %s is not in the tree", leaf.Hex())
	case matches > 1:
		return nil, errors.Wrapf(ErrDuplicateLeaf, "leaf %s appears %d times, request the proof by index", leaf.Hex(), matches)
	}

	return mt.GenerateProof(index)
}

// GenerateProofForValue hashes value with the tree's leaf encoding and creates its proof.
func (mt *MerkleTree) GenerateProofForValue(value []byte) (*MerkleProof, error) {
	leaf, err := hashLeaf(value, mt.config)
	if err != nil {
		return nil, err
	}
	return mt.GenerateProofForLeaf(leaf)
}

// GenerateAllProofs returns one proof per leaf, in leaf order.
func (mt *MerkleTree) GenerateAllProofs() ([]*MerkleProof, error) {
	proofs := make([]*MerkleProof, len(mt.layers[0]))
	for i := range proofs {
		proof, err := mt.GenerateProof(i)
		if err != nil {
			return nil, err
		}
		proofs[i] = proof
	}
	return proofs, nil
}

// VerifyProof checks a proof against this tree's root and hashing rules.
// Proofs with more steps than the tree is deep are rejected as malformed.
func (mt *MerkleTree) VerifyProof(value []byte, proof *MerkleProof) (bool, error) {
	if proof != nil && len(proof.Proof) > mt.Depth() {
		return false, errors.Wrapf(ErrInvalidProof, "proof has %d steps but tree depth is %d", len(proof.Proof), mt.Depth())
	}
	return VerifyProof(value, proof, mt.root(), mt.config)
}

func (mt *MerkleTree) root() Digest {
	return mt.layers[len(mt.layers)-1][0]
}

// Depth is the number of layers above the leaves.
func (mt *MerkleTree) Depth() int {
	return len(mt.layers) - 1
}

// Layers returns a copy of every layer, leaves first and root last.
func (mt *MerkleTree) Layers() [][]Digest {
	out := make([][]Digest, len(mt.layers))
	for i, layer := range mt.layers {
		out[i] = make([]Digest, len(layer))
		copy(out[i], layer)
	}
	return out
}

// Config returns the hashing rules the tree was built with.
func (mt *MerkleTree) Config() TreeConfig {
	return *mt.config
}

// VerifyProof verifies that value is included under root.
// The value is hashed with cfg.LeafEncoding exactly as during construction.
// A proof that does not reproduce the root returns false with no error.
func VerifyProof(value []byte, proof *MerkleProof, root Digest, cfg *TreeConfig) (bool, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return false, err
	}
	if value == nil {
		return false, errors.Wrap(ErrInvalidInput, "value is nil")
	}
	leaf, err := hashLeaf(value, cfg)
	if err != nil {
		return false, err
	}
	return VerifyLeaf(leaf, proof, root, cfg)
}

// VerifyLeaf verifies that an already hashed leaf is included under root.
// proof.Leaf is ignored; leaf is what gets recomputed.
func VerifyLeaf(leaf Digest, proof *MerkleProof, root Digest, cfg *TreeConfig) (bool, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return false, err
	}
	computed, err := computeRoot(leaf, proof, cfg)
	if err != nil {
		return false, err
	}
	return computed == root, nil
}

func computeRoot(leaf Digest, proof *MerkleProof, cfg *TreeConfig) (Digest, error) {
	if proof == nil {
		return Digest{}, errors.Wrap(ErrInvalidProof, "proof is nil")
	}
	positional := cfg.Policy == PolicyPositional
	if positional && len(proof.SiblingOnLeft) != len(proof.Proof) {
		return Digest{}, errors.Wrapf(ErrInvalidProof, "positional proof has %d siblings but %d side flags", len(proof.Proof), len(proof.SiblingOnLeft))
	}

	current := leaf
	for i, sibling := range proof.Proof {
		var err error
		if positional && proof.SiblingOnLeft[i] {
			current, err = hashPair(cfg, sibling, current)
		} else {
			current, err = hashPair(cfg, current, sibling)
		}
		if err != nil {
			return Digest{}, err
		}
	}
	return current, nil
}

// HashLeaf turns a raw value into a leaf digest under cfg.
func HashLeaf(value []byte, cfg *TreeConfig) (Digest, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return Digest{}, err
	}
	return hashLeaf(value, cfg)
}

func hashLeaf(value []byte, cfg *TreeConfig) (Digest, error) {
	switch cfg.LeafEncoding {
	case LeafEncodingDouble:
		inner, err := digestOf(cfg.Hasher, value)
		if err != nil {
			return Digest{}, err
		}
		return digestOf(cfg.Hasher, inner[:])
	default:
		// A 64 byte value hashes exactly like an internal node.
		if len(value) == 2*DigestLength {
			return Digest{}, errors.Wrapf(ErrInvalidInput, "value of %d bytes is indistinguishable from a node, use double leaf encoding", len(value))
		}
		return digestOf(cfg.Hasher, value)
	}
}

// hashPair computes H(left || right), ordering the two first under PolicySorted.
func hashPair(cfg *TreeConfig, left, right Digest) (Digest, error) {
	if cfg.Policy == PolicySorted && bytes.Compare(left[:], right[:]) > 0 {
		left, right = right, left
	}
	return digestOf(cfg.Hasher, left[:], right[:])
}

func resolveConfig(cfg *TreeConfig) (*TreeConfig, error) {
	resolved := DefaultTreeConfig()
	if cfg == nil {
		return resolved, nil
	}
	if cfg.Hasher != nil {
		resolved.Hasher = cfg.Hasher
	}
	if cfg.Policy != "" {
		if _, err := ParsePolicy(string(cfg.Policy)); err != nil {
			return nil, errors.Wrap(ErrInvalidInput, err.Error())
		}
		resolved.Policy = cfg.Policy
	}
	if cfg.LeafEncoding != "" {
		if _, err := ParseLeafEncoding(string(cfg.LeafEncoding)); err != nil {
			return nil, errors.Wrap(ErrInvalidInput, err.Error())
		}
		resolved.LeafEncoding = cfg.LeafEncoding
	}
	return resolved, nil
}
