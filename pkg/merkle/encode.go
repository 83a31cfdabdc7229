package merkle

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// ParseProof converts raw sibling elements into digests.
// Every element must be exactly DigestLength bytes.
func ParseProof(elements [][]byte) ([]Digest, error) {
	siblings := make([]Digest, len(elements))
	for i, e := range elements {
		if len(e) != DigestLength {
			return nil, errors.Wrapf(ErrInvalidProof, "proof element %d is %d bytes, expected %d", i, len(e), DigestLength)
		}
		siblings[i] = Digest(e)
	}
	return siblings, nil
}

// ParseHexProof decodes 0x-prefixed hex siblings, the bytes32[] form contracts accept.
func ParseHexProof(elements []string) ([]Digest, error) {
	raw := make([][]byte, len(elements))
	for i, e := range elements {
		b, err := hexutil.Decode(e)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidProof, "proof element %d: %v", i, err)
		}
		raw[i] = b
	}
	return ParseProof(raw)
}

// ParseHexDigest decodes a single 0x-prefixed digest such as a root.
func ParseHexDigest(s string) (Digest, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return Digest{}, errors.Wrapf(ErrInvalidInput, "digest %q: %v", s, err)
	}
	if len(b) != DigestLength {
		return Digest{}, errors.Wrapf(ErrInvalidInput, "digest is %d bytes, expected %d", len(b), DigestLength)
	}
	return Digest(b), nil
}

// HexProof renders the siblings as 0x-prefixed hex strings.
func (p *MerkleProof) HexProof() []string {
	out := make([]string, len(p.Proof))
	for i, s := range p.Proof {
		out[i] = s.Hex()
	}
	return out
}

// Bytes32Proof returns the siblings in the shape abigen bindings use for bytes32[].
func (p *MerkleProof) Bytes32Proof() [][32]byte {
	out := make([][32]byte, len(p.Proof))
	for i, s := range p.Proof {
		out[i] = s
	}
	return out
}
