package merkle

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/wealdtech/go-merkletree/v2/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hasher is a one-way hash producing DigestLength-byte outputs.
// Hash must treat its arguments as one concatenated message.
type Hasher interface {
	Hash(data ...[]byte) []byte
}

const (
	HasherKeccak256 = "keccak256"
	HasherSHA3_256  = "sha3-256"
	HasherBlake2b   = "blake2b"
)

// Keccak256Hasher is the EVM native hash.
type Keccak256Hasher struct{}

func NewKeccak256Hasher() *Keccak256Hasher {
	return &Keccak256Hasher{}
}

func (h *Keccak256Hasher) Hash(data ...[]byte) []byte {
	return crypto.Keccak256(data...)
}

// SHA3Hasher is the standardised (FIPS 202) SHA3-256, which pads differently from keccak256.
type SHA3Hasher struct{}

func NewSHA3Hasher() *SHA3Hasher {
	return &SHA3Hasher{}
}

func (h *SHA3Hasher) Hash(data ...[]byte) []byte {
	hasher := sha3.New256()
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

// NewHasher returns the hasher registered under name.
func NewHasher(name string) (Hasher, error) {
	switch name {
	case HasherKeccak256, "":
		return NewKeccak256Hasher(), nil
	case HasherSHA3_256:
		return NewSHA3Hasher(), nil
	case HasherBlake2b:
		return blake2b.New(), nil
	default:
		return nil, fmt.Errorf("unsupported hasher: %q", name)
	}
}

// SupportedHashers lists the names accepted by NewHasher.
func SupportedHashers() []string {
	return []string{HasherKeccak256, HasherSHA3_256, HasherBlake2b}
}

func digestOf(h Hasher, data ...[]byte) (Digest, error) {
	out := h.Hash(data...)
	if len(out) != DigestLength {
		return Digest{}, fmt.Errorf("hasher produced %d bytes, expected %d", len(out), DigestLength)
	}
	return Digest(out), nil
}
