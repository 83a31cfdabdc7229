package merkle

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned for an empty or nil leaf list, or a value that
	// cannot be encoded as a leaf.
	ErrInvalidInput = errors.New("invalid merkle input")

	// ErrLeafNotFound is returned when a proof is requested for an index or leaf
	// that is not in the tree, or for a leaf that appears more than once.
	ErrLeafNotFound = errors.New("leaf not found")

	// ErrDuplicateLeaf is returned when a leaf lookup matches several indexes.
	// It wraps ErrLeafNotFound; any of the indexes yields a valid proof.
	ErrDuplicateLeaf = errors.Wrap(ErrLeafNotFound, "leaf appears more than once")

	// ErrInvalidProof is returned for a structurally malformed proof. A well formed
	// proof that does not reproduce the root is not an error.
	ErrInvalidProof = errors.New("invalid merkle proof")
)
