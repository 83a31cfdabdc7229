package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/types"
)

// MarshalCommitment serializes a Commitment to JSON bytes.
func MarshalCommitment(c *types.Commitment) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("cannot marshal nil Commitment")
	}

	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Commitment to JSON: %w", err)
	}

	return data, nil
}

// UnmarshalCommitment deserializes a Commitment from JSON bytes.
func UnmarshalCommitment(data []byte) (*types.Commitment, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unmarshal empty data")
	}

	var c types.Commitment
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON to Commitment: %w", err)
	}

	return &c, nil
}

// ValidateCommitment checks the fields every backend relies on.
func ValidateCommitment(c *types.Commitment) error {
	if c == nil {
		return fmt.Errorf("cannot save nil Commitment")
	}
	if c.Name == "" {
		return fmt.Errorf("commitment name cannot be empty")
	}
	return nil
}
