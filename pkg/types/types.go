package types

import (
	"github.com/ethereum/go-ethereum/common"
)

// Commitment is a named allow-list together with the merkle root it commits to
type Commitment struct {
	ID   string `json:"id"`   // Random identifier assigned when the commitment is built
	Name string `json:"name"` // Unique, human chosen key used for storage

	Root common.Hash `json:"root"`

	// Hashing rules the root was built with
	Hasher       string `json:"hasher"`
	Policy       string `json:"policy"`
	LeafEncoding string `json:"leafEncoding"`

	// Addresses in tree order
	Addresses []common.Address `json:"addresses"`

	// Set once the root has been published on chain
	ContractAddress *common.Address `json:"contractAddress,omitempty"`
	PublishTxHash   *common.Hash    `json:"publishTxHash,omitempty"`

	CreatedAt int64 `json:"createdAt"` // Unix seconds
}

// Copy returns a deep copy of the commitment
func (c *Commitment) Copy() *Commitment {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Addresses = append([]common.Address(nil), c.Addresses...)
	if c.ContractAddress != nil {
		addr := *c.ContractAddress
		cp.ContractAddress = &addr
	}
	if c.PublishTxHash != nil {
		hash := *c.PublishTxHash
		cp.PublishTxHash = &hash
	}
	return &cp
}
