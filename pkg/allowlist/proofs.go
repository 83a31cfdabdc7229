package allowlist

import (
	"context"
	"fmt"
	"runtime"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/merkle"
)

// ProofEntry is the JSON form of one address's proof.
type ProofEntry struct {
	Address       common.Address `json:"address"`
	Index         int            `json:"index"`
	Leaf          common.Hash    `json:"leaf"`
	Proof         []string       `json:"proof"`
	SiblingOnLeft []bool         `json:"siblingOnLeft,omitempty"`
}

// ProofSet is every proof for an allowlist, suitable for handing out to claimants.
type ProofSet struct {
	Root         common.Hash  `json:"root"`
	Hasher       string       `json:"hasher"`
	Policy       string       `json:"policy"`
	LeafEncoding string       `json:"leafEncoding"`
	Entries      []ProofEntry `json:"entries"`
}

// NewProofEntry pairs an address with its proof.
func NewProofEntry(addr common.Address, proof *merkle.MerkleProof) ProofEntry {
	return ProofEntry{
		Address:       addr,
		Index:         proof.LeafIndex,
		Leaf:          proof.Leaf,
		Proof:         proof.HexProof(),
		SiblingOnLeft: proof.SiblingOnLeft,
	}
}

// MerkleProof decodes the entry back into a proof, validating element widths.
func (e *ProofEntry) MerkleProof() (*merkle.MerkleProof, error) {
	siblings, err := merkle.ParseHexProof(e.Proof)
	if err != nil {
		return nil, err
	}
	return &merkle.MerkleProof{
		LeafIndex:     e.Index,
		Leaf:          e.Leaf,
		Proof:         siblings,
		SiblingOnLeft: e.SiblingOnLeft,
	}, nil
}

// ProofSet generates the proof of every address in list order.
func (a *Allowlist) ProofSet() (*ProofSet, error) {
	proofs, err := a.tree.GenerateAllProofs()
	if err != nil {
		return nil, err
	}

	entries := make([]ProofEntry, len(proofs))
	for i, proof := range proofs {
		entries[i] = NewProofEntry(a.addresses[i], proof)
	}

	return &ProofSet{
		Root:         a.Root(),
		Hasher:       a.config.Hasher,
		Policy:       a.config.Policy.String(),
		LeafEncoding: a.config.LeafEncoding.String(),
		Entries:      entries,
	}, nil
}

// Claim is an address asserting membership with a proof.
type Claim struct {
	Address common.Address
	Proof   *merkle.MerkleProof
}

// VerifyBatch verifies claims against root on up to workers goroutines.
// results[i] is the outcome of claims[i]. A malformed proof fails the whole batch.
// workers <= 0 means one per CPU.
func VerifyBatch(ctx context.Context, claims []Claim, root common.Hash, cfg *Config, workers int) ([]bool, error) {
	treeConfig, err := resolveConfig(cfg).TreeConfig()
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]bool, len(claims))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range claims {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			valid, err := merkle.VerifyProof(claims[i].Address.Bytes(), claims[i].Proof, root, treeConfig)
			if err != nil {
				return fmt.Errorf("claim %d (%s): %w", i, claims[i].Address.Hex(), err)
			}
			results[i] = valid
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
