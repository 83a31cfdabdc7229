package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/allowlist"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/merkle"
)

func writeJSON(c *cli.Context, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(data))
	return err
}

func buildCommand(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.close()

	addresses, err := allowlist.LoadAddresses(c.String("input"))
	if err != nil {
		return err
	}
	settings, err := env.cfg.AllowlistSettings()
	if err != nil {
		return err
	}
	al, err := allowlist.NewAllowlist(addresses, settings)
	if err != nil {
		return err
	}

	env.logger.Sugar().Infow("Built allowlist",
		"addresses", al.Len(),
		"depth", al.Tree().Depth(),
		"root", al.HexRoot(),
	)

	if name := c.String("name"); name != "" {
		commitment := al.Commitment(name)
		if err := env.store.SaveCommitment(commitment); err != nil {
			return fmt.Errorf("failed to save commitment: %w", err)
		}
		env.logger.Sugar().Infow("Saved commitment", "name", name, "id", commitment.ID)
	}

	if output := c.String("output"); output != "" {
		set, err := al.ProofSet()
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write proofs to %s: %w", output, err)
		}
		env.logger.Sugar().Infow("Wrote proofs", "path", output, "entries", len(set.Entries))
	}

	_, err = fmt.Fprintln(c.App.Writer, al.HexRoot())
	return err
}

func proofCommand(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.close()

	al, _, err := env.loadAllowlist(c)
	if err != nil {
		return err
	}

	var (
		addr  common.Address
		proof *merkle.MerkleProof
	)
	if index := c.Int("index"); index >= 0 {
		proof, err = al.ProofAt(index)
		if err != nil {
			return err
		}
		addr = al.Addresses()[index]
	} else {
		raw := c.String("address")
		if !common.IsHexAddress(raw) {
			return fmt.Errorf("--address must be a valid address or --index must be set")
		}
		addr = common.HexToAddress(raw)
		proof, err = al.ProofFor(addr)
		if err != nil {
			return err
		}
	}

	return writeJSON(c, allowlist.NewProofEntry(addr, proof))
}

func verifyCommand(c *cli.Context) error {
	cfg := parseAllowlistConfig(c)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	settings, err := cfg.AllowlistSettings()
	if err != nil {
		return err
	}

	if path := c.String("proof-set"); path != "" {
		return verifyProofSet(c, path)
	}

	if c.String("root") == "" {
		return fmt.Errorf("--root is required unless --proof-set is given")
	}
	root, err := merkle.ParseHexDigest(c.String("root"))
	if err != nil {
		return err
	}

	var (
		addr  common.Address
		proof *merkle.MerkleProof
	)
	if path := c.String("proof-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read proof file: %w", err)
		}
		var entry allowlist.ProofEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return errors.Wrap(merkle.ErrInvalidProof, err.Error())
		}
		if proof, err = entry.MerkleProof(); err != nil {
			return err
		}
		addr = entry.Address
	} else {
		if proof, err = parseProofFlag(c.StringSlice("proof"), c.StringSlice("sibling-on-left")); err != nil {
			return err
		}
	}
	if raw := c.String("address"); raw != "" {
		if !common.IsHexAddress(raw) {
			return errors.Wrapf(merkle.ErrInvalidInput, "invalid address %q", raw)
		}
		addr = common.HexToAddress(raw)
	}
	if addr == (common.Address{}) {
		return fmt.Errorf("--address is required unless the proof file names one")
	}

	valid, err := allowlist.VerifyAddress(addr, proof, root, settings)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(c.App.Writer, valid); err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("proof for %s does not verify against root %s", addr.Hex(), root.Hex())
	}
	return nil
}

// parseProofFlag builds a proof from --proof values and, for positional
// proofs, the matching --sibling-on-left values.
func parseProofFlag(values, sides []string) (*merkle.MerkleProof, error) {
	siblings, err := merkle.ParseHexProof(values)
	if err != nil {
		return nil, err
	}
	proof := &merkle.MerkleProof{Proof: siblings}
	for i, raw := range sides {
		onLeft, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.Wrapf(merkle.ErrInvalidProof, "side flag %d: %q is not a boolean", i, raw)
		}
		proof.SiblingOnLeft = append(proof.SiblingOnLeft, onLeft)
	}
	return proof, nil
}

type proofSetResult struct {
	Address common.Address `json:"address"`
	Index   int            `json:"index"`
	Valid   bool           `json:"valid"`
}

// verifyProofSet checks every entry of a file written by build --output,
// under the hashing rules recorded in the file. --root overrides the file's root.
func verifyProofSet(c *cli.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read proof set: %w", err)
	}
	var set allowlist.ProofSet
	if err := json.Unmarshal(data, &set); err != nil {
		return errors.Wrap(merkle.ErrInvalidProof, err.Error())
	}

	root := set.Root
	if raw := c.String("root"); raw != "" {
		if root, err = merkle.ParseHexDigest(raw); err != nil {
			return err
		}
	}

	claims := make([]allowlist.Claim, len(set.Entries))
	for i := range set.Entries {
		proof, err := set.Entries[i].MerkleProof()
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		claims[i] = allowlist.Claim{Address: set.Entries[i].Address, Proof: proof}
	}

	settings := &allowlist.Config{
		Hasher:       set.Hasher,
		Policy:       merkle.Policy(set.Policy),
		LeafEncoding: merkle.LeafEncoding(set.LeafEncoding),
	}
	valid, err := allowlist.VerifyBatch(c.Context, claims, root, settings, 0)
	if err != nil {
		return err
	}

	results := make([]proofSetResult, len(valid))
	failed := 0
	for i, ok := range valid {
		results[i] = proofSetResult{Address: claims[i].Address, Index: set.Entries[i].Index, Valid: ok}
		if !ok {
			failed++
		}
	}
	if err := writeJSON(c, results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d proofs do not verify against root %s", failed, len(results), root.Hex())
	}
	return nil
}

func treeCommand(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.close()

	al, _, err := env.loadAllowlist(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(c.App.Writer, al.Tree().String())
	return err
}

func listCommand(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.close()

	commitments, err := env.store.ListCommitments()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tROOT\tADDRESSES\tPOLICY\tCONTRACT")
	for _, commitment := range commitments {
		contract := "-"
		if commitment.ContractAddress != nil {
			contract = commitment.ContractAddress.Hex()
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			commitment.Name, commitment.Root.Hex(), len(commitment.Addresses), commitment.Policy, contract)
	}
	return w.Flush()
}

func deleteCommand(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.close()

	return env.store.DeleteCommitment(c.String("name"))
}

func deployCommand(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.close()

	cc, err := env.chainCaller(c.Context, false, true)
	if err != nil {
		return err
	}
	address, _, err := cc.DeployMerkleWhitelist(c.Context)
	if err != nil {
		return fmt.Errorf("deployment failed: %w", err)
	}
	_, err = fmt.Fprintln(c.App.Writer, address.Hex())
	return err
}

func publishCommand(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.close()

	al, commitment, err := env.loadAllowlist(c)
	if err != nil {
		return err
	}
	settings := al.Config()
	if err := settings.ContractCompatible(); err != nil {
		return fmt.Errorf("root cannot be checked on chain: %w", err)
	}

	cc, err := env.chainCaller(c.Context, true, true)
	if err != nil {
		return err
	}
	contractAddress := env.cfg.GetContractAddress()
	receipt, err := cc.SetMerkleRoot(c.Context, contractAddress, al.Root())
	if err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}

	if commitment != nil {
		txHash := receipt.TxHash
		commitment.ContractAddress = &contractAddress
		commitment.PublishTxHash = &txHash
		if err := env.store.SaveCommitment(commitment); err != nil {
			return fmt.Errorf("root published but commitment update failed: %w", err)
		}
	}

	env.logger.Sugar().Infow("Published merkle root",
		"contract", contractAddress.Hex(),
		"root", al.HexRoot(),
		"txHash", receipt.TxHash.Hex(),
	)
	_, err = fmt.Fprintln(c.App.Writer, receipt.TxHash.Hex())
	return err
}

func checkCommand(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.close()

	raw := c.String("address")
	if !common.IsHexAddress(raw) {
		return errors.Wrapf(merkle.ErrInvalidInput, "invalid address %q", raw)
	}
	addr := common.HexToAddress(raw)

	al, _, err := env.loadAllowlist(c)
	if err != nil {
		return err
	}

	proof, err := al.MemberProof(addr)
	if errors.Is(err, merkle.ErrLeafNotFound) {
		// Not in the local list; an empty proof lets the contract answer
		proof = &merkle.MerkleProof{LeafIndex: -1, Proof: []merkle.Digest{}}
	} else if err != nil {
		return err
	}

	cc, err := env.chainCaller(c.Context, true, false)
	if err != nil {
		return err
	}
	ok, err := cc.IsWhitelisted(c.Context, env.cfg.GetContractAddress(), addr, proof)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, ok)
	return err
}

func rootCommand(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.close()

	cc, err := env.chainCaller(c.Context, true, false)
	if err != nil {
		return err
	}
	root, err := cc.GetMerkleRoot(c.Context, env.cfg.GetContractAddress())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, root.Hex())
	return err
}
