package allowlist

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/merkle"
)

var tutorialAddresses = []string{
	"0x5B38Da6a701c568545dCfcB03FcB875f56beddC4",
	"0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2",
	"0x4B20993Bc481177ec7E8f571ceCaE8A9e22C02db",
	"0x78731D3Ca6b7E34aC0F824c42a7cC18A495cabaB",
}

const tutorialRoot = "0xeeefd63003e0e702cb41cd0043015a6e26ddb38073cc6ffeb0ba3e808ba8c097"

func tutorialAllowlist(t *testing.T) (*Allowlist, []common.Address) {
	t.Helper()
	addresses, err := ParseAddresses(tutorialAddresses)
	require.NoError(t, err)
	al, err := NewAllowlist(addresses, nil)
	require.NoError(t, err)
	return al, addresses
}

func randomAddress(t *testing.T) common.Address {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return crypto.PubkeyToAddress(key.PublicKey)
}

func TestNewAllowlist_TutorialRoot(t *testing.T) {
	al, addresses := tutorialAllowlist(t)

	assert.Equal(t, tutorialRoot, al.HexRoot())
	assert.Equal(t, 4, al.Len())
	assert.Equal(t, crypto.Keccak256Hash(addresses[0].Bytes()), al.Tree().Leaves[0])

	hexProof, err := al.HexProof(addresses[0])
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0x999bf57501565dbd2fdcea36efa2b9aef8340a8901e3459f4a4c926275d36cdb",
		"0x4726e4102af77216b09ccd94f40daa10531c87c4d60bba7f3b3faf5ff9f19b3c",
	}, hexProof)
}

func TestNewAllowlist_Empty(t *testing.T) {
	al, err := NewAllowlist(nil, nil)
	require.ErrorIs(t, err, merkle.ErrInvalidInput)
	require.Nil(t, al)
}

func TestNewAllowlist_UnknownHasher(t *testing.T) {
	_, err := NewAllowlist([]common.Address{{1}}, &Config{Hasher: "md4"})
	require.Error(t, err)
}

func TestConfig_ContractCompatible(t *testing.T) {
	require.NoError(t, DefaultConfig().ContractCompatible())
	require.NoError(t, (*Config)(nil).ContractCompatible())
	require.Error(t, (&Config{Hasher: merkle.HasherSHA3_256}).ContractCompatible())
	require.Error(t, (&Config{Policy: merkle.PolicyPositional}).ContractCompatible())
	require.Error(t, (&Config{LeafEncoding: merkle.LeafEncodingDouble}).ContractCompatible())
}

func TestAllowlist_Membership(t *testing.T) {
	al, addresses := tutorialAllowlist(t)

	for _, addr := range addresses {
		proof, err := al.ProofFor(addr)
		require.NoError(t, err)

		ok, err := al.Contains(addr, proof)
		require.NoError(t, err)
		assert.True(t, ok, "address %s should be a member", addr.Hex())

		ok, err = VerifyAddress(addr, proof, al.Root(), nil)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	// A stranger borrowing someone else's proof
	proof, err := al.ProofFor(addresses[0])
	require.NoError(t, err)
	ok, err := VerifyAddress(randomAddress(t), proof, al.Root(), nil)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = al.ProofFor(randomAddress(t))
	require.ErrorIs(t, err, merkle.ErrLeafNotFound)
}

func TestAllowlist_DuplicateAddress(t *testing.T) {
	a, b := randomAddress(t), randomAddress(t)
	al, err := NewAllowlist([]common.Address{a, b, a}, nil)
	require.NoError(t, err)

	_, err = al.ProofFor(a)
	require.ErrorIs(t, err, merkle.ErrLeafNotFound)
	require.ErrorIs(t, err, merkle.ErrDuplicateLeaf)

	assert.Equal(t, 0, al.IndexOf(a))
	assert.Equal(t, 1, al.IndexOf(b))
	assert.Equal(t, -1, al.IndexOf(randomAddress(t)))

	first, err := al.MemberProof(a)
	require.NoError(t, err)
	assert.Equal(t, 0, first.LeafIndex)
	ok, err := VerifyAddress(a, first, al.Root(), nil)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = al.MemberProof(randomAddress(t))
	require.ErrorIs(t, err, merkle.ErrLeafNotFound)
	require.NotErrorIs(t, err, merkle.ErrDuplicateLeaf)

	proof, err := al.ProofAt(2)
	require.NoError(t, err)
	ok, err = al.Contains(a, proof)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAllowlist_CommitmentRoundTrip(t *testing.T) {
	al, addresses := tutorialAllowlist(t)

	c := al.Commitment("genesis-mint")
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "genesis-mint", c.Name)
	assert.Equal(t, al.Root(), c.Root)
	assert.Equal(t, addresses, c.Addresses)
	assert.Equal(t, "sorted", c.Policy)

	rebuilt, err := FromCommitment(c)
	require.NoError(t, err)
	assert.Equal(t, al.Root(), rebuilt.Root())

	c.Root = common.Hash{1}
	_, err = FromCommitment(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root mismatch")
}

func TestAllowlist_ProofSet(t *testing.T) {
	for _, policy := range []merkle.Policy{merkle.PolicySorted, merkle.PolicyPositional} {
		t.Run(policy.String(), func(t *testing.T) {
			addresses := make([]common.Address, 7)
			for i := range addresses {
				addresses[i] = randomAddress(t)
			}
			cfg := &Config{Policy: policy}
			al, err := NewAllowlist(addresses, cfg)
			require.NoError(t, err)

			set, err := al.ProofSet()
			require.NoError(t, err)
			require.Len(t, set.Entries, len(addresses))

			// Round trip through JSON like a distributed proof file
			data, err := json.Marshal(set)
			require.NoError(t, err)
			var decoded ProofSet
			require.NoError(t, json.Unmarshal(data, &decoded))
			require.Equal(t, al.Root(), decoded.Root)

			for i, entry := range decoded.Entries {
				require.Equal(t, addresses[i], entry.Address)
				proof, err := entry.MerkleProof()
				require.NoError(t, err)
				ok, err := VerifyAddress(entry.Address, proof, decoded.Root, cfg)
				require.NoError(t, err)
				assert.True(t, ok)
			}
		})
	}
}

func TestProofEntry_MalformedProof(t *testing.T) {
	entry := ProofEntry{Proof: []string{"0xdeadbeef"}}
	_, err := entry.MerkleProof()
	require.ErrorIs(t, err, merkle.ErrInvalidProof)
}

func TestVerifyBatch(t *testing.T) {
	al, addresses := tutorialAllowlist(t)

	claims := make([]Claim, 0, len(addresses)+1)
	for _, addr := range addresses {
		proof, err := al.ProofFor(addr)
		require.NoError(t, err)
		claims = append(claims, Claim{Address: addr, Proof: proof})
	}
	claims = append(claims, Claim{Address: randomAddress(t), Proof: claims[0].Proof})

	results, err := VerifyBatch(context.Background(), claims, al.Root(), nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, true, false}, results)

	claims = append(claims, Claim{Address: addresses[0], Proof: nil})
	_, err = VerifyBatch(context.Background(), claims, al.Root(), nil, 0)
	require.ErrorIs(t, err, merkle.ErrInvalidProof)
}

func TestParseAddresses(t *testing.T) {
	addresses, err := ParseAddresses([]string{" 0x5B38Da6a701c568545dCfcB03FcB875f56beddC4 "})
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(tutorialAddresses[0]), addresses[0])

	_, err = ParseAddresses([]string{"0x1234"})
	require.ErrorIs(t, err, merkle.ErrInvalidInput)
}

func TestLoadAddresses(t *testing.T) {
	dir := t.TempDir()

	t.Run("JSON array", func(t *testing.T) {
		path := filepath.Join(dir, "list.json")
		data, err := json.Marshal(tutorialAddresses)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o600))

		addresses, err := LoadAddresses(path)
		require.NoError(t, err)
		require.Len(t, addresses, 4)
	})

	t.Run("Line separated", func(t *testing.T) {
		path := filepath.Join(dir, "list.txt")
		content := "# mint allowlist\n" + tutorialAddresses[0] + "\n\n" + tutorialAddresses[1] + "\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		addresses, err := LoadAddresses(path)
		require.NoError(t, err)
		require.Equal(t, []common.Address{
			common.HexToAddress(tutorialAddresses[0]),
			common.HexToAddress(tutorialAddresses[1]),
		}, addresses)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadAddresses(filepath.Join(dir, "nope.txt"))
		require.Error(t, err)
	})
}
