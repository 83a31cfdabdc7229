package persistence

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/types"
)

func TestMarshalUnmarshalCommitment_RoundTrip(t *testing.T) {
	contract := common.HexToAddress("0x5FaDd81F71aCD217F106d8Bd78312ccD1A72aa9F")
	original := &types.Commitment{
		ID:              "2f1b6a52-8d6c-4a57-9c1e-1d5a3e0f9b21",
		Name:            "genesis-mint",
		Root:            common.HexToHash("0xeeefd63003e0e702cb41cd0043015a6e26ddb38073cc6ffeb0ba3e808ba8c097"),
		Hasher:          "keccak256",
		Policy:          "sorted",
		LeafEncoding:    "single",
		Addresses:       []common.Address{common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")},
		ContractAddress: &contract,
		CreatedAt:       1700000000,
	}

	data, err := MarshalCommitment(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"root":"0xeeefd63003e0e702cb41cd0043015a6e26ddb38073cc6ffeb0ba3e808ba8c097"`)
	assert.NotContains(t, string(data), "publishTxHash")

	restored, err := UnmarshalCommitment(data)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestMarshalCommitment_Nil(t *testing.T) {
	_, err := MarshalCommitment(nil)
	require.Error(t, err)
}

func TestUnmarshalCommitment_Invalid(t *testing.T) {
	_, err := UnmarshalCommitment(nil)
	require.Error(t, err)

	_, err = UnmarshalCommitment([]byte("{not json"))
	require.Error(t, err)
}

func TestValidateCommitment(t *testing.T) {
	require.Error(t, ValidateCommitment(nil))
	require.Error(t, ValidateCommitment(&types.Commitment{}))
	require.NoError(t, ValidateCommitment(&types.Commitment{Name: "a"}))
}
