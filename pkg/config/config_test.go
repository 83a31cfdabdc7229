package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/merkle"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/persistence"
)

const testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestAllowlistConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AllowlistConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *AllowlistConfig) {}},
		{name: "sha3 positional double", mutate: func(c *AllowlistConfig) {
			c.Hasher = merkle.HasherSHA3_256
			c.Policy = "positional"
			c.LeafEncoding = "double"
		}},
		{name: "unknown hasher", mutate: func(c *AllowlistConfig) { c.Hasher = "md5" }, wantErr: "hasher"},
		{name: "unknown policy", mutate: func(c *AllowlistConfig) { c.Policy = "random" }, wantErr: "policy"},
		{name: "unknown leaf encoding", mutate: func(c *AllowlistConfig) { c.LeafEncoding = "triple" }, wantErr: "leafEncoding"},
		{name: "badger without path", mutate: func(c *AllowlistConfig) {
			c.PersistenceType = persistence.TypeBadger
			c.DataPath = ""
		}, wantErr: "dataPath"},
		{name: "redis without address", mutate: func(c *AllowlistConfig) {
			c.PersistenceType = persistence.TypeRedis
		}, wantErr: "redisAddress"},
		{name: "redis bad db", mutate: func(c *AllowlistConfig) {
			c.PersistenceType = persistence.TypeRedis
			c.RedisAddress = "localhost:6379"
			c.RedisDB = 16
		}, wantErr: "redisDB"},
		{name: "unknown persistence", mutate: func(c *AllowlistConfig) { c.PersistenceType = "postgres" }, wantErr: "persistenceType"},
		{name: "negative rate limit", mutate: func(c *AllowlistConfig) { c.RPCRateLimit = -1 }, wantErr: "rpcRateLimit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultAllowlistConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAllowlistConfig_Validate_AccumulatesErrors(t *testing.T) {
	cfg := NewDefaultAllowlistConfig()
	cfg.Hasher = "md5"
	cfg.Policy = "random"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hasher")
	assert.Contains(t, err.Error(), "policy")
}

func TestAllowlistConfig_ValidateChain(t *testing.T) {
	cfg := NewDefaultAllowlistConfig()
	cfg.RpcUrl = "http://localhost:8545"

	require.NoError(t, cfg.ValidateChain(false, false))
	assert.Equal(t, ChainName_EthereumAnvil, cfg.ChainName)

	err := cfg.ValidateChain(true, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contractAddress")
	assert.Contains(t, err.Error(), "privateKey")

	cfg.ContractAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	cfg.PrivateKey = testPrivateKey
	require.NoError(t, cfg.ValidateChain(true, true))

	cfg.PrivateKey = "0x1234"
	err = cfg.ValidateChain(false, true)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "1234")

	cfg.PrivateKey = testPrivateKey
	cfg.ChainID = 42
	require.Error(t, cfg.ValidateChain(false, false))
}

func TestAllowlistConfig_TreeConfig(t *testing.T) {
	cfg := NewDefaultAllowlistConfig()
	treeConfig, err := cfg.TreeConfig()
	require.NoError(t, err)
	assert.Equal(t, merkle.PolicySorted, treeConfig.Policy)
	assert.Equal(t, merkle.LeafEncodingSingle, treeConfig.LeafEncoding)
	require.NotNil(t, treeConfig.Hasher)

	cfg.Policy = "bogus"
	_, err = cfg.TreeConfig()
	require.Error(t, err)
}

func TestChainIdTables(t *testing.T) {
	for _, id := range GetSupportedChainIDs() {
		name, ok := ChainIdToName[id]
		require.True(t, ok)
		assert.Equal(t, id, ChainNameToId[name])
	}
}
