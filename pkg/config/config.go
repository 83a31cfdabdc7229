package config

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/allowlist"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/merkle"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/persistence"
)

// Environment variable names for the allowlist CLI
const (
	EnvAllowlistRPCURL          = "ALLOWLIST_RPC_URL"
	EnvAllowlistChainID         = "ALLOWLIST_CHAIN_ID"
	EnvAllowlistContractAddress = "ALLOWLIST_CONTRACT_ADDRESS"
	EnvAllowlistPrivateKey      = "ALLOWLIST_PRIVATE_KEY"
	EnvAllowlistHasher          = "ALLOWLIST_HASHER"
	EnvAllowlistPolicy          = "ALLOWLIST_POLICY"
	EnvAllowlistLeafEncoding    = "ALLOWLIST_LEAF_ENCODING"
	EnvAllowlistPersistence     = "ALLOWLIST_PERSISTENCE"
	EnvAllowlistDataPath        = "ALLOWLIST_DATA_PATH"
	EnvAllowlistRedisAddress    = "ALLOWLIST_REDIS_ADDRESS"
	EnvAllowlistRedisPassword   = "ALLOWLIST_REDIS_PASSWORD"
	EnvAllowlistRedisDB         = "ALLOWLIST_REDIS_DB"
	EnvAllowlistRedisKeyPrefix  = "ALLOWLIST_REDIS_KEY_PREFIX"
	EnvAllowlistRPCRateLimit    = "ALLOWLIST_RPC_RATE_LIMIT"
	EnvAllowlistDebug           = "ALLOWLIST_DEBUG"
)

type ChainId uint

const (
	ChainId_EthereumMainnet ChainId = 1
	ChainId_EthereumSepolia ChainId = 11155111
	ChainId_EthereumAnvil   ChainId = 31337
)

type ChainName string

const (
	ChainName_EthereumMainnet ChainName = "mainnet"
	ChainName_EthereumSepolia ChainName = "sepolia"
	ChainName_EthereumAnvil   ChainName = "devnet"
)

var ChainIdToName = map[ChainId]ChainName{
	ChainId_EthereumMainnet: ChainName_EthereumMainnet,
	ChainId_EthereumSepolia: ChainName_EthereumSepolia,
	ChainId_EthereumAnvil:   ChainName_EthereumAnvil,
}
var ChainNameToId = map[ChainName]ChainId{
	ChainName_EthereumMainnet: ChainId_EthereumMainnet,
	ChainName_EthereumSepolia: ChainId_EthereumSepolia,
	ChainName_EthereumAnvil:   ChainId_EthereumAnvil,
}

// GetSupportedChainIDs returns all supported chain IDs
func GetSupportedChainIDs() []ChainId {
	return []ChainId{
		ChainId_EthereumMainnet,
		ChainId_EthereumSepolia,
		ChainId_EthereumAnvil,
	}
}

// GetSupportedChainIDsString returns supported chain IDs as strings for CLI help
func GetSupportedChainIDsString() string {
	return fmt.Sprintf("%d (mainnet), %d (sepolia), %d (anvil)",
		ChainId_EthereumMainnet, ChainId_EthereumSepolia, ChainId_EthereumAnvil)
}

// Default values applied by NewDefaultAllowlistConfig
const (
	DefaultDataPath     = "./allowlist-data"
	DefaultRPCRateLimit = 10
)

// AllowlistConfig is the complete configuration for building, storing and
// publishing allowlist roots.
type AllowlistConfig struct {
	// Tree hashing rules
	Hasher       string `json:"hasher"`
	Policy       string `json:"policy"`
	LeafEncoding string `json:"leaf_encoding"`

	// Commitment storage
	PersistenceType string `json:"persistence_type"`
	DataPath        string `json:"data_path"`
	RedisAddress    string `json:"redis_address"`
	RedisPassword   string `json:"-"`
	RedisDB         int    `json:"redis_db"`
	RedisKeyPrefix  string `json:"redis_key_prefix"`

	// Chain configuration, only needed for on-chain commands
	ChainID         ChainId   `json:"chain_id"`
	ChainName       ChainName `json:"chain_name"`
	RpcUrl          string    `json:"rpc_url"`
	ContractAddress string    `json:"contract_address"`
	PrivateKey      string    `json:"-"`
	RPCRateLimit    float64   `json:"rpc_rate_limit"` // requests per second, 0 disables limiting

	Debug bool `json:"debug"`
}

// NewDefaultAllowlistConfig returns the settings that match the whitelist contract
// with local in-memory storage.
func NewDefaultAllowlistConfig() *AllowlistConfig {
	return &AllowlistConfig{
		Hasher:          merkle.HasherKeccak256,
		Policy:          merkle.PolicySorted.String(),
		LeafEncoding:    merkle.LeafEncodingSingle.String(),
		PersistenceType: persistence.TypeMemory,
		DataPath:        DefaultDataPath,
		ChainID:         ChainId_EthereumAnvil,
		RPCRateLimit:    DefaultRPCRateLimit,
	}
}

// Validate checks the offline settings: hashing rules and persistence.
func (c *AllowlistConfig) Validate() error {
	var allErrors field.ErrorList

	if _, err := merkle.NewHasher(c.Hasher); err != nil {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("hasher"), c.Hasher, merkle.SupportedHashers()))
	}
	if _, err := merkle.ParsePolicy(c.Policy); err != nil {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("policy"), c.Policy,
			[]string{merkle.PolicySorted.String(), merkle.PolicyPositional.String()}))
	}
	if _, err := merkle.ParseLeafEncoding(c.LeafEncoding); err != nil {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("leafEncoding"), c.LeafEncoding,
			[]string{merkle.LeafEncodingSingle.String(), merkle.LeafEncodingDouble.String()}))
	}

	switch c.PersistenceType {
	case persistence.TypeMemory:
	case persistence.TypeBadger:
		if c.DataPath == "" {
			allErrors = append(allErrors, field.Required(field.NewPath("dataPath"), "dataPath is required for badger persistence"))
		}
	case persistence.TypeRedis:
		if c.RedisAddress == "" {
			allErrors = append(allErrors, field.Required(field.NewPath("redisAddress"), "redisAddress is required for redis persistence"))
		}
		if c.RedisDB < 0 || c.RedisDB > 15 {
			allErrors = append(allErrors, field.Invalid(field.NewPath("redisDB"), c.RedisDB, "must be between 0-15"))
		}
	default:
		allErrors = append(allErrors, field.NotSupported(field.NewPath("persistenceType"), c.PersistenceType,
			[]string{persistence.TypeMemory, persistence.TypeBadger, persistence.TypeRedis}))
	}

	if c.RPCRateLimit < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("rpcRateLimit"), c.RPCRateLimit, "must not be negative"))
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// ValidateChain checks the settings needed to talk to a chain. needsContract
// and needsSigner select which of the contract address and private key are required.
func (c *AllowlistConfig) ValidateChain(needsContract, needsSigner bool) error {
	var allErrors field.ErrorList

	if c.RpcUrl == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("rpcUrl"), "rpcUrl is required"))
	}

	chainName, exists := ChainIdToName[c.ChainID]
	if !exists {
		allErrors = append(allErrors, field.Invalid(field.NewPath("chainId"), c.ChainID,
			fmt.Sprintf("unsupported chain ID. Supported: %s", GetSupportedChainIDsString())))
	} else {
		c.ChainName = chainName
	}

	if needsContract {
		if c.ContractAddress == "" {
			allErrors = append(allErrors, field.Required(field.NewPath("contractAddress"), "contractAddress is required"))
		} else if !common.IsHexAddress(c.ContractAddress) {
			allErrors = append(allErrors, field.Invalid(field.NewPath("contractAddress"), c.ContractAddress, "invalid address format"))
		}
	}

	if needsSigner {
		key := strings.TrimPrefix(c.PrivateKey, "0x")
		if key == "" {
			allErrors = append(allErrors, field.Required(field.NewPath("privateKey"), "privateKey is required"))
		} else if len(key) != 64 {
			allErrors = append(allErrors, field.Invalid(field.NewPath("privateKey"), "<redacted>",
				fmt.Sprintf("must be 32 bytes (64 hex chars), got %d chars", len(key))))
		}
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// AllowlistSettings converts the hashing settings into an allowlist.Config.
func (c *AllowlistConfig) AllowlistSettings() (*allowlist.Config, error) {
	policy, err := merkle.ParsePolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	encoding, err := merkle.ParseLeafEncoding(c.LeafEncoding)
	if err != nil {
		return nil, err
	}
	return &allowlist.Config{
		Hasher:       c.Hasher,
		Policy:       policy,
		LeafEncoding: encoding,
	}, nil
}

// TreeConfig resolves the hashing settings into a merkle.TreeConfig.
func (c *AllowlistConfig) TreeConfig() (*merkle.TreeConfig, error) {
	settings, err := c.AllowlistSettings()
	if err != nil {
		return nil, err
	}
	return settings.TreeConfig()
}

// GetContractAddress returns the parsed whitelist contract address.
func (c *AllowlistConfig) GetContractAddress() common.Address {
	return common.HexToAddress(c.ContractAddress)
}
