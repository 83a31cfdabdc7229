package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/config"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/merkle"
	"github.com/Layr-Labs/merkle-allowlist-go/pkg/persistence"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func newApp() *cli.App {
	defaults := config.NewDefaultAllowlistConfig()

	sourceFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "Address list file (JSON array or one address per line)",
		},
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "Name of a stored commitment to use instead of --input",
		},
	}

	contractFlag := &cli.StringFlag{
		Name:    "contract-address",
		Aliases: []string{"contract"},
		Usage:   "Deployed whitelist contract address",
		EnvVars: []string{config.EnvAllowlistContractAddress},
	}

	return &cli.App{
		Name:  "allowlist",
		Usage: "Build merkle allowlists, hand out proofs and publish roots on chain",
		Description: `Commit to a list of addresses with a single merkle root.

This tool can:
- Build a tree from an address list and print its root
- Generate and verify membership proofs offline
- Store commitments in memory, Badger or Redis
- Deploy the whitelist contract, publish a root and check membership on chain`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "hasher",
				Usage:   fmt.Sprintf("Hash function: %v", merkle.SupportedHashers()),
				EnvVars: []string{config.EnvAllowlistHasher},
				Value:   defaults.Hasher,
			},
			&cli.StringFlag{
				Name:    "policy",
				Usage:   "Pair ordering: sorted (contract compatible) or positional",
				EnvVars: []string{config.EnvAllowlistPolicy},
				Value:   defaults.Policy,
			},
			&cli.StringFlag{
				Name:    "leaf-encoding",
				Usage:   "Leaf hashing: single or double",
				EnvVars: []string{config.EnvAllowlistLeafEncoding},
				Value:   defaults.LeafEncoding,
			},
			&cli.StringFlag{
				Name:    "persistence",
				Usage:   fmt.Sprintf("Commitment store: %s, %s or %s", persistence.TypeMemory, persistence.TypeBadger, persistence.TypeRedis),
				EnvVars: []string{config.EnvAllowlistPersistence},
				Value:   defaults.PersistenceType,
			},
			&cli.StringFlag{
				Name:    "data-path",
				Usage:   "Badger data directory",
				EnvVars: []string{config.EnvAllowlistDataPath},
				Value:   defaults.DataPath,
			},
			&cli.StringFlag{
				Name:    "redis-address",
				Usage:   "Redis host:port",
				EnvVars: []string{config.EnvAllowlistRedisAddress},
			},
			&cli.StringFlag{
				Name:    "redis-password",
				Usage:   "Redis password",
				EnvVars: []string{config.EnvAllowlistRedisPassword},
			},
			&cli.IntFlag{
				Name:    "redis-db",
				Usage:   "Redis database number (0-15)",
				EnvVars: []string{config.EnvAllowlistRedisDB},
			},
			&cli.StringFlag{
				Name:    "redis-key-prefix",
				Usage:   "Prefix for every Redis key",
				EnvVars: []string{config.EnvAllowlistRedisKeyPrefix},
			},
			&cli.StringFlag{
				Name:    "rpc-url",
				Aliases: []string{"rpc"},
				Usage:   "Ethereum RPC URL (e.g., http://localhost:8545)",
				EnvVars: []string{config.EnvAllowlistRPCURL},
			},
			&cli.Uint64Flag{
				Name:    "chain-id",
				Aliases: []string{"chain"},
				Usage:   fmt.Sprintf("Ethereum chain ID: %s", config.GetSupportedChainIDsString()),
				EnvVars: []string{config.EnvAllowlistChainID},
				Value:   uint64(defaults.ChainID),
			},
			&cli.StringFlag{
				Name:    "private-key",
				Aliases: []string{"priv"},
				Usage:   "ECDSA private key (hex string) for signing transactions",
				EnvVars: []string{config.EnvAllowlistPrivateKey},
			},
			&cli.Float64Flag{
				Name:    "rpc-rate-limit",
				Usage:   "Maximum RPC requests per second, 0 for unlimited",
				EnvVars: []string{config.EnvAllowlistRPCRateLimit},
				Value:   defaults.RPCRateLimit,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvAllowlistDebug},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "Build a tree from an address list and print its root",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Address list file (JSON array or one address per line)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "Store the commitment under this name",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write every proof to this file as JSON",
					},
				},
				Action: buildCommand,
			},
			{
				Name:  "proof",
				Usage: "Print the proof for one address as JSON",
				Flags: append(sourceFlags,
					&cli.StringFlag{
						Name:  "address",
						Usage: "Address to prove",
					},
					&cli.IntFlag{
						Name:  "index",
						Usage: "Leaf index to prove, for addresses listed more than once",
						Value: -1,
					},
				),
				Action: proofCommand,
			},
			{
				Name:  "verify",
				Usage: "Verify a proof against a root without the list",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "root",
						Usage: "Merkle root (0x-prefixed hex), required unless --proof-set is given",
					},
					&cli.StringFlag{
						Name:  "address",
						Usage: "Claimed member address",
					},
					&cli.StringSliceFlag{
						Name:  "proof",
						Usage: "Proof elements in order (0x-prefixed hex, repeat or comma separate)",
					},
					&cli.StringSliceFlag{
						Name:  "sibling-on-left",
						Usage: "Positional policy only: true or false per --proof element",
					},
					&cli.StringFlag{
						Name:  "proof-file",
						Usage: "JSON proof entry written by the proof command",
					},
					&cli.StringFlag{
						Name:  "proof-set",
						Usage: "JSON proof set written by build --output; every entry is verified",
					},
				},
				Action: verifyCommand,
			},
			{
				Name:   "tree",
				Usage:  "Render the tree",
				Flags:  sourceFlags,
				Action: treeCommand,
			},
			{
				Name:   "list",
				Usage:  "List stored commitments",
				Action: listCommand,
			},
			{
				Name:  "delete",
				Usage: "Delete a stored commitment",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Commitment name",
						Required: true,
					},
				},
				Action: deleteCommand,
			},
			{
				Name:   "deploy",
				Usage:  "Deploy the whitelist contract",
				Action: deployCommand,
			},
			{
				Name:   "publish",
				Usage:  "Publish a root to the whitelist contract with setRoot",
				Flags:  append(sourceFlags, contractFlag),
				Action: publishCommand,
			},
			{
				Name:  "check",
				Usage: "Ask the whitelist contract whether an address is a member",
				Flags: append(sourceFlags, contractFlag,
					&cli.StringFlag{
						Name:     "address",
						Usage:    "Address to check",
						Required: true,
					},
				),
				Action: checkCommand,
			},
			{
				Name:   "root",
				Usage:  "Read the root stored in the whitelist contract",
				Flags:  []cli.Flag{contractFlag},
				Action: rootCommand,
			},
		},
	}
}
