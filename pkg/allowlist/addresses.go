package allowlist

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/Layr-Labs/merkle-allowlist-go/pkg/merkle"
)

// ParseAddresses validates and converts hex addresses. Order is kept and
// duplicates are allowed.
func ParseAddresses(raw []string) ([]common.Address, error) {
	addresses := make([]common.Address, 0, len(raw))
	for i, s := range raw {
		s = strings.TrimSpace(s)
		if !common.IsHexAddress(s) {
			return nil, errors.Wrapf(merkle.ErrInvalidInput, "entry %d: invalid address %q", i, s)
		}
		addresses = append(addresses, common.HexToAddress(s))
	}
	return addresses, nil
}

// LoadAddresses reads an address list from a file holding either a JSON array
// of strings or one address per line. Blank lines and lines starting with # are skipped.
func LoadAddresses(path string) ([]common.Address, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read address file %s: %w", path, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var raw []string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse address file %s as JSON: %w", path, err)
		}
		return ParseAddresses(raw)
	}

	raw := make([]string, 0)
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw = append(raw, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan address file %s: %w", path, err)
	}
	return ParseAddresses(raw)
}
