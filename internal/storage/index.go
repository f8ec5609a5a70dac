package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	indexFile    = "index.json"
	indexVersion = 1
)

// addressIndex maps lowercase hex addresses to record ids.
type addressIndex struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

func indexKey(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}

func readIndex(dir string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(dir, indexFile))
	if err != nil {
		return nil, err
	}

	var idx addressIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	if idx.Version != indexVersion || idx.Entries == nil {
		return nil, fmt.Errorf("decode index: unsupported version %d", idx.Version)
	}
	return idx.Entries, nil
}

func writeIndex(dir string, entries map[string]string) error {
	data, err := json.MarshalIndent(addressIndex{Version: indexVersion, Entries: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	return writeFileAtomic(dir, indexFile, data)
}
