package layoutstore

import (
	"fmt"
	"os"
	"strings"
)

const (
	StoreModeMemory = "memory"
	StoreModeSQLite = "sqlite"
	StoreModeDB     = "db"
)

func storeModeFromEnv() string {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv("LAYOUT_STORE_MODE")))
	switch raw {
	case "", StoreModeMemory, "mem":
		return StoreModeMemory
	case StoreModeSQLite, "local":
		return StoreModeSQLite
	case StoreModeDB, "postgres", "postgresql":
		return StoreModeDB
	default:
		return raw
	}
}

// NewServiceFromEnv picks a store backend from LAYOUT_STORE_MODE.
// Defaults to memory so the server runs without any database.
func NewServiceFromEnv() (Service, string, error) {
	mode := storeModeFromEnv()

	switch mode {
	case StoreModeMemory:
		return NewMemoryStore(), mode, nil
	case StoreModeSQLite:
		store, err := NewSQLiteStoreFromEnv()
		if err != nil {
			return nil, mode, err
		}
		return store, mode, nil
	case StoreModeDB:
		store, err := NewPostgresStoreFromEnv()
		if err != nil {
			return nil, mode, err
		}
		return store, mode, nil
	default:
		return nil, mode, fmt.Errorf("invalid LAYOUT_STORE_MODE %q (supported: %s, %s, %s)",
			mode, StoreModeMemory, StoreModeSQLite, StoreModeDB)
	}
}
