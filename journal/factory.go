package journal

import "fmt"

// Backend selects a journal persistence implementation.
type Backend string

const (
	Memory  Backend = "memory"
	LevelDB Backend = "leveldb"
	SQLite  Backend = "sqlite"
)

// Config describes how a journal store is to be opened.
type Config struct {
	// Backend to use; Memory if empty.
	Backend Backend
	// Path is the database directory (LevelDB) or file (SQLite).
	// Unused by the memory backend.
	Path string
}

// Open opens the journal store described by the given configuration.
func Open(config Config) (Store, error) {
	switch config.Backend {
	case Memory, "":
		return NewMemoryStore(), nil
	case LevelDB:
		return NewLevelDbStore(config.Path)
	case SQLite:
		return NewSqliteStore(config.Path)
	}
	return nil, fmt.Errorf("unknown journal backend %q", config.Backend)
}
