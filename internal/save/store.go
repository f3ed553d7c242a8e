package save

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNoSave is returned by Load when nothing has been saved yet
var ErrNoSave = errors.New("no saved pet")

// Store persists pet records
type Store interface {
	Load(ctx context.Context) (Record, error)
	Save(ctx context.Context, rec Record) error
	Close() error
}

// Store kinds accepted by Open
const (
	KindJSON   = "json"
	KindSQLite = "sqlite"
)

// Open returns the store of the given kind. An empty path selects the
// default location for that kind.
func Open(kind, path string) (Store, error) {
	switch kind {
	case "", KindJSON:
		return NewFileStore(path), nil
	case KindSQLite:
		if path == "" {
			path = filepath.Join(ConfigDir(), "animora.db")
		}
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store %q (want %s or %s)", kind, KindJSON, KindSQLite)
	}
}
