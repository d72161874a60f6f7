package storage

import (
	"context"

	"github.com/pixil98/go-log/log"
)

// Reloader reloads a set of assets from its backing source.
type Reloader interface {
	Reload() error
}

// ReloadManager re-reads asset stores on each driver tick so edits to the
// files on disk show up in a running service.
type ReloadManager struct {
	stores map[string]Reloader
}

func NewReloadManager(stores map[string]Reloader) *ReloadManager {
	return &ReloadManager{
		stores: stores,
	}
}

// Tick reloads every registered store. A store that fails to reload keeps
// serving its previous records, so failures are logged rather than returned.
func (rm *ReloadManager) Tick(ctx context.Context) error {
	logger := log.GetLogger(ctx)

	for name, store := range rm.stores {
		if err := store.Reload(); err != nil {
			logger.WithError(err).Warnf("reloading %s assets", name)
		}
	}

	return nil
}
