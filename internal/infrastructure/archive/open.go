package archive

import (
	"context"
	"fmt"
	"log"

	"github.com/archiveinsight/backend/internal/domain"
)

// Store is an archive that can also be written to and released
type Store interface {
	domain.ArchiveRepository
	Upsert(ctx context.Context, project domain.ArchivedProject) error
	Close() error
}

// Open returns the archive backend named by kind ("memory" or "sqlite").
// A new SQLite archive is seeded with the reference projects.
func Open(ctx context.Context, kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewSeededMemoryArchive(), nil

	case "sqlite":
		store, err := NewSQLiteArchive(sqlitePath)
		if err != nil {
			return nil, err
		}

		existing, err := store.List(ctx)
		if err != nil {
			store.Close()
			return nil, err
		}
		if len(existing) == 0 {
			n, err := store.Seed(ctx, SeedProjects())
			if err != nil {
				store.Close()
				return nil, err
			}
			log.Printf("[ARCHIVE] Seeded %d projects into %s", n, sqlitePath)
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown archive type %q", kind)
	}
}
