package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching serialized values
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ArchiveRepository is read-only access to previously accepted projects.
// List must return a snapshot in archive order that the caller may keep.
type ArchiveRepository interface {
	List(ctx context.Context) ([]ArchivedProject, error)
	Get(ctx context.Context, id string) (*ArchivedProject, error)
}

// TextExtractor turns raw document bytes into plain text
type TextExtractor interface {
	ExtractText(ctx context.Context, filename string, data []byte) (string, error)
}

// AnalysisMetrics records operational counters for analysis runs
type AnalysisMetrics interface {
	ObserveAnalysis(result Verdict, elapsed time.Duration)
	IncExtractionFailures()
	ObserveCacheLookup(hit bool)
}
