package domain

import "errors"

var (
	// ErrUnsupportedDocumentType is returned when an upload is not a supported document format
	ErrUnsupportedDocumentType = errors.New("unsupported document type")

	// ErrInvalidDocument is returned when a document carries neither a filename nor content
	ErrInvalidDocument = errors.New("invalid document")

	// ErrDocumentTooLarge is returned when an upload exceeds the configured size limit
	ErrDocumentTooLarge = errors.New("document exceeds maximum upload size")

	// ErrExtractionFailed is returned when raw text cannot be extracted from a document
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrArchiveUnavailable is returned when the project archive cannot be read
	ErrArchiveUnavailable = errors.New("project archive unavailable")

	// ErrInvalidProject is returned when an archived project cannot be stored
	ErrInvalidProject = errors.New("invalid archived project")

	// ErrProjectNotFound is returned when an archived project id does not exist
	ErrProjectNotFound = errors.New("project not found in archive")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
