package extraction

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/archiveinsight/backend/internal/domain"
	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

const defaultPageTimeout = 10 * time.Second

var errPageTimeout = errors.New("page extraction timed out")

// ole2Signature opens legacy Word 97-2003 files, which the word processor
// reader cannot parse and would otherwise return as raw bytes.
var ole2Signature = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}

// Config holds configuration for the text extractor
type Config struct {
	PageTimeout        time.Duration
	EnableDebugLogging bool
}

// Extractor reads plain text out of uploaded PDF, Word processor and text files
type Extractor struct {
	pageTimeout        time.Duration
	enableDebugLogging bool
}

// NewExtractor creates a text extractor
func NewExtractor(config Config) *Extractor {
	timeout := config.PageTimeout
	if timeout <= 0 {
		timeout = defaultPageTimeout
	}
	return &Extractor{
		pageTimeout:        timeout,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ExtractText dispatches on the file extension. The result may be empty;
// any failure is wrapped in domain.ErrExtractionFailed.
func (e *Extractor) ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = e.extractPDF(ctx, data)
	case ".txt", ".md":
		text, err = extractPlain(data)
	case ".docx", ".doc", ".odt", ".rtf":
		text, err = extractWordProcessor(ext, data)
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedDocumentType, ext)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrExtractionFailed, filename, err)
	}

	if e.enableDebugLogging {
		log.Printf("[EXTRACT] %q: %d bytes -> %d chars of text", filename, len(data), utf8.RuneCountInString(text))
	}
	return text, nil
}

func extractPlain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("text file is not valid UTF-8")
	}
	return string(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))), nil
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := e.pageText(ctx, page)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		if err != nil {
			log.Printf("[EXTRACT] Skipping pdf page %d: %v", i, err)
			continue
		}
		pages = append(pages, content)
	}

	return strings.Join(pages, "\n"), nil
}

// pageText extracts one page, giving up after the page timeout
func (e *Extractor) pageText(ctx context.Context, page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resCh := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resCh <- result{err: fmt.Errorf("page panicked: %v", r)}
			}
		}()
		content, err := page.GetPlainText(nil)
		resCh <- result{content, err}
	}()

	timer := time.NewTimer(e.pageTimeout)
	defer timer.Stop()

	select {
	case r := <-resCh:
		return r.content, r.err
	case <-timer.C:
		return "", errPageTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// extractWordProcessor writes the upload to a temporary file because the
// reader library works on paths.
func extractWordProcessor(ext string, data []byte) (string, error) {
	if bytes.HasPrefix(data, ole2Signature) {
		return "", errors.New("legacy binary word format is not supported")
	}

	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	text, err := cat.File(tmp.Name())
	if err != nil {
		return "", fmt.Errorf("failed to extract %s: %w", ext, err)
	}
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%s did not decode to text", ext)
	}
	return text, nil
}
