package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/archiveinsight/backend/internal/domain"
)

// DefaultAllowedExtensions are the document types accepted when none are configured
var DefaultAllowedExtensions = []string{".pdf", ".docx", ".doc", ".txt"}

// AnalysisServiceConfig holds configuration for the analysis service
type AnalysisServiceConfig struct {
	CacheTTL           time.Duration
	Policy             GatingPolicy
	AllowedExtensions  []string
	ExtraTechSynonyms  map[string]string
	EnableDebugLogging bool
}

// AnalysisService runs the duplicate-detection pipeline for one document:
// validate -> extract text -> extract fields -> snapshot archive -> evaluate -> report.
type AnalysisService struct {
	archive   domain.ArchiveRepository
	extractor domain.TextExtractor
	cache     domain.CacheRepository
	metrics   domain.AnalysisMetrics

	fields    DocumentFieldExtractor
	engine    *DecisionEngine
	assembler *ReportAssembler

	allowedExtensions  map[string]bool
	configFingerprint  string
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewAnalysisService creates a new analysis service with dependencies.
// cache and extractor may be nil: reports are then never cached and only
// pre-extracted text can be analyzed.
func NewAnalysisService(
	archive domain.ArchiveRepository,
	extractor domain.TextExtractor,
	cache domain.CacheRepository,
	config AnalysisServiceConfig,
) *AnalysisService {
	normalizer := NewNormalizer(NewVocabulary(config.ExtraTechSynonyms))

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	extensions := config.AllowedExtensions
	if len(extensions) == 0 {
		extensions = DefaultAllowedExtensions
	}
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}

	engine := NewDecisionEngine(normalizer, DecisionEngineConfig{
		Policy:             config.Policy,
		EnableDebugLogging: config.EnableDebugLogging,
	})

	return &AnalysisService{
		archive:            archive,
		extractor:          extractor,
		cache:              cache,
		metrics:            noopMetrics{},
		fields:             NewFieldExtractor(normalizer, config.EnableDebugLogging),
		engine:             engine,
		assembler:          NewReportAssembler(normalizer, engine.Policy()),
		allowedExtensions:  allowed,
		configFingerprint:  string(engine.Policy()) + "/" + normalizer.Vocabulary().Fingerprint(),
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// WithMetrics attaches a metrics recorder
func (s *AnalysisService) WithMetrics(m domain.AnalysisMetrics) *AnalysisService {
	if m != nil {
		s.metrics = m
	}
	return s
}

// Policy returns the gating policy the service decides with
func (s *AnalysisService) Policy() GatingPolicy {
	return s.engine.Policy()
}

// ValidateDocumentType rejects filenames whose extension is not accepted
func (s *AnalysisService) ValidateDocumentType(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !s.allowedExtensions[ext] {
		if ext == "" {
			ext = "(none)"
		}
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedDocumentType, ext)
	}
	return nil
}

// AnalyzeText analyzes already-extracted text. The filename is only used for
// the title fallback, so any extension is accepted.
func (s *AnalysisService) AnalyzeText(ctx context.Context, filename, text string) (*domain.MatchReport, error) {
	return s.analyze(ctx, filename, text)
}

// AnalyzeDocument analyzes an uploaded document. Unsupported types are rejected
// before extraction; every later failure degrades instead of erroring.
func (s *AnalysisService) AnalyzeDocument(ctx context.Context, doc *domain.Document) (*domain.MatchReport, error) {
	if doc == nil || (doc.Filename == "" && len(doc.Data) == 0 && doc.Text == "") {
		return nil, domain.ErrInvalidDocument
	}

	if doc.Text != "" {
		return s.analyze(ctx, doc.Filename, doc.Text)
	}

	if err := s.ValidateDocumentType(doc.Filename); err != nil {
		return nil, err
	}

	return s.analyze(ctx, doc.Filename, s.extractText(ctx, doc))
}

func (s *AnalysisService) extractText(ctx context.Context, doc *domain.Document) string {
	if s.extractor == nil || len(doc.Data) == 0 {
		return ""
	}

	text, err := s.extractor.ExtractText(ctx, doc.Filename, doc.Data)
	if err != nil {
		s.metrics.IncExtractionFailures()
		log.Printf("[ANALYZE] Text extraction failed for %q, using default record: %v", doc.Filename, err)
		return ""
	}
	return text
}

func (s *AnalysisService) analyze(ctx context.Context, filename, text string) (*domain.MatchReport, error) {
	start := time.Now()

	projects, archiveOK := s.snapshotArchive(ctx)

	var cacheKey string
	if archiveOK && s.cache != nil {
		cacheKey = generateCacheKey(s.configFingerprint, filename, text, projects)
		if cached, ok := s.getFromCache(ctx, cacheKey); ok {
			s.metrics.ObserveAnalysis(cached.FinalResult, time.Since(start))
			return cached, nil
		}
	}

	uploaded := s.fields.Extract(text, filename)
	comparisons := s.engine.EvaluateAll(uploaded, projects)
	report := s.assembler.Assemble(uploaded, text, comparisons)

	if s.enableDebugLogging {
		matched := "none"
		if report.MatchedWith != nil {
			matched = report.MatchedWith.ProjectID
		}
		log.Printf("[ANALYZE] %q: %d projects compared, result=%s matchedWith=%s policy=%s",
			filename, len(projects), report.FinalResult, matched, s.engine.Policy())
	}

	if cacheKey != "" {
		if err := s.setInCache(ctx, cacheKey, report); err != nil {
			log.Printf("[ANALYZE] Failed to cache report: %v", err)
		}
	}

	s.metrics.ObserveAnalysis(report.FinalResult, time.Since(start))
	return report, nil
}

// snapshotArchive reads the archive once per request. A failing archive is
// treated as empty and reported as not OK so the result is not cached.
func (s *AnalysisService) snapshotArchive(ctx context.Context) ([]domain.ArchivedProject, bool) {
	if s.archive == nil {
		return []domain.ArchivedProject{}, false
	}

	projects, err := s.archive.List(ctx)
	if err != nil {
		log.Printf("[ANALYZE] %v: %v", domain.ErrArchiveUnavailable, err)
		return []domain.ArchivedProject{}, false
	}
	if projects == nil {
		projects = []domain.ArchivedProject{}
	}
	return projects, true
}

// generateCacheKey hashes the input together with the decision settings and
// the archive contents, so neither a changed archive nor a differently
// configured process sharing the cache is served someone else's report.
// Format: "report:{sha256 hex}"
func generateCacheKey(settings, filename, text string, projects []domain.ArchivedProject) string {
	h := sha256.New()
	h.Write([]byte(settings))
	h.Write([]byte{0})
	h.Write([]byte(filename))
	h.Write([]byte{0})
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(archiveFingerprint(projects)))
	return "report:" + hex.EncodeToString(h.Sum(nil))
}

func archiveFingerprint(projects []domain.ArchivedProject) string {
	data, err := json.Marshal(projects)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// getFromCache retrieves a report from cache
func (s *AnalysisService) getFromCache(ctx context.Context, key string) (*domain.MatchReport, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		s.metrics.ObserveCacheLookup(false)
		return nil, false
	}

	var report domain.MatchReport
	if err := json.Unmarshal(data, &report); err != nil {
		log.Printf("[ANALYZE] Discarding unreadable cache entry %s: %v", key, err)
		s.metrics.ObserveCacheLookup(false)
		return nil, false
	}

	s.metrics.ObserveCacheLookup(true)
	return &report, true
}

// setInCache stores a report in cache
func (s *AnalysisService) setInCache(ctx context.Context, key string, report *domain.MatchReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, data, s.cacheTTL)
}

type noopMetrics struct{}

func (noopMetrics) ObserveAnalysis(domain.Verdict, time.Duration) {}
func (noopMetrics) IncExtractionFailures()                        {}
func (noopMetrics) ObserveCacheLookup(bool)                       {}
