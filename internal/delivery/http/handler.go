package http

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/archiveinsight/backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// multipartOverhead is the allowance for multipart boundaries and headers on top of the file itself
const multipartOverhead = 1 << 20

// Analyzer runs duplicate detection on submitted documents
type Analyzer interface {
	ValidateDocumentType(filename string) error
	AnalyzeDocument(ctx context.Context, doc *domain.Document) (*domain.MatchReport, error)
	AnalyzeText(ctx context.Context, filename, text string) (*domain.MatchReport, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analyzer       Analyzer
	archive        domain.ArchiveRepository
	maxUploadBytes int64
}

// NewHandler creates a new HTTP handler. A nil analyzer or archive makes the
// corresponding endpoints answer 503.
func NewHandler(analyzer Analyzer, archive domain.ArchiveRepository, maxUploadBytes int64) *Handler {
	return &Handler{
		analyzer:       analyzer,
		archive:        archive,
		maxUploadBytes: maxUploadBytes,
	}
}

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AnalyzeTextRequest is the body of POST /api/v1/analyze/text
type AnalyzeTextRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "archiveinsight-backend",
		"version": "1.0.0",
	})
}

// Analyze handles a multipart upload in the "file" field and returns its MatchReport
func (h *Handler) Analyze(c *gin.Context) {
	if h.analyzer == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "analysis service not configured"})
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, domain.ErrDocumentTooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing document",
			Details: "upload the document as multipart form field \"file\"",
		})
		return
	}

	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		respondError(c, domain.ErrDocumentTooLarge)
		return
	}

	if err := h.analyzer.ValidateDocumentType(fileHeader.Filename); err != nil {
		respondError(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable upload", Details: err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable upload", Details: err.Error()})
		return
	}

	report, err := h.analyzer.AnalyzeDocument(c.Request.Context(), &domain.Document{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// AnalyzeText analyzes text that was already extracted by the caller
func (h *Handler) AnalyzeText(c *gin.Context) {
	if h.analyzer == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "analysis service not configured"})
		return
	}

	var req AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}
	if req.Filename == "" && req.Text == "" {
		respondError(c, domain.ErrInvalidDocument)
		return
	}

	report, err := h.analyzer.AnalyzeText(c.Request.Context(), req.Filename, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ListProjects returns the archived projects in archive order
func (h *Handler) ListProjects(c *gin.Context) {
	if h.archive == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "archive not configured"})
		return
	}

	projects, err := h.archive.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(projects),
		"projects": projects,
	})
}

// GetProject returns one archived project
func (h *Handler) GetProject(c *gin.Context) {
	if h.archive == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "archive not configured"})
		return
	}

	project, err := h.archive.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnsupportedDocumentType):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrDocumentTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrInvalidDocument):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrProjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrArchiveUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	c.JSON(status, ErrorResponse{Error: err.Error()})
}
