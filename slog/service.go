package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitedoc"
)

var _ sitedoc.DocumentService = (*LoggingService)(nil)

// LoggingService logs every public document operation.
type LoggingService struct {
	next   sitedoc.DocumentService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next sitedoc.DocumentService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// ListDocuments delegates and logs the result size.
func (s *LoggingService) ListDocuments(ctx context.Context, filter sitedoc.CategoryFilter) (docs []*sitedoc.Document) {
	defer func(begin time.Time) {
		s.logger.Info("list documents",
			"category", filter,
			"count", len(docs),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.ListDocuments(ctx, filter)
}

// GetDocumentContent delegates and logs the content size.
func (s *LoggingService) GetDocumentContent(ctx context.Context, path string) (text string) {
	defer func(begin time.Time) {
		s.logger.Info("get document content",
			"path", path,
			"bytes", len(text),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.GetDocumentContent(ctx, path)
}

// GetDocument delegates and logs whether the page was served from cache.
func (s *LoggingService) GetDocument(ctx context.Context, path string) (doc *sitedoc.DocumentDetail) {
	defer func(begin time.Time) {
		attrs := []any{"path", path, "found", doc != nil, "duration", time.Since(begin)}
		if doc != nil {
			attrs = append(attrs, "cached", doc.Cached)
		}
		s.logger.Info("get document", attrs...)
	}(time.Now())
	return s.next.GetDocument(ctx, path)
}

// GetDocumentMarkdown delegates and logs the output size.
func (s *LoggingService) GetDocumentMarkdown(ctx context.Context, path string) (md string) {
	defer func(begin time.Time) {
		s.logger.Info("get document markdown",
			"path", path,
			"bytes", len(md),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.GetDocumentMarkdown(ctx, path)
}

// SearchDocuments delegates and logs the query and hit count.
func (s *LoggingService) SearchDocuments(ctx context.Context, query string, filter sitedoc.CategoryFilter, limit int) (results []*sitedoc.SearchResult) {
	defer func(begin time.Time) {
		s.logger.Info("search documents",
			"query", query,
			"category", filter,
			"limit", limit,
			"count", len(results),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SearchDocuments(ctx, query, filter, limit)
}

// GetDocumentStructure delegates.
func (s *LoggingService) GetDocumentStructure(ctx context.Context) *sitedoc.DocumentStructure {
	return s.next.GetDocumentStructure(ctx)
}

// SiteInfo delegates.
func (s *LoggingService) SiteInfo(ctx context.Context) *sitedoc.SiteInfo {
	return s.next.SiteInfo(ctx)
}
