package mock

import (
	"context"

	"github.com/fwojciec/sitedoc"
)

var _ sitedoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of sitedoc.DocumentService.
type DocumentService struct {
	ListDocumentsFn        func(ctx context.Context, filter sitedoc.CategoryFilter) []*sitedoc.Document
	GetDocumentContentFn   func(ctx context.Context, path string) string
	GetDocumentFn          func(ctx context.Context, path string) *sitedoc.DocumentDetail
	GetDocumentMarkdownFn  func(ctx context.Context, path string) string
	SearchDocumentsFn      func(ctx context.Context, query string, filter sitedoc.CategoryFilter, limit int) []*sitedoc.SearchResult
	GetDocumentStructureFn func(ctx context.Context) *sitedoc.DocumentStructure
	SiteInfoFn             func(ctx context.Context) *sitedoc.SiteInfo
}

func (s *DocumentService) ListDocuments(ctx context.Context, filter sitedoc.CategoryFilter) []*sitedoc.Document {
	return s.ListDocumentsFn(ctx, filter)
}

func (s *DocumentService) GetDocumentContent(ctx context.Context, path string) string {
	return s.GetDocumentContentFn(ctx, path)
}

func (s *DocumentService) GetDocument(ctx context.Context, path string) *sitedoc.DocumentDetail {
	return s.GetDocumentFn(ctx, path)
}

func (s *DocumentService) GetDocumentMarkdown(ctx context.Context, path string) string {
	return s.GetDocumentMarkdownFn(ctx, path)
}

func (s *DocumentService) SearchDocuments(ctx context.Context, query string, filter sitedoc.CategoryFilter, limit int) []*sitedoc.SearchResult {
	return s.SearchDocumentsFn(ctx, query, filter, limit)
}

func (s *DocumentService) GetDocumentStructure(ctx context.Context) *sitedoc.DocumentStructure {
	return s.GetDocumentStructureFn(ctx)
}

func (s *DocumentService) SiteInfo(ctx context.Context) *sitedoc.SiteInfo {
	return s.SiteInfoFn(ctx)
}

// Sizer is a mock cache size reporter.
type Sizer struct {
	LenFn func() int
}

func (s *Sizer) Len() int {
	return s.LenFn()
}
