package sitedoc

import (
	"context"
	"strings"
	"time"
)

// Category groups documents by the top-level section of the site.
type Category string

// Document categories.
const (
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryGeneral  Category = "general"
)

// CategoryFilter restricts listing and search to one category.
type CategoryFilter string

// Category filters accepted by the public operations.
const (
	FilterAll      CategoryFilter = "all"
	FilterFrontend CategoryFilter = "frontend"
	FilterBackend  CategoryFilter = "backend"
)

// ParseCategoryFilter converts user input into a CategoryFilter.
// An empty string selects all categories.
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	switch CategoryFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterFrontend:
		return FilterFrontend, nil
	case FilterBackend:
		return FilterBackend, nil
	}
	return "", Errorf(EINVALID, "unknown category %q: expected frontend, backend or all", s)
}

// Match reports whether a document category passes the filter.
func (f CategoryFilter) Match(c Category) bool {
	if f == "" || f == FilterAll {
		return true
	}
	return string(f) == string(c)
}

// Document represents one page of the documentation site.
// Path is the identity key; Category is derived from Path.
type Document struct {
	Path     string   `json:"path"`
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Content  string   `json:"content,omitempty"`
	Category Category `json:"category"`
}

// NewDocument returns a Document with its category derived from path.
func NewDocument(path, title, url, content string) *Document {
	return &Document{
		Path:     path,
		Title:    title,
		URL:      url,
		Content:  content,
		Category: CategoryOf(path),
	}
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	if !strings.HasPrefix(d.Path, "/") {
		return Errorf(EINVALID, "document path must start with /: %q", d.Path)
	}
	if d.Category != CategoryOf(d.Path) {
		return Errorf(EINVALID, "document category %q does not match path %q", d.Category, d.Path)
	}
	return nil
}

// DocumentNode is one entry of the document structure.
type DocumentNode struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

// DocumentStructure groups the catalog by category.
type DocumentStructure struct {
	Frontend []DocumentNode `json:"frontend"`
	Backend  []DocumentNode `json:"backend"`
	General  []DocumentNode `json:"general"`
}

// NewDocumentStructure groups documents into a one-level structure.
func NewDocumentStructure(docs []*Document) *DocumentStructure {
	s := &DocumentStructure{
		Frontend: []DocumentNode{},
		Backend:  []DocumentNode{},
		General:  []DocumentNode{},
	}
	for _, doc := range docs {
		node := DocumentNode{Path: doc.Path, Title: doc.Title}
		switch doc.Category {
		case CategoryFrontend:
			s.Frontend = append(s.Frontend, node)
		case CategoryBackend:
			s.Backend = append(s.Backend, node)
		default:
			s.General = append(s.General, node)
		}
	}
	return s
}

// SearchResult is one ranked hit returned by a search.
type SearchResult struct {
	Path     string   `json:"path"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Score    float64  `json:"score"`
	Category Category `json:"category"`
}

// DocumentDetail is the full view of a single document.
type DocumentDetail struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
	Cached  bool   `json:"cached"`
}

// SiteInfo describes the configured site and the state of its caches.
type SiteInfo struct {
	BaseURL          string          `json:"site"`
	Version          string          `json:"version"`
	DiscoveryMethod  DiscoveryMethod `json:"discoveryMethod"`
	DocumentCount    int             `json:"documentCount"`
	ContentCacheSize int             `json:"cacheSize"`
	SearchCacheSize  int             `json:"searchCacheSize"`
	ContentTTL       time.Duration   `json:"cacheTimeout"`
	SearchTTL        time.Duration   `json:"searchCacheTimeout"`
	CatalogTTL       time.Duration   `json:"catalogCacheTimeout"`
	Features         []string        `json:"features"`
}

// DocumentService exposes the public read operations over the site.
// No operation returns an error: failures degrade to empty results.
type DocumentService interface {
	// ListDocuments returns the catalog restricted to the filter.
	ListDocuments(ctx context.Context, filter CategoryFilter) []*Document

	// GetDocumentContent returns the normalized text of a page.
	// An empty string means the content is unavailable.
	GetDocumentContent(ctx context.Context, path string) string

	// GetDocument returns the page with its metadata.
	GetDocument(ctx context.Context, path string) *DocumentDetail

	// GetDocumentMarkdown returns the content region of a page as Markdown.
	GetDocumentMarkdown(ctx context.Context, path string) string

	// SearchDocuments ranks catalog documents against query.
	// A limit of zero or less selects the default limit.
	SearchDocuments(ctx context.Context, query string, filter CategoryFilter, limit int) []*SearchResult

	// GetDocumentStructure groups the whole catalog by category.
	GetDocumentStructure(ctx context.Context) *DocumentStructure

	// SiteInfo describes the site and cache state.
	SiteInfo(ctx context.Context) *SiteInfo
}
