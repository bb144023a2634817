package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fwojciec/sitedoc"
)

// Defaults applied when optional tool arguments are absent.
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

// Content formats accepted by get_doc_content.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

var categories = []string{
	string(sitedoc.FilterFrontend),
	string(sitedoc.FilterBackend),
	string(sitedoc.FilterAll),
}

func searchDocsTool() mcp.Tool {
	return mcp.NewTool("search_docs",
		mcp.WithDescription("Search the documentation site for pages relevant to a query"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query, Chinese or English keywords"),
		),
		mcp.WithString("category",
			mcp.Description("Category to search (frontend, backend, all)"),
			mcp.Enum(categories...),
			mcp.DefaultString(string(sitedoc.FilterAll)),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return"),
			mcp.DefaultNumber(DefaultSearchLimit),
			mcp.Min(1),
			mcp.Max(MaxSearchLimit),
		),
	)
}

func getDocContentTool() mcp.Tool {
	return mcp.NewTool("get_doc_content",
		mcp.WithDescription("Get the full content of one document"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Document path, for example /frontend/guides/getting-started"),
		),
		mcp.WithString("format",
			mcp.Description("Content format (text, markdown)"),
			mcp.Enum(FormatText, FormatMarkdown),
			mcp.DefaultString(FormatText),
		),
	)
}

func listDocsTool() mcp.Tool {
	return mcp.NewTool("list_docs",
		mcp.WithDescription("List all available documents"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("category",
			mcp.Description("Document category (frontend, backend, all)"),
			mcp.Enum(categories...),
			mcp.DefaultString(string(sitedoc.FilterAll)),
		),
	)
}

func getDocStructureTool() mcp.Tool {
	return mcp.NewTool("get_doc_structure",
		mcp.WithDescription("Get the documents grouped by category"),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func getSiteInfoTool() mcp.Tool {
	return mcp.NewTool("get_site_info",
		mcp.WithDescription("Get the site address, discovery method and cache state"),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

type searchResponse struct {
	Query    string                  `json:"query"`
	Category sitedoc.CategoryFilter  `json:"category"`
	Method   sitedoc.DiscoveryMethod `json:"discoveryMethod"`
	Results  []*sitedoc.SearchResult `json:"results"`
	Total    int                     `json:"total"`
}

type listResponse struct {
	Category  sitedoc.CategoryFilter  `json:"category"`
	Method    sitedoc.DiscoveryMethod `json:"discoveryMethod"`
	Documents []*sitedoc.Document     `json:"documents"`
	Total     int                     `json:"total"`
}

type markdownResponse struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Format  string `json:"format"`
	Content string `json:"content"`
}

type siteInfoResponse struct {
	*sitedoc.SiteInfo
	ContentTTL string `json:"cacheTimeout"`
	SearchTTL  string `json:"searchCacheTimeout"`
	CatalogTTL string `json:"catalogCacheTimeout"`
}

func (s *Server) handleSearchDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	filter, err := sitedoc.ParseCategoryFilter(req.GetString("category", string(sitedoc.FilterAll)))
	if err != nil {
		return mcp.NewToolResultError(sitedoc.ErrorMessage(err)), nil
	}
	limit := req.GetInt("limit", DefaultSearchLimit)
	if limit < 1 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	results := s.service.SearchDocuments(ctx, query, filter, limit)
	return s.jsonResult(searchResponse{
		Query:    query,
		Category: filter,
		Method:   s.method(ctx),
		Results:  results,
		Total:    len(results),
	})
}

func (s *Server) handleGetDocContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil || strings.TrimSpace(path) == "" {
		return mcp.NewToolResultError("path parameter is required"), nil
	}

	switch format := req.GetString("format", FormatText); format {
	case FormatText:
		detail := s.service.GetDocument(ctx, path)
		if detail == nil {
			return mcp.NewToolResultErrorf("document not found: %s", path), nil
		}
		return s.jsonResult(detail)
	case FormatMarkdown:
		detail := s.service.GetDocument(ctx, path)
		if detail == nil {
			return mcp.NewToolResultErrorf("document not found: %s", path), nil
		}
		md := s.service.GetDocumentMarkdown(ctx, path)
		if md == "" {
			return mcp.NewToolResultErrorf("markdown unavailable: %s", path), nil
		}
		return s.jsonResult(markdownResponse{
			Path:    detail.Path,
			Title:   detail.Title,
			URL:     detail.URL,
			Format:  FormatMarkdown,
			Content: md,
		})
	default:
		return mcp.NewToolResultErrorf("unknown format %q: expected text or markdown", format), nil
	}
}

func (s *Server) handleListDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := sitedoc.ParseCategoryFilter(req.GetString("category", string(sitedoc.FilterAll)))
	if err != nil {
		return mcp.NewToolResultError(sitedoc.ErrorMessage(err)), nil
	}

	docs := s.service.ListDocuments(ctx, filter)
	return s.jsonResult(listResponse{
		Category:  filter,
		Method:    s.method(ctx),
		Documents: docs,
		Total:     len(docs),
	})
}

func (s *Server) handleGetDocStructure(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.jsonResult(s.service.GetDocumentStructure(ctx))
}

func (s *Server) handleGetSiteInfo(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := s.service.SiteInfo(ctx)
	if info == nil {
		return mcp.NewToolResultError("site info unavailable"), nil
	}
	return s.jsonResult(siteInfoResponse{
		SiteInfo:   info,
		ContentTTL: info.ContentTTL.String(),
		SearchTTL:  info.SearchTTL.String(),
		CatalogTTL: info.CatalogTTL.String(),
	})
}

func (s *Server) method(ctx context.Context) sitedoc.DiscoveryMethod {
	if info := s.service.SiteInfo(ctx); info != nil {
		return info.DiscoveryMethod
	}
	return ""
}

func (s *Server) jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.logger.Error("encode tool result", "err", err)
		return mcp.NewToolResultError("failed to encode result"), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
