package sitedoc

import (
	"context"
	"time"
)

// DiscoveryMethod names the strategy that produced a catalog.
type DiscoveryMethod string

// Discovery methods, in the order they are tried.
const (
	MethodSitemap DiscoveryMethod = "sitemap"
	MethodCrawl   DiscoveryMethod = "crawl"
	MethodPattern DiscoveryMethod = "pattern"
	MethodStatic  DiscoveryMethod = "static"
)

// Discovery is the result of one catalog refresh.
type Discovery struct {
	Method       DiscoveryMethod
	Documents    []*Document
	DiscoveredAt time.Time
}

// DiscoveryStrategy enumerates documents on the site.
type DiscoveryStrategy interface {
	// Name identifies the strategy in logs and catalog metadata.
	Name() DiscoveryMethod

	// Discover returns the documents it found. An empty result or an
	// error both mean the next strategy should be tried.
	Discover(ctx context.Context) ([]*Document, error)
}

// DocumentCatalog owns the deduplicated, time-boxed document list.
type DocumentCatalog interface {
	// Discovery returns the current catalog, refreshing it when expired.
	// The returned discovery always holds at least one document.
	Discovery(ctx context.Context) *Discovery
}

// URLFrontier is the queue of a bounded breadth-first walk. A URL enters
// the queue at most once.
type URLFrontier interface {
	// Push queues link and reports false when its URL was seen before.
	Push(link Link) bool

	// Pop removes the oldest queued link.
	Pop() (Link, bool)

	// Len is the number of queued links.
	Len() int

	// Seen reports whether url was ever pushed. False positives are
	// possible, false negatives are not.
	Seen(url string) bool
}

// DomainLimiter paces requests per host.
type DomainLimiter interface {
	// Wait blocks until a request to domain may proceed or ctx ends.
	Wait(ctx context.Context, domain string) error
}

// PlaceholderTitle names a document when neither its page nor its path
// yields a title.
const PlaceholderTitle = "文档标题"

// PlaceholderContent is the content of a discovered document whose page
// could not be retrieved. It is never treated as page text.
const PlaceholderContent = "content retrieval failed"

// Seed is a known page of the site.
type Seed struct {
	Path  string
	Title string
}

// DefaultSeeds lists the top-level pages the site is known to publish.
func DefaultSeeds() []Seed {
	return []Seed{
		{Path: "/", Title: "纵横框架文档"},
		{Path: "/frontend/guides/getting-started", Title: "前端框架快速开始"},
		{Path: "/frontend/components/", Title: "组件库"},
		{Path: "/frontend/guides/state-management", Title: "状态管理"},
		{Path: "/frontend/architecture/overview", Title: "架构概览"},
		{Path: "/backend/getting-started", Title: "后端框架快速开始"},
		{Path: "/backend/api-design", Title: "API设计指南"},
		{Path: "/backend/database", Title: "数据库"},
		{Path: "/backend/middleware", Title: "中间件"},
		{Path: "/deployment", Title: "部署指南"},
	}
}

// DefaultIndexPages lists pages whose links enumerate child documents.
func DefaultIndexPages() []string {
	return []string{
		"/frontend/components/",
		"/frontend/guides/",
	}
}

// StaticDocuments returns the hardcoded documents used when every
// discovery strategy comes back empty.
func StaticDocuments(codec *PathCodec) []*Document {
	seeds := []Seed{
		{Path: "/", Title: "纵横框架文档"},
		{Path: "/frontend/guides/getting-started", Title: "前端框架快速开始"},
		{Path: "/backend/getting-started", Title: "后端框架快速开始"},
		{Path: "/deployment", Title: "部署指南"},
	}
	docs := make([]*Document, 0, len(seeds))
	for _, s := range seeds {
		docs = append(docs, NewDocument(s.Path, s.Title, codec.ToFetchURL(s.Path), ""))
	}
	return docs
}
