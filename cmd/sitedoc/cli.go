package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sitedoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service sitedoc.DocumentService
}

// Config holds the site and cache settings shared by all commands.
type Config struct {
	URL        string        `name:"url" env:"SITEDOC_URL" default:"https://moli2.zt.com.cn/zongheng-doc" help:"Documentation site base URL"`
	Timeout    time.Duration `env:"SITEDOC_TIMEOUT" default:"10s" help:"Timeout per fetch attempt"`
	Insecure   bool          `env:"SITEDOC_INSECURE" help:"Skip TLS certificate verification for site requests"`
	UserAgent  string        `env:"SITEDOC_USER_AGENT" default:"sitedoc/1.0" help:"User-Agent header sent to the site"`
	CrawlLimit int           `env:"SITEDOC_CRAWL_LIMIT" default:"100" help:"Maximum pages visited by link crawling"`
	RPS        float64       `name:"rps" env:"SITEDOC_RPS" default:"10" help:"Crawl requests per second per host (0 disables pacing)"`
	ContentTTL time.Duration `env:"SITEDOC_CONTENT_TTL" default:"5m" help:"Page content cache lifetime"`
	SearchTTL  time.Duration `env:"SITEDOC_SEARCH_TTL" default:"10m" help:"Search result cache lifetime"`
	CatalogTTL time.Duration `env:"SITEDOC_CATALOG_TTL" default:"30m" help:"Document catalog cache lifetime"`
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config `embed:""`

	LogLevel string `env:"SITEDOC_LOG_LEVEL" enum:"debug,info,warn,error" default:"info" help:"Log level (debug, info, warn, error)"`

	Serve     ServeCmd     `cmd:"" help:"Serve documentation tools over stdio"`
	List      ListCmd      `cmd:"" help:"List documents"`
	Search    SearchCmd    `cmd:"" help:"Search documents"`
	Get       GetCmd       `cmd:"" help:"Print one document"`
	Structure StructureCmd `cmd:"" help:"Print documents grouped by category"`
	Info      InfoCmd      `cmd:"" help:"Print site and cache information"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `short:"c" enum:"all,frontend,backend" default:"all" help:"Category filter (all, frontend, backend)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string `arg:"" help:"Search query"`
	Category string `short:"c" enum:"all,frontend,backend" default:"all" help:"Category filter (all, frontend, backend)"`
	Limit    int    `short:"n" default:"10" help:"Maximum number of results"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Path     string `arg:"" help:"Document path, e.g. /backend/getting-started"`
	Markdown bool   `short:"m" help:"Print the content region as Markdown"`
}

// StructureCmd is the "structure" subcommand.
type StructureCmd struct{}

// InfoCmd is the "info" subcommand.
type InfoCmd struct{}
