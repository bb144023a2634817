package main

import (
	"log/slog"
	"net/url"

	"github.com/fwojciec/sitedoc"
	"github.com/fwojciec/sitedoc/crawl"
	"github.com/fwojciec/sitedoc/goquery"
	"github.com/fwojciec/sitedoc/htmltomarkdown"
	sdhttp "github.com/fwojciec/sitedoc/http"
	"github.com/fwojciec/sitedoc/search"
	sdslog "github.com/fwojciec/sitedoc/slog"
)

// NewService wires the discovery pipeline and document service for the
// site named by cfg. Every layer logs to logger.
func NewService(cfg Config, logger *slog.Logger) (sitedoc.DocumentService, error) {
	codec, err := sitedoc.NewPathCodec(cfg.URL)
	if err != nil {
		return nil, err
	}

	transport := sdhttp.NewFetcher(
		sdhttp.WithTimeout(cfg.Timeout),
		sdhttp.WithUserAgent(cfg.UserAgent),
		sdhttp.WithInsecureSkipVerify(cfg.Insecure),
	)
	fetcher := crawl.NewRetryFetcher(sdslog.NewLoggingFetcher(transport, logger))
	fetcher.AttemptTimeout = cfg.Timeout
	fetcher.Logger = logger

	selectors := sdslog.NewLoggingRegistry(goquery.NewDefaultRegistry(), goquery.NewDetector(), logger)
	pages := crawl.NewContentFetcher(fetcher, goquery.NewTextExtractor(), selectors, cfg.ContentTTL)
	pages.Logger = logger

	sitemaps := sdslog.NewLoggingSitemapService(sdhttp.NewSitemapService(fetcher), logger)
	sitemapStrategy := crawl.NewSitemapStrategy(sitemaps, pages, codec)
	sitemapStrategy.Logger = logger

	crawlStrategy := crawl.NewCrawlStrategy(pages, codec)
	crawlStrategy.MaxPages = cfg.CrawlLimit
	crawlStrategy.Limiter = crawl.NewDomainLimiter(cfg.RPS)
	crawlStrategy.Logger = logger

	patternStrategy := crawl.NewPatternStrategy(pages, codec)
	patternStrategy.Logger = logger

	chain := crawl.NewChain(codec,
		sdslog.NewLoggingStrategy(sitemapStrategy, logger),
		sdslog.NewLoggingStrategy(crawlStrategy, logger),
		sdslog.NewLoggingStrategy(patternStrategy, logger),
	)
	chain.Logger = logger

	catalog := crawl.NewCatalog(chain, cfg.CatalogTTL)
	catalog.Logger = logger

	svc := search.NewService(catalog, pages, codec, cfg.SearchTTL)
	svc.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(siteOrigin(codec)))
	svc.ContentCache = pages.Cache
	svc.ContentTTL = cfg.ContentTTL
	svc.CatalogTTL = cfg.CatalogTTL
	svc.Logger = logger

	return sdslog.NewLoggingService(svc, logger), nil
}

// siteOrigin returns the scheme and host of the site base URL.
func siteOrigin(codec *sitedoc.PathCodec) string {
	u, err := url.Parse(codec.BaseURL())
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
