package main

import (
	"fmt"
	"strings"
)

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	info := deps.Service.SiteInfo(deps.Ctx)

	fmt.Fprintf(deps.Stdout, "site:          %s\n", info.BaseURL)
	fmt.Fprintf(deps.Stdout, "version:       %s\n", info.Version)
	fmt.Fprintf(deps.Stdout, "discovery:     %s\n", info.DiscoveryMethod)
	fmt.Fprintf(deps.Stdout, "documents:     %d\n", info.DocumentCount)
	fmt.Fprintf(deps.Stdout, "content cache: %d entries, ttl %s\n", info.ContentCacheSize, info.ContentTTL)
	fmt.Fprintf(deps.Stdout, "search cache:  %d entries, ttl %s\n", info.SearchCacheSize, info.SearchTTL)
	fmt.Fprintf(deps.Stdout, "catalog ttl:   %s\n", info.CatalogTTL)
	fmt.Fprintf(deps.Stdout, "features:      %s\n", strings.Join(info.Features, ", "))
	return nil
}
