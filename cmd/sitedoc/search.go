package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/sitedoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if strings.TrimSpace(c.Query) == "" {
		fmt.Fprintln(deps.Stderr, "error: query must not be empty")
		return sitedoc.Errorf(sitedoc.EINVALID, "empty query")
	}

	filter, err := sitedoc.ParseCategoryFilter(c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedoc.ErrorMessage(err))
		return err
	}

	results := deps.Service.SearchDocuments(deps.Ctx, c.Query, filter, c.Limit)
	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}

	fmt.Fprintln(deps.Stdout, sitedoc.FormatSearchResults(results))
	return nil
}
