package main

import (
	"fmt"

	"github.com/fwojciec/sitedoc"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	doc := deps.Service.GetDocument(deps.Ctx, c.Path)
	if doc == nil {
		fmt.Fprintf(deps.Stderr, "error: document %q not available. Use 'sitedoc list' to see known paths.\n", c.Path)
		return sitedoc.Errorf(sitedoc.ENOTFOUND, "document %q not available", c.Path)
	}

	content := doc.Content
	if c.Markdown {
		md := deps.Service.GetDocumentMarkdown(deps.Ctx, c.Path)
		if md == "" {
			fmt.Fprintf(deps.Stderr, "error: markdown not available for %q\n", c.Path)
			return sitedoc.Errorf(sitedoc.ENOTFOUND, "markdown not available for %q", c.Path)
		}
		content = md
	}

	fmt.Fprintf(deps.Stdout, "%s\n%s\n\n%s\n", doc.Title, doc.URL, content)
	return nil
}
