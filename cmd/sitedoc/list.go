package main

import (
	"fmt"

	"github.com/fwojciec/sitedoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter, err := sitedoc.ParseCategoryFilter(c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedoc.ErrorMessage(err))
		return err
	}

	docs := deps.Service.ListDocuments(deps.Ctx, filter)
	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, sitedoc.FormatDocuments(docs))
	fmt.Fprintf(deps.Stdout, "\n%d documents\n", len(docs))
	return nil
}
