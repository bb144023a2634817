package main

import (
	"fmt"

	"github.com/fwojciec/sitedoc"
)

// Run executes the structure command.
func (c *StructureCmd) Run(deps *Dependencies) error {
	fmt.Fprint(deps.Stdout, sitedoc.FormatStructure(deps.Service.GetDocumentStructure(deps.Ctx)))
	return nil
}
