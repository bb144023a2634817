package main

import (
	sdmcp "github.com/fwojciec/sitedoc/mcp"
)

// Run executes the serve command. Stdout carries protocol frames only;
// logs go to stderr.
func (c *ServeCmd) Run(deps *Dependencies) error {
	deps.Logger.Info("serving tools over stdio", "server", sdmcp.ServerName, "version", sdmcp.ServerVersion)
	return sdmcp.NewServer(deps.Service, deps.Logger).Serve(deps.Ctx, deps.Stdin, deps.Stdout)
}
