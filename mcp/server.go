// Package mcp exposes the document service as Model Context Protocol tools
// served over stdio.
package mcp

import (
	"context"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/fwojciec/sitedoc"
)

const (
	// ServerName is the MCP server name.
	ServerName = "sitedoc"
	// ServerVersion is the current server version.
	ServerVersion = "1.0.0"
)

const instructions = `Tools for searching and reading the zongheng framework documentation site.
Use search_docs to find pages, then get_doc_content with a result path to read one.`

// Server wraps the MCP server around a document service.
type Server struct {
	mcp     *server.MCPServer
	service sitedoc.DocumentService
	logger  *slog.Logger
}

// NewServer creates a server with all tools registered.
// A nil logger discards tool failure logs.
func NewServer(service sitedoc.DocumentService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		mcp: server.NewMCPServer(
			ServerName,
			ServerVersion,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
			server.WithInstructions(instructions),
		),
		service: service,
		logger:  logger,
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Serve reads requests from stdin and writes responses to stdout until ctx
// is canceled or stdin is closed.
func (s *Server) Serve(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, stdin, stdout)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(searchDocsTool(), s.handleSearchDocs)
	s.mcp.AddTool(getDocContentTool(), s.handleGetDocContent)
	s.mcp.AddTool(listDocsTool(), s.handleListDocs)
	s.mcp.AddTool(getDocStructureTool(), s.handleGetDocStructure)
	s.mcp.AddTool(getSiteInfoTool(), s.handleGetSiteInfo)
}
