package commands

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/teranos/namematch/comparator"
)

// ServeMCPCmd exposes the comparator as an MCP tool over stdio, so an
// editor or agent can ask "do these two names match" without shelling
// out to the CLI per call.
var ServeMCPCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Serve the name comparator as an MCP tool over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmp, err := comparator.New(refDataDir(cmd))
		if err != nil {
			return fmt.Errorf("failed to load reference data: %w", err)
		}

		srv := newCompareMCPServer(cmp)
		return srv.Serve()
	},
}

// compareMCPServer wraps a Comparator and exposes it via Model Context Protocol.
type compareMCPServer struct {
	cmp    *comparator.Comparator
	server *server.MCPServer
}

func newCompareMCPServer(cmp *comparator.Comparator) *compareMCPServer {
	s := &compareMCPServer{cmp: cmp}

	s.server = server.NewMCPServer(
		"namematch",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	s.registerTools()

	return s
}

func (s *compareMCPServer) registerTools() {
	compareTool := mcp.NewTool("compare_names",
		mcp.WithDescription("Decide whether two human names plausibly refer to the same person"),
		mcp.WithString("name_a",
			mcp.Required(),
			mcp.Description("The first name to compare"),
		),
		mcp.WithString("name_b",
			mcp.Required(),
			mcp.Description("The second name to compare"),
		),
	)
	s.server.AddTool(compareTool, s.handleCompareNames)
}

func (s *compareMCPServer) handleCompareNames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nameA, err := request.RequireString("name_a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	nameB, err := request.RequireString("name_b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.cmp.Compare(nameA, nameB)

	verdict := "do not match"
	if result.Match {
		verdict = "match"
	}
	text := fmt.Sprintf("%q and %q %s (trace %s, too_short=%v, too_generic=%v)",
		nameA, nameB, verdict, result.TraceID, result.TooShort, result.TooGeneric)

	return mcp.NewToolResultText(text), nil
}

// Serve starts the MCP server using stdio transport.
func (s *compareMCPServer) Serve() error {
	return server.ServeStdio(s.server)
}
