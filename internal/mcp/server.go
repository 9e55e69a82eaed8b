package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Ko-stant/dungeon-layout-engine/internal/session"
)

// Server exposes the layout pipeline as MCP tools so a level generator can
// check its output before handing it to a game.
type Server struct {
	opts session.Options
	mcp  *sdk.Server
}

func NewServer(opts session.Options, version string) *Server {
	s := &Server{
		opts: opts,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "levelctl",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
