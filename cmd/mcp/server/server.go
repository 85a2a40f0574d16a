// Package server provides the MCP server implementation.
package server

import (
	"context"

	"github.com/jbeshir/set-ranker/internal/domain"
	"github.com/jbeshir/set-ranker/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// API is the part of the HTTP client the tools use directly, beyond what the
// comparison session needs.
type API interface {
	session.Backend
	ListRankings(ctx context.Context, desc bool, bucket *domain.SentimentBucket) ([]domain.UserItemRating, error)
	SetItemSentiment(ctx context.Context, itemID string, bucket domain.SentimentBucket) (*domain.UserItemRating, error)
}

// Server is the MCP server for the set ranker.
type Server struct {
	client    API
	session   *session.Session
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client. All tools
// share one comparison session.
func NewServer(apiClient API, sessionConfig session.Config) *Server {
	s := &Server{
		client:  apiClient,
		session: session.New(apiClient, sessionConfig),
	}

	s.mcpServer = server.NewMCPServer(
		"set-ranker",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("log_item_sentiment",
		mcp.WithDescription(
			"Log a set into a sentiment bucket. New sets start at rating 1500; moving a set to "+
				"another bucket resets its rating."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The UUID of the set"),
		),
		mcp.WithString("bucket",
			mcp.Required(),
			mcp.Description("Sentiment bucket: 'liked', 'neutral' or 'disliked'"),
		),
	), s.handleLogItemSentiment)

	s.mcpServer.AddTool(mcp.NewTool("open_comparison",
		mcp.WithDescription(
			"Start a comparison round for a set. Presents up to five sets from the same bucket, "+
				"one at a time, to compare against it. Replaces any round already open."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The UUID of the set being ranked"),
		),
		mcp.WithString("bucket",
			mcp.Required(),
			mcp.Description("The set's sentiment bucket: 'liked', 'neutral' or 'disliked'"),
		),
	), s.handleOpenComparison)

	s.mcpServer.AddTool(mcp.NewTool("current_comparison",
		mcp.WithDescription("Show the state of the open comparison round and the pair being presented."),
	), s.handleCurrentComparison)

	s.mcpServer.AddTool(mcp.NewTool("vote",
		mcp.WithDescription(
			"Vote on the presented pair. The round advances only once the vote is recorded; "+
				"on failure or timeout the same pair stays presented."),
		mcp.WithString("winner",
			mcp.Required(),
			mcp.Description("Which set was better: 'target' for the set being ranked, 'candidate' for the other"),
		),
	), s.handleVote)

	s.mcpServer.AddTool(mcp.NewTool("close_comparison",
		mcp.WithDescription("Abandon the open comparison round. Votes already recorded are kept."),
	), s.handleCloseComparison)

	s.mcpServer.AddTool(mcp.NewTool("list_rankings",
		mcp.WithDescription("List your sets ordered by rating."),
		mcp.WithString("sort",
			mcp.Description("'desc' for best first (default) or 'asc' for worst first"),
		),
		mcp.WithString("bucket",
			mcp.Description("Only include sets in this sentiment bucket"),
		),
	), s.handleListRankings)

	s.mcpServer.AddTool(mcp.NewTool("count_items",
		mcp.WithDescription("Count the sets you have logged."),
		mcp.WithString("bucket",
			mcp.Description("Only count sets in this sentiment bucket"),
		),
	), s.handleCountItems)
}
