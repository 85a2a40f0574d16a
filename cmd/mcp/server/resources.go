package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jbeshir/set-ranker/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"rankings://{sort}",
			"Your ranked sets",
			mcp.WithTemplateDescription(
				"All of your sets ordered by rating. Use 'desc' for best first "+
					"or 'asc' for worst first."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleRankingsResource,
	)
}

func (s *Server) handleRankingsResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, "rankings://") {
		return nil, fmt.Errorf("invalid rankings URI format: %s", uri)
	}

	desc, err := domain.ParseRankingSort(strings.TrimPrefix(uri, "rankings://"))
	if err != nil {
		return nil, fmt.Errorf("invalid sort in URI %s: %w", uri, err)
	}

	rankings, err := s.client.ListRankings(ctx, desc, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rankings: %w", err)
	}

	data, err := json.MarshalIndent(rankings, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rankings: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
