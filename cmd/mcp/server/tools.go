package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jbeshir/set-ranker/internal/domain"
	"github.com/jbeshir/set-ranker/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) handleLogItemSentiment(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	itemID, ok := args["item_id"].(string)
	if !ok || itemID == "" {
		return mcp.NewToolResultError("item_id is required"), nil
	}

	bucket, err := parseBucket(args, true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rating, err := s.client.SetItemSentiment(ctx, itemID, *bucket)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to log sentiment: %v", err)), nil
	}

	msg := fmt.Sprintf("Logged set %s as '%s' (rating %d)", rating.ItemID, rating.Bucket, rating.EloRating)
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleOpenComparison(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	itemID, ok := args["item_id"].(string)
	if !ok || itemID == "" {
		return mcp.NewToolResultError("item_id is required"), nil
	}

	bucket, err := parseBucket(args, true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	view, err := s.session.Open(ctx, itemID, *bucket)
	if errors.Is(err, domain.ErrPreconditionUnmet) {
		return formatViewResult("Not enough sets in this bucket to compare yet.", view)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to open comparison: %v", err)), nil
	}

	return formatViewResult("Comparison round opened.", view)
}

func (s *Server) handleCurrentComparison(
	_ context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	return formatViewResult("", s.session.Current())
}

func (s *Server) handleVote(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	winner, ok := request.Params.Arguments["winner"].(string)
	if !ok || winner == "" {
		return mcp.NewToolResultError("winner is required (must be 'target' or 'candidate')"), nil
	}

	var targetWins bool
	switch strings.ToLower(winner) {
	case "target":
		targetWins = true
	case "candidate":
		targetWins = false
	default:
		return mcp.NewToolResultError("winner must be 'target' or 'candidate'"), nil
	}

	view, err := s.session.Vote(ctx, targetWins)
	switch {
	case errors.Is(err, domain.ErrVoteTimeout):
		return mcp.NewToolResultError("vote timed out; the same pair is still presented, try again"), nil
	case errors.Is(err, session.ErrVoteInFlight):
		return mcp.NewToolResultError("a vote is already being submitted"), nil
	case errors.Is(err, session.ErrNotPresenting):
		return mcp.NewToolResultError("no comparison is open; use open_comparison first"), nil
	case err != nil && view.State == session.StateAborted:
		return formatViewResult(fmt.Sprintf("Comparison round ended: %v", err), view)
	case err != nil:
		return mcp.NewToolResultError(fmt.Sprintf("failed to submit vote: %v", err)), nil
	}

	msg := "Vote recorded."
	if view.LastResult != nil && view.LastResult.AlreadyRecorded {
		msg = "This pair had already been compared; ratings unchanged."
	}
	if view.State == session.StateCompleted {
		msg += " Round complete."
	}
	return formatViewResult(msg, view)
}

func (s *Server) handleCloseComparison(
	_ context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	return formatViewResult("Comparison round closed.", s.session.Close())
}

func (s *Server) handleListRankings(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	sort, _ := args["sort"].(string)
	desc, err := domain.ParseRankingSort(sort)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	bucket, err := parseBucket(args, false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rankings, err := s.client.ListRankings(ctx, desc, bucket)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list rankings: %v", err)), nil
	}

	if len(rankings) == 0 {
		return mcp.NewToolResultText("No sets found."), nil
	}

	data, err := json.MarshalIndent(rankings, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format rankings: %v", err)), nil
	}

	msg := fmt.Sprintf("Found %d set(s):\n\n%s", len(rankings), string(data))
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleCountItems(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	bucket, err := parseBucket(request.Params.Arguments, false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	count, err := s.client.CountItems(ctx, bucket)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to count sets: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%d set(s)", count)), nil
}

// parseBucket reads the optional "bucket" argument. A nil bucket means none
// was given.
func parseBucket(args map[string]any, required bool) (*domain.SentimentBucket, error) {
	raw, _ := args["bucket"].(string)
	if raw == "" {
		if required {
			return nil, fmt.Errorf("bucket is required (must be 'liked', 'neutral' or 'disliked')")
		}
		return nil, nil
	}

	bucket, err := domain.ParseSentimentBucket(raw)
	if err != nil {
		return nil, err
	}
	return &bucket, nil
}

func formatViewResult(msg string, view session.View) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format comparison: %v", err)), nil
	}

	if msg == "" {
		return mcp.NewToolResultText(string(data)), nil
	}
	return mcp.NewToolResultText(msg + "\n\n" + string(data)), nil
}
