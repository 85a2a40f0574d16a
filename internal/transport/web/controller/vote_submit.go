package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/set-ranker/internal/command"
	"github.com/jbeshir/set-ranker/internal/domain"
)

const maxVoteBodyBytes = 4 << 10

type VoteSubmitRequest struct {
	WinnerItemID string `json:"winner_item_id"`
	LoserItemID  string `json:"loser_item_id"`
}

type VoteSubmitResponse struct {
	Success         bool   `json:"success"`
	AlreadyRecorded bool   `json:"already_recorded"`
	ComparisonID    string `json:"comparison_id"`
	WinnerRating    int    `json:"winner_rating"`
	LoserRating     int    `json:"loser_rating"`
}

type VoteSubmit struct {
	SubmitVoteCmd command.Command[command.SubmitVoteRequest, domain.CommitResult]
}

func (c VoteSubmit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body VoteSubmitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxVoteBodyBytes)).Decode(&body); err != nil {
		logger.InfoContext(ctx, "unable to decode vote body", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "invalid_body"})
		return
	}

	ctx = domain.ContextWithLogger(ctx, logger.With(
		"winner_item_id", body.WinnerItemID,
		"loser_item_id", body.LoserItemID))

	result, err := c.SubmitVoteCmd.Execute(ctx, command.SubmitVoteRequest{
		UserID:       domain.UserIDFromContext(ctx),
		WinnerItemID: body.WinnerItemID,
		LoserItemID:  body.LoserItemID,
	})
	if err != nil {
		writeError(ctx, w, "unable to submit vote", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, VoteSubmitResponse{
		Success:         true,
		AlreadyRecorded: result.AlreadyRecorded,
		ComparisonID:    result.Record.ID,
		WinnerRating:    result.Winner.EloRating,
		LoserRating:     result.Loser.EloRating,
	})
}
