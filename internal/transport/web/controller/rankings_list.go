package controller

import (
	"net/http"

	"github.com/jbeshir/set-ranker/internal/command"
	"github.com/jbeshir/set-ranker/internal/domain"
)

type RankingsListResponse struct {
	Data []domain.UserItemRating `json:"data"`
}

type RankingsList struct {
	ListRankingsCmd command.Command[command.ListRankingsRequest, []domain.UserItemRating]
}

func (c RankingsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	q := r.URL.Query()

	desc, err := domain.ParseRankingSort(q.Get("sort"))
	if err != nil {
		logger.InfoContext(ctx, "invalid rankings sort", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_sort"})
		return
	}
	options := domain.RankingOptions{Desc: desc}

	bucket, ok, err := bucketFromQuery(q.Get("bucket"))
	if err != nil {
		writeError(ctx, w, "invalid rankings bucket", err)
		return
	}
	if ok {
		options.Bucket = &bucket
	}

	rankings, err := c.ListRankingsCmd.Execute(ctx, command.ListRankingsRequest{
		UserID:  domain.UserIDFromContext(ctx),
		Options: options,
	})
	if err != nil {
		writeError(ctx, w, "unable to list rankings", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, RankingsListResponse{Data: rankings})
}

// bucketFromQuery parses an optional bucket parameter.
func bucketFromQuery(raw string) (domain.SentimentBucket, bool, error) {
	if raw == "" {
		return "", false, nil
	}
	bucket, err := domain.ParseSentimentBucket(raw)
	if err != nil {
		return "", false, err
	}
	return bucket, true, nil
}
