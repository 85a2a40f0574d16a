package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/set-ranker/internal/command"
	"github.com/jbeshir/set-ranker/internal/domain"
)

type ItemSentimentSet struct {
	SetSentimentCmd command.Command[command.SetItemSentimentRequest, domain.UserItemRating]
}

func (c ItemSentimentSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID := vars["item_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("item_id", itemID))

	bucket, err := domain.ParseSentimentBucket(vars["bucket"])
	if err != nil {
		writeError(ctx, w, "invalid sentiment bucket", err)
		return
	}

	rating, err := c.SetSentimentCmd.Execute(ctx, command.SetItemSentimentRequest{
		UserID: domain.UserIDFromContext(ctx),
		ItemID: itemID,
		Bucket: bucket,
	})
	if err != nil {
		writeError(ctx, w, "unable to set item sentiment", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, rating)
}
