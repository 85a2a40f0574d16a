package controller

import (
	"net/http"

	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
)

type ItemCountResponse struct {
	Count int64 `json:"count"`
}

type ItemCount struct {
	Counter datasources.ItemCounter
}

func (c ItemCount) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bucket, ok, err := bucketFromQuery(r.URL.Query().Get("bucket"))
	if err != nil {
		writeError(ctx, w, "invalid item count bucket", err)
		return
	}
	var filter *domain.SentimentBucket
	if ok {
		filter = &bucket
	}

	count, err := c.Counter.CountItems(ctx, domain.UserIDFromContext(ctx), filter)
	if err != nil {
		writeError(ctx, w, "unable to count items", &domain.PersistenceError{Op: "counting items", Err: err})
		return
	}

	writeJSON(ctx, w, http.StatusOK, ItemCountResponse{Count: count})
}
