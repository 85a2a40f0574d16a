package controller

import (
	"net/http"

	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
)

type ComparisonsListResponse struct {
	Data     []domain.ComparisonRecord `json:"data"`
	Metadata ComparisonsListMetadata   `json:"metadata"`
}

type ComparisonsListMetadata struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type ComparisonsList struct {
	Lister datasources.ComparisonLister
}

func (c ComparisonsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	records, err := c.Lister.ListComparisons(ctx, domain.UserIDFromContext(ctx), page, pageSize)
	if err != nil {
		writeError(ctx, w, "unable to list comparisons", &domain.PersistenceError{Op: "listing comparisons", Err: err})
		return
	}

	writeJSON(ctx, w, http.StatusOK, ComparisonsListResponse{
		Data:     records,
		Metadata: ComparisonsListMetadata{Page: page, PageSize: pageSize},
	})
}
