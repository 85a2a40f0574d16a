package controller

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jbeshir/set-ranker/internal/command"
	"github.com/jbeshir/set-ranker/internal/domain"
)

type CandidatesGet struct {
	GetCandidatesCmd command.Command[command.GetCandidatesRequest, command.GetCandidatesResult]
}

func (c CandidatesGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["item_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("item_id", itemID))

	req := command.GetCandidatesRequest{
		UserID:       domain.UserIDFromContext(ctx),
		TargetItemID: itemID,
	}
	if exclude := r.URL.Query().Get("exclude"); exclude != "" {
		req.ExcludeIDs = strings.Split(exclude, ",")
	}

	result, err := c.GetCandidatesCmd.Execute(ctx, req)
	if err != nil {
		writeError(ctx, w, "unable to get candidates", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}
