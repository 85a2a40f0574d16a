package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/set-ranker/internal/command"
	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
	"github.com/jbeshir/set-ranker/internal/transport/web/controller"
)

type Commands struct {
	GetCandidates    command.Command[command.GetCandidatesRequest, command.GetCandidatesResult]
	SubmitVote       command.Command[command.SubmitVoteRequest, domain.CommitResult]
	ListRankings     command.Command[command.ListRankingsRequest, []domain.UserItemRating]
	SetItemSentiment command.Command[command.SetItemSentimentRequest, domain.UserItemRating]
}

func MakeRouter(
	ratings datasources.RatingRepository,
	commands Commands,
	rssFeedBaseURL string,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/items/count", requireAuthMiddleware(controller.ItemCount{
		Counter: ratings,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/items/{item_id}/candidates", requireAuthMiddleware(controller.CandidatesGet{
		GetCandidatesCmd: commands.GetCandidates,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/items/{item_id}/sentiment/{bucket}", requireAuthMiddleware(controller.ItemSentimentSet{
		SetSentimentCmd: commands.SetItemSentiment,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/votes", requireAuthMiddleware(controller.VoteSubmit{
		SubmitVoteCmd: commands.SubmitVote,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/rankings", requireAuthMiddleware(controller.RankingsList{
		ListRankingsCmd: commands.ListRankings,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/comparisons", requireAuthMiddleware(controller.ComparisonsList{
		Lister: ratings,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/comparisons/rss", requireAuthMiddleware(controller.ComparisonsRSS{
		FeedBaseURL: rssFeedBaseURL,
		FeedPath:    "/v1/comparisons/rss",
		Lister:      ratings,
	})).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
