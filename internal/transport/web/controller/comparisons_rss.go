package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
)

// ComparisonsRSS publishes the user's most recent votes as an RSS feed.
type ComparisonsRSS struct {
	FeedBaseURL string
	FeedPath    string
	Lister      datasources.ComparisonLister
	Clock       func() time.Time
}

func (c ComparisonsRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	now := time.Now
	if c.Clock != nil {
		now = c.Clock
	}

	records, err := c.Lister.ListComparisons(ctx, domain.UserIDFromContext(ctx), defaultPage, defaultPageSize)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch comparisons for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	feed := &feeds.Feed{
		Title:       "Set Ranker Comparisons",
		Link:        &feeds.Link{Href: c.FeedBaseURL + c.FeedPath},
		Description: "Your most recent head-to-head set comparisons",
		Created:     now(),
	}
	for _, record := range records {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          record.ID,
			IsPermaLink: "false",
			Title:       fmt.Sprintf("%s beat %s", record.WinnerItemID, record.LoserItemID),
			Link:        &feeds.Link{Href: c.FeedBaseURL + "/v1/comparisons"},
			Description: fmt.Sprintf("Winner %s, loser %s", record.WinnerItemID, record.LoserItemID),
			Created:     record.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", "private, no-cache")

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
