// Package client provides an HTTP client for the set ranker API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jbeshir/set-ranker/internal/domain"
	"github.com/jbeshir/set-ranker/internal/session"
)

var _ session.Backend = (*Client)(nil)

// APIError is a non-2xx response from the API. It unwraps to the domain
// error matching its code, when there is one.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error (status %d, %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return domain.ErrorFromCode(e.Code)
}

// Candidates is the response of the candidates endpoint.
type Candidates struct {
	Target     domain.UserItemRating   `json:"rating"`
	Candidates []domain.UserItemRating `json:"candidates"`
}

// VoteResult is the response of the vote endpoint.
type VoteResult struct {
	Success         bool   `json:"success"`
	AlreadyRecorded bool   `json:"already_recorded"`
	ComparisonID    string `json:"comparison_id"`
	WinnerRating    int    `json:"winner_rating"`
	LoserRating     int    `json:"loser_rating"`
}

type rankingsResponse struct {
	Data []domain.UserItemRating `json:"data"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Client is an HTTP client for the set ranker API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	return c.doRequestWithBody(ctx, method, path, nil)
}

func (c *Client) doRequestWithBody(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(body)}
		var decoded errorResponse
		if json.Unmarshal(body, &decoded) == nil && decoded.Error != "" {
			apiErr.Code = decoded.Code
			apiErr.Message = decoded.Error
		}
		return apiErr
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// CountItems returns how many items the user has logged, optionally within
// one sentiment bucket.
func (c *Client) CountItems(ctx context.Context, bucket *domain.SentimentBucket) (int64, error) {
	path := "/v1/items/count"
	if bucket != nil {
		path += "?" + url.Values{"bucket": {string(*bucket)}}.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return 0, err
	}

	var result countResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return 0, err
	}
	return result.Count, nil
}

// GetCandidates returns the comparison candidates for a target item.
func (c *Client) GetCandidates(ctx context.Context, targetItemID string) ([]domain.UserItemRating, error) {
	result, err := c.GetCandidatesWithTarget(ctx, targetItemID, nil)
	if err != nil {
		return nil, err
	}
	return result.Candidates, nil
}

// GetCandidatesWithTarget returns the target's rating along with its
// candidates, leaving out any ids in exclude.
func (c *Client) GetCandidatesWithTarget(
	ctx context.Context, targetItemID string, exclude []string,
) (*Candidates, error) {
	path := "/v1/items/" + url.PathEscape(targetItemID) + "/candidates"
	if len(exclude) > 0 {
		path += "?" + url.Values{"exclude": {strings.Join(exclude, ",")}}.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var result Candidates
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SubmitVote records that winner beat loser.
func (c *Client) SubmitVote(ctx context.Context, winnerItemID, loserItemID string) (domain.CommitResult, error) {
	body, err := json.Marshal(map[string]string{
		"winner_item_id": winnerItemID,
		"loser_item_id":  loserItemID,
	})
	if err != nil {
		return domain.CommitResult{}, fmt.Errorf("marshaling request: %w", err)
	}

	resp, err := c.doRequestWithBody(ctx, http.MethodPost, "/v1/votes", bytes.NewReader(body))
	if err != nil {
		return domain.CommitResult{}, err
	}

	var result VoteResult
	if err := c.handleResponse(resp, &result); err != nil {
		return domain.CommitResult{}, err
	}

	return domain.CommitResult{
		Record: domain.ComparisonRecord{
			ID:           result.ComparisonID,
			WinnerItemID: winnerItemID,
			LoserItemID:  loserItemID,
		},
		Winner:          domain.UserItemRating{ItemID: winnerItemID, EloRating: result.WinnerRating},
		Loser:           domain.UserItemRating{ItemID: loserItemID, EloRating: result.LoserRating},
		AlreadyRecorded: result.AlreadyRecorded,
	}, nil
}

// ListRankings retrieves the user's items ordered by rating.
func (c *Client) ListRankings(
	ctx context.Context, desc bool, bucket *domain.SentimentBucket,
) ([]domain.UserItemRating, error) {
	params := url.Values{}
	if desc {
		params.Set("sort", "desc")
	} else {
		params.Set("sort", "asc")
	}
	if bucket != nil {
		params.Set("bucket", string(*bucket))
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/rankings?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var result rankingsResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// SetItemSentiment logs an item into a sentiment bucket.
func (c *Client) SetItemSentiment(
	ctx context.Context, itemID string, bucket domain.SentimentBucket,
) (*domain.UserItemRating, error) {
	path := "/v1/items/" + url.PathEscape(itemID) + "/sentiment/" + url.PathEscape(string(bucket))

	resp, err := c.doRequest(ctx, http.MethodPost, path)
	if err != nil {
		return nil, err
	}

	var result domain.UserItemRating
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
