// Package session runs the client side of a comparison round: it fetches a
// bounded queue of candidates for one target item, presents them one at a
// time and advances only when a vote is confirmed.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jbeshir/set-ranker/internal/domain"
)

var (
	ErrVoteInFlight  = errors.New("a vote is already being submitted")
	ErrNotPresenting = errors.New("no comparison is being presented")
	ErrSessionClosed = errors.New("comparison session was closed")
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StatePresenting
	StateVoting
	StateUpdated
	StateCompleted
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StatePresenting:
		return "presenting"
	case StateVoting:
		return "voting"
	case StateUpdated:
		return "updated"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Redirect tells the caller where to send the user once a session stops.
type Redirect string

const (
	RedirectNone     Redirect = ""
	RedirectResults  Redirect = "results"
	RedirectRankings Redirect = "rankings"
)

// Backend is the server API a session talks to. Calls are made on behalf of
// a single user.
type Backend interface {
	CountItems(ctx context.Context, bucket *domain.SentimentBucket) (int64, error)
	GetCandidates(ctx context.Context, targetItemID string) ([]domain.UserItemRating, error)
	SubmitVote(ctx context.Context, winnerItemID, loserItemID string) (domain.CommitResult, error)
}

type Config struct {
	MaxComparisons int
	VoteTimeout    time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxComparisons: 5,
		VoteTimeout:    10 * time.Second,
	}
}

// View is a snapshot of the session for display.
type View struct {
	State        State                  `json:"state"`
	TargetItemID string                 `json:"target_item_id,omitempty"`
	Bucket       domain.SentimentBucket `json:"bucket,omitempty"`
	Candidate    *domain.UserItemRating `json:"candidate,omitempty"`
	Completed    int                    `json:"completed"`
	Total        int                    `json:"total"`
	LastResult   *domain.CommitResult   `json:"last_result,omitempty"`
	Redirect     Redirect               `json:"redirect,omitempty"`
}

// Session is safe for concurrent use, but only one Open or Vote runs at a time.
type Session struct {
	backend Backend
	config  Config

	mu         sync.Mutex
	state      State
	target     string
	bucket     domain.SentimentBucket
	queue      []domain.UserItemRating
	index      int
	completed  map[string]struct{}
	lastResult *domain.CommitResult
	generation uint64
	cancel     context.CancelFunc
}

func New(backend Backend, config Config) *Session {
	return &Session{
		backend:   backend,
		config:    config,
		completed: make(map[string]struct{}),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Current() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(RedirectNone)
}

// Open starts a session for the target item, replacing any session already
// running. If the user has too few items to compare it returns
// domain.ErrPreconditionUnmet with a results redirect.
func (s *Session) Open(ctx context.Context, targetItemID string, bucket domain.SentimentBucket) (View, error) {
	logger := domain.LoggerFromContext(ctx).With("target_item_id", targetItemID, "bucket", bucket)

	s.mu.Lock()
	s.stopLocked()
	s.resetLocked()
	s.target = targetItemID
	s.bucket = bucket
	s.state = StateLoading
	gen := s.generation
	loadCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	queue, err := s.load(loadCtx, targetItemID, bucket)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		logger.DebugContext(ctx, "Discarding candidates loaded after session closed")
		return s.viewLocked(RedirectNone), ErrSessionClosed
	}
	s.cancel = nil

	if err != nil {
		s.state = StateAborted
		if errors.Is(err, domain.ErrPreconditionUnmet) {
			logger.InfoContext(ctx, "Nothing to compare, skipping session")
		} else {
			logger.WarnContext(ctx, "Failed to load comparison candidates", "error", err)
		}
		return s.viewLocked(RedirectResults), err
	}

	s.queue = queue
	if !s.advanceLocked(ctx) {
		s.state = StateAborted
		logger.InfoContext(ctx, "No usable candidates, skipping session")
		return s.viewLocked(RedirectResults), domain.ErrPreconditionUnmet
	}

	logger.DebugContext(ctx, "Opened comparison session", "queue_length", len(queue))
	return s.viewLocked(RedirectNone), nil
}

func (s *Session) load(
	ctx context.Context,
	targetItemID string,
	bucket domain.SentimentBucket,
) ([]domain.UserItemRating, error) {
	total, err := s.backend.CountItems(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("counting items: %w", err)
	}
	inBucket, err := s.backend.CountItems(ctx, &bucket)
	if err != nil {
		return nil, fmt.Errorf("counting %s items: %w", bucket, err)
	}
	if total <= 1 || inBucket <= 1 {
		return nil, domain.ErrPreconditionUnmet
	}

	candidates, err := s.backend.GetCandidates(ctx, targetItemID)
	if err != nil {
		return nil, fmt.Errorf("fetching candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, domain.ErrPreconditionUnmet
	}
	return candidates, nil
}

// Vote records the user's choice for the pair being presented. On timeout or
// a retryable failure the same pair stays presented.
func (s *Session) Vote(ctx context.Context, targetWins bool) (View, error) {
	s.mu.Lock()
	switch s.state {
	case StatePresenting:
	case StateVoting:
		s.mu.Unlock()
		return View{}, ErrVoteInFlight
	default:
		s.mu.Unlock()
		return View{}, ErrNotPresenting
	}

	target, candidate := s.target, s.queue[s.index]
	winner, loser := target, candidate.ItemID
	if !targetWins {
		winner, loser = loser, winner
	}
	s.state = StateVoting
	gen := s.generation
	voteCtx, cancel := context.WithTimeout(ctx, s.config.VoteTimeout)
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	logger := domain.LoggerFromContext(ctx).With(
		"target_item_id", target,
		"candidate_item_id", candidate.ItemID,
		"target_wins", targetWins)

	result, err := s.backend.SubmitVote(voteCtx, winner, loser)
	timedOut := errors.Is(voteCtx.Err(), context.DeadlineExceeded)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		logger.DebugContext(ctx, "Discarding vote result after session closed")
		return s.viewLocked(RedirectNone), ErrSessionClosed
	}
	s.cancel = nil

	switch {
	case err == nil:
	case timedOut:
		s.state = StatePresenting
		logger.WarnContext(ctx, "Vote submission timed out", "timeout", s.config.VoteTimeout)
		return s.viewLocked(RedirectNone), fmt.Errorf("%w after %s", domain.ErrVoteTimeout, s.config.VoteTimeout)
	case errors.Is(err, domain.ErrSelfComparison):
		logger.WarnContext(ctx, "Skipping self comparison candidate")
		s.index++
		return s.afterVoteLocked(ctx), nil
	case errors.Is(err, domain.ErrPreconditionUnmet), errors.Is(err, domain.ErrBucketMismatch):
		s.state = StateAborted
		logger.WarnContext(ctx, "Pair can no longer be compared, aborting session", "error", err)
		return s.viewLocked(RedirectResults), err
	default:
		s.state = StatePresenting
		logger.WarnContext(ctx, "Vote submission failed", "error", err)
		return s.viewLocked(RedirectNone), err
	}

	s.state = StateUpdated
	s.completed[candidate.ItemID] = struct{}{}
	s.lastResult = &result
	s.index++
	logger.DebugContext(ctx, "Vote recorded",
		"already_recorded", result.AlreadyRecorded,
		"completed", len(s.completed))

	return s.afterVoteLocked(ctx), nil
}

// Close aborts the session. Results of calls still in flight are discarded.
func (s *Session) Close() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	view := s.viewLocked(RedirectNone)
	s.resetLocked()
	s.state = StateAborted
	view.State = StateAborted
	return view
}

func (s *Session) afterVoteLocked(ctx context.Context) View {
	if len(s.completed) < s.limitLocked() && s.advanceLocked(ctx) {
		return s.viewLocked(RedirectNone)
	}

	s.state = StateCompleted
	view := s.viewLocked(RedirectRankings)
	domain.LoggerFromContext(ctx).InfoContext(ctx, "Comparison session completed",
		"target_item_id", s.target,
		"comparisons", len(s.completed))
	s.resetLocked()
	return view
}

// advanceLocked moves index to the next candidate that is neither the target
// nor already compared, and reports whether one was found.
func (s *Session) advanceLocked(ctx context.Context) bool {
	for ; s.index < len(s.queue); s.index++ {
		id := s.queue[s.index].ItemID
		if id == s.target {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "Skipping self comparison candidate",
				"target_item_id", s.target)
			continue
		}
		if _, done := s.completed[id]; done {
			continue
		}
		s.state = StatePresenting
		return true
	}
	return false
}

func (s *Session) limitLocked() int {
	return min(s.config.MaxComparisons, len(s.queue))
}

func (s *Session) viewLocked(redirect Redirect) View {
	view := View{
		State:        s.state,
		TargetItemID: s.target,
		Bucket:       s.bucket,
		Completed:    len(s.completed),
		Total:        s.limitLocked(),
		LastResult:   s.lastResult,
		Redirect:     redirect,
	}
	if (s.state == StatePresenting || s.state == StateVoting) && s.index < len(s.queue) {
		candidate := s.queue[s.index]
		view.Candidate = &candidate
	}
	return view
}

func (s *Session) stopLocked() {
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) resetLocked() {
	s.queue = nil
	s.index = 0
	s.completed = make(map[string]struct{})
	s.lastResult = nil
}
