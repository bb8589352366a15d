package datacamp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"progress_tracker/internal/domain"
)

const (
	SourceID   = "datacamp"
	SourceName = "DataCamp Leaderboard"
)

// Config holds leaderboard source configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxPages       int
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source fetches the paginated team leaderboard.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	maxPages       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new leaderboard source.
func New(cfg Config, logger *slog.Logger) *Source {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		maxPages:       cfg.MaxPages,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchAll walks the leaderboard pages starting at 1 until a page comes back
// empty or reports no next page. Any failure aborts the whole fetch; entries
// are returned in server order without deduplication.
func (s *Source) FetchAll(ctx context.Context, credential string, params domain.FetchParams) ([]domain.LeaderboardEntry, error) {
	var all []Entry

	for page := 1; ; page++ {
		if s.maxPages > 0 && page > s.maxPages {
			return nil, fmt.Errorf("%w: page limit %d reached with more pages pending", domain.ErrFetchFailed, s.maxPages)
		}

		resp, err := s.fetchPage(ctx, credential, params, page)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %w", domain.ErrFetchFailed, page, err)
		}

		if len(resp.Entries) == 0 {
			break
		}

		all = append(all, resp.Entries...)

		s.logger.Debug("fetched page",
			"page", page,
			"entries", len(resp.Entries),
			"total", len(all),
		)

		if !resp.Pagination.HasNextPage {
			break
		}
	}

	s.logger.Info("finished fetching leaderboard", "entries", len(all))

	return transform(all), nil
}

func (s *Source) pageURL(params domain.FetchParams, page int) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("group", params.Group)
	q.Set("team", params.Team)
	q.Set("page", strconv.Itoa(page))
	q.Set("days", strconv.Itoa(params.Days))
	q.Set("sortField", params.SortField)
	q.Set("sortOrder", params.SortOrder)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (s *Source) fetchPage(ctx context.Context, credential string, params domain.FetchParams, page int) (*APIResponse, error) {
	pageURL, err := s.pageURL(params, page)
	if err != nil {
		return nil, err
	}

	var resp *APIResponse

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, pageURL, credential)
		if err == nil {
			return resp, nil
		}

		if !isTransient(err) || attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"page", page,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	if s.maxAttempts > 1 {
		return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
	}
	return nil, err
}

// statusError is returned for non-200 responses.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.code)
}

// decodeError marks a malformed body; those are never retried.
type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return "decode response: " + e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

func isTransient(err error) bool {
	var de *decodeError
	if errors.As(err, &de) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (s *Source) doRequest(ctx context.Context, pageURL, credential string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ProgressTracker/1.0")
	req.Header.Set("Cookie", credential)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode}
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &decodeError{err: err}
	}

	return &apiResp, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func transform(entries []Entry) []domain.LeaderboardEntry {
	result := make([]domain.LeaderboardEntry, 0, len(entries))

	for _, e := range entries {
		result = append(result, domain.LeaderboardEntry{
			ExternalID:   e.User.ID,
			FullName:     e.User.FullName,
			Email:        e.User.Email,
			Slug:         e.User.Slug,
			AvatarURL:    e.User.AvatarURL,
			Rank:         e.Rank,
			XP:           e.XP,
			Courses:      e.Courses,
			Chapters:     e.Chapters,
			LastActivity: e.LastXP,
		})
	}

	return result
}
