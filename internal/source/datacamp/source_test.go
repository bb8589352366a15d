package datacamp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progress_tracker/internal/domain"
)

var testParams = domain.FetchParams{
	Group:     "cohort-a",
	Team:      "team-1",
	Days:      30,
	SortField: "xp",
	SortOrder: "desc",
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestSource(url string, maxPages, maxAttempts int) *Source {
	return New(Config{
		BaseURL:        url,
		Timeout:        5 * time.Second,
		MaxPages:       maxPages,
		MaxAttempts:    maxAttempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, testLogger())
}

func page(ids []int64, hasNext bool) APIResponse {
	resp := APIResponse{Pagination: Pagination{HasNextPage: hasNext}}
	for _, id := range ids {
		resp.Entries = append(resp.Entries, Entry{
			XP:     int(id) * 100,
			LastXP: "2025-11-01T10:00:00Z",
			User: User{
				ID:       id,
				FullName: fmt.Sprintf("Student %d", id),
				Email:    fmt.Sprintf("s%d@example.com", id),
				Slug:     fmt.Sprintf("s%d", id),
			},
		})
	}
	return resp
}

func pagedServer(t *testing.T, pages map[int]APIResponse, hits *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		n, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(pages[n])
	}))
}

func TestFetchAll_AggregatesPagesInOrder(t *testing.T) {
	srv := pagedServer(t, map[int]APIResponse{
		1: page([]int64{3, 1}, true),
		2: page([]int64{2, 3}, true),
		3: page([]int64{5}, false),
	}, nil)
	defer srv.Close()

	entries, err := newTestSource(srv.URL, 10, 1).FetchAll(context.Background(), "session=x", testParams)
	require.NoError(t, err)

	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.ExternalID
	}
	// duplicates from the server are passed through untouched
	assert.Equal(t, []int64{3, 1, 2, 3, 5}, ids)
	assert.Equal(t, "Student 3", entries[0].FullName)
	assert.Equal(t, 300, entries[0].XP)
	assert.Equal(t, "2025-11-01T10:00:00Z", entries[0].LastActivity)
}

func TestFetchAll_StopsOnEmptyPage(t *testing.T) {
	var hits int32
	srv := pagedServer(t, map[int]APIResponse{
		1: page([]int64{1}, true),
		2: page(nil, true),
		3: page([]int64{9}, false),
	}, &hits)
	defer srv.Close()

	entries, err := newTestSource(srv.URL, 10, 1).FetchAll(context.Background(), "c", testParams)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestFetchAll_SendsParamsAndCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "cohort-a", q.Get("group"))
		assert.Equal(t, "team-1", q.Get("team"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "30", q.Get("days"))
		assert.Equal(t, "xp", q.Get("sortField"))
		assert.Equal(t, "desc", q.Get("sortOrder"))
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))
		_ = json.NewEncoder(w).Encode(page([]int64{1}, false))
	}))
	defer srv.Close()

	_, err := newTestSource(srv.URL, 10, 1).FetchAll(context.Background(), "session=abc", testParams)
	require.NoError(t, err)
}

func TestFetchAll_MalformedResponseAborts(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`{"entries": [`))
	}))
	defer srv.Close()

	entries, err := newTestSource(srv.URL, 10, 3).FetchAll(context.Background(), "c", testParams)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Nil(t, entries)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "decode errors are not retried")
}

func TestFetchAll_ErrorOnLaterPageDiscardsEarlierPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(page([]int64{1}, true))
	}))
	defer srv.Close()

	entries, err := newTestSource(srv.URL, 10, 1).FetchAll(context.Background(), "c", testParams)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Contains(t, err.Error(), "unexpected status: 401")
	assert.Nil(t, entries)
}

func TestFetchAll_RetriesServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(page([]int64{1, 2}, false))
	}))
	defer srv.Close()

	entries, err := newTestSource(srv.URL, 10, 3).FetchAll(context.Background(), "c", testParams)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestFetchAll_PageLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(page([]int64{1}, true))
	}))
	defer srv.Close()

	entries, err := newTestSource(srv.URL, 3, 1).FetchAll(context.Background(), "c", testParams)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Contains(t, err.Error(), "page limit 3")
	assert.Nil(t, entries)
}

func TestCalculateBackoff(t *testing.T) {
	s := New(Config{InitialBackoff: time.Second, MaxBackoff: 5 * time.Second, MaxAttempts: 5}, testLogger())

	assert.Equal(t, time.Second, s.calculateBackoff(1))
	assert.Equal(t, 2*time.Second, s.calculateBackoff(2))
	assert.Equal(t, 4*time.Second, s.calculateBackoff(3))
	assert.Equal(t, 5*time.Second, s.calculateBackoff(4))
}
