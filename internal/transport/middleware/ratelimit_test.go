package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doFrom(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reports", nil)
	req.RemoteAddr = remoteAddr
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_PerAddressBudget(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		perMinute int
		addrs     []string
		want      []int
	}{
		{
			name:      "within budget",
			perMinute: 3,
			addrs:     []string{"1.2.3.4:1", "1.2.3.4:2", "1.2.3.4:3"},
			want:      []int{http.StatusOK, http.StatusOK, http.StatusOK},
		},
		{
			name:      "port does not reset the bucket",
			perMinute: 2,
			addrs:     []string{"1.2.3.4:1", "1.2.3.4:2", "1.2.3.4:3"},
			want:      []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
		},
		{
			name:      "addresses have separate buckets",
			perMinute: 1,
			addrs:     []string{"1.1.1.1:1", "2.2.2.2:1", "1.1.1.1:1", "2.2.2.2:1"},
			want:      []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rl := NewRateLimiter(time.Minute)
			defer rl.Stop()
			handler := RateLimit(rl, "submit", tc.perMinute, slog.Default())(okHandler())

			for i, addr := range tc.addrs {
				rec := doFrom(handler, addr)
				require.Equal(t, tc.want[i], rec.Code, "request %d from %s", i, addr)
				if rec.Code == http.StatusTooManyRequests {
					assert.NotEmpty(t, rec.Header().Get("Retry-After"))
					assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
				}
			}
		})
	}
}

func TestRateLimiter_ScopesIndependent(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	submit := RateLimit(rl, "submit", 1, slog.Default())(okHandler())
	classify := RateLimit(rl, "classify", 1, slog.Default())(okHandler())

	assert.Equal(t, http.StatusOK, doFrom(submit, "5.5.5.5:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doFrom(submit, "5.5.5.5:1").Code)
	assert.Equal(t, http.StatusOK, doFrom(classify, "5.5.5.5:1").Code)
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	ctx := context.Background()
	for range 60 {
		_, _, _ = rl.Allow(ctx, "submit:3.3.3.3", 60)
	}
	ok, retry, err := rl.Allow(ctx, "submit:3.3.3.3", 60)
	require.NoError(t, err)
	require.False(t, ok)
	assert.Positive(t, retry)

	time.Sleep(retry + 100*time.Millisecond)

	ok, _, err = rl.Allow(ctx, "submit:3.3.3.3", 60)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_UsesClientIPFromContext(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := ClientIP(true)(RateLimit(rl, "submit", 1, slog.Default())(okHandler()))

	send := func(forwardedFor string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reports", nil)
		req.RemoteAddr = "10.0.0.1:80"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("8.8.8.8"))
	assert.Equal(t, http.StatusTooManyRequests, send("8.8.8.8, 10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("9.9.9.9"))
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, int) (bool, time.Duration, error) {
	return false, 0, errors.New("connection refused")
}

func TestRateLimit_FailsOpen(t *testing.T) {
	handler := RateLimit(failingLimiter{}, "submit", 1, slog.Default())(okHandler())

	assert.Equal(t, http.StatusOK, doFrom(handler, "1.2.3.4:1").Code)
}

func TestRateLimiter_ZeroLimitDisables(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	ok, _, err := rl.Allow(context.Background(), "k", 0)
	require.NoError(t, err)
	assert.True(t, ok)
}
