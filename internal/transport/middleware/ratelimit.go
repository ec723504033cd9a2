package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/incident-desk/pkg/ctxutil"
)

// Limiter decides whether one more request for key fits in perMinute.
type Limiter interface {
	Allow(ctx context.Context, key string, perMinute int) (bool, time.Duration, error)
}

// RateLimiter is an in-process Limiter with one token bucket per key.
type RateLimiter struct {
	visitors sync.Map // map[string]*visitor
	stop     chan struct{}
}

type visitor struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Allow takes one token from the key's bucket. The bucket holds perMinute
// tokens and refills continuously.
func (rl *RateLimiter) Allow(_ context.Context, key string, perMinute int) (bool, time.Duration, error) {
	if perMinute <= 0 {
		return true, 0, nil
	}

	v := rl.visitor(key+"|"+strconv.Itoa(perMinute), perMinute)

	v.mu.Lock()
	v.lastSeen = time.Now()
	v.mu.Unlock()

	res := v.limiter.Reserve()
	if !res.OK() {
		return false, time.Minute, nil
	}
	if delay := res.Delay(); delay > 0 {
		res.Cancel()
		return false, delay, nil
	}
	return true, 0, nil
}

func (rl *RateLimiter) visitor(key string, perMinute int) *visitor {
	if v, ok := rl.visitors.Load(key); ok {
		return v.(*visitor)
	}
	v, _ := rl.visitors.LoadOrStore(key, &visitor{
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		lastSeen: time.Now(),
	})
	return v.(*visitor)
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.visitors.Range(func(key, value any) bool {
				v := value.(*visitor)
				v.mu.Lock()
				idle := now.Sub(v.lastSeen)
				v.mu.Unlock()
				if idle > 10*time.Minute {
					rl.visitors.Delete(key)
				}
				return true
			})
		}
	}
}

// RateLimit limits requests per client address within scope. The address
// comes from ClientIP, falling back to RemoteAddr. Limiter errors let the
// request through.
func RateLimit(l Limiter, scope string, perMinute int, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ctxutil.ClientIPFromCtx(r.Context())
			if ip == "" {
				ip = clientIP(r, false)
			}

			ok, retry, err := l.Allow(r.Context(), scope+":"+ip, perMinute)
			if err != nil {
				logger.WarnContext(r.Context(), "rate limiter unavailable",
					slog.String("scope", scope),
					slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
