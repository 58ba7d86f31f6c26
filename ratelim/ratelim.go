package ratelim

import (
	"net"
	"net/http"
	"sync"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"
)

// RateLimiter keeps a token bucket per client address.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func New(r rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		rate:     r,
		burst:    burst,
	}
}

// NewRateLimiter returns a limiter with the service defaults: 10 requests
// per second with a burst of 20 per client.
func NewRateLimiter() *RateLimiter {
	return New(10, 20)
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	lim, ok := rl.visitors[key]
	if !ok {
		lim = rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[key] = lim
	}
	return lim
}

// Limit wraps a handler, rejecting clients over their budget with 429.
func (rl *RateLimiter) Limit(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !rl.limiter(host).Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next(w, r, ps)
	}
}

var defaultLimiter = NewRateLimiter()

// RateLimit applies the package default limiter.
func RateLimit(next httprouter.Handle) httprouter.Handle {
	return defaultLimiter.Limit(next)
}
