package security

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter throttles the unauthenticated auth endpoints (login and signup)
// per client IP. Each client gets a fixed budget of attempts per window; the
// budget resets when a full window has passed since the last reset.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	limit   int
	window  time.Duration
}

type clientBucket struct {
	remaining int
	resetAt   time.Time
}

// NewRateLimiter allows limit attempts per window for each client IP and
// starts a janitor that drops idle clients.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientBucket),
		limit:   limit,
		window:  window,
	}
	go rl.janitor()
	return rl
}

// Allow reports whether another attempt from ip fits within its budget.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.clients[ip]
	if !ok || now.After(b.resetAt) {
		b = &clientBucket{remaining: rl.limit, resetAt: now.Add(rl.window)}
		rl.clients[ip] = b
	}

	if b.remaining == 0 {
		return false
	}
	b.remaining--
	return true
}

// janitor drops buckets whose window has long expired so the map does not
// grow with every IP that ever hit the login page.
func (rl *RateLimiter) janitor() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, b := range rl.clients {
			if now.Sub(b.resetAt) > rl.window {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// GetClientIP resolves the originating client address. Behind a proxy the
// first entry of X-Forwarded-For is the client; otherwise the connection's
// remote address is used, with the port stripped.
func GetClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			forwarded = forwarded[:i]
		}
		return strings.TrimSpace(forwarded)
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
