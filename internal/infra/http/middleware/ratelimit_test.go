package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_WindowAndReset(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }
	ctx := context.Background()

	assert.True(t, rl.Allow(ctx, "1.1.1.1"))
	assert.True(t, rl.Allow(ctx, "1.1.1.1"))
	assert.False(t, rl.Allow(ctx, "1.1.1.1"))
	assert.True(t, rl.Allow(ctx, "2.2.2.2"))

	now = now.Add(2 * time.Minute)
	assert.True(t, rl.Allow(ctx, "1.1.1.1"))
}

func TestRateLimiter_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	rl.Allow(context.Background(), "1.1.1.1")
	now = now.Add(5 * time.Minute)
	rl.sweep()

	assert.Empty(t, rl.visitors)
}

func TestRedisLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	l := NewRedisLimiter(client, 2, time.Minute)
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "leads:1.1.1.1"))
	assert.True(t, l.Allow(ctx, "leads:1.1.1.1"))
	assert.False(t, l.Allow(ctx, "leads:1.1.1.1"))
	assert.True(t, l.Allow(ctx, "leads:2.2.2.2"))

	mr.FastForward(2 * time.Minute)
	assert.True(t, l.Allow(ctx, "leads:1.1.1.1"))
}

func TestRedisLimiter_FailsOpen(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	mr.Close()

	l := NewRedisLimiter(client, 1, time.Minute)
	assert.True(t, l.Allow(context.Background(), "k"))
	assert.True(t, l.Allow(context.Background(), "k"))
}

func TestRateLimit_Returns429BeforeHandler(t *testing.T) {
	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	})
	h := RateLimit(NewRateLimiter(1, time.Minute), "leads")(next)

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/leads", nil)
		req.Header.Set("X-Forwarded-For", "9.9.9.9, 10.0.0.1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
	assert.Equal(t, 1, calls)
}

func TestRateLimit_SpoofedForwardedForDoesNotBypass(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	h := RealIP(nil)(RateLimit(NewRateLimiter(2, time.Minute), "leads")(next))

	accepted := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/leads", nil)
		req.RemoteAddr = "203.0.113.7:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusCreated {
			accepted++
		}
	}

	assert.Equal(t, 2, accepted)
}

func TestRealIP(t *testing.T) {
	proxies := []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}

	tests := []struct {
		name    string
		remote  string
		xff     []string
		realIP  string
		trusted []netip.Prefix
		want    string
	}{
		{"sem cabeçalho", "192.168.0.10:5555", nil, "", proxies, "192.168.0.10"},
		{"peer não confiável ignora XFF", "203.0.113.7:1", []string{"1.2.3.4"}, "", proxies, "203.0.113.7"},
		{"peer não confiável ignora X-Real-IP", "203.0.113.7:1", nil, "8.8.8.8", proxies, "203.0.113.7"},
		{"sem lista confiável", "10.0.0.2:1", []string{"1.2.3.4"}, "", nil, "10.0.0.2"},
		{"proxy confiável", "10.0.0.2:1", []string{"1.2.3.4"}, "", proxies, "1.2.3.4"},
		{"hop forjado à esquerda", "10.0.0.2:1", []string{"6.6.6.6, 1.2.3.4"}, "", proxies, "1.2.3.4"},
		{"cadeia de proxies", "10.0.0.2:1", []string{"1.2.3.4, 10.0.0.9"}, "", proxies, "1.2.3.4"},
		{"várias linhas", "10.0.0.2:1", []string{"6.6.6.6", "1.2.3.4"}, "", proxies, "1.2.3.4"},
		{"hop inválido", "10.0.0.2:1", []string{"lixo"}, "", proxies, "10.0.0.2"},
		{"X-Real-IP atrás de proxy", "10.0.0.2:1", nil, "8.8.8.8", proxies, "8.8.8.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := RealIP(tt.trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = ClientIP(r)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for _, v := range tt.xff {
				req.Header.Add("X-Forwarded-For", v)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}
