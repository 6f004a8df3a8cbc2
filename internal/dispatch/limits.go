package dispatch

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/applebridge/osascript-mcp-server/internal/catalog"
)

// limiter caps tool usage by total count and rate per minute.
type limiter struct {
	mu       sync.Mutex
	count    int
	maxTotal int
	rate     *rate.Limiter
}

func newLimiter(cfg *catalog.LimitsConfig) *limiter {
	if cfg == nil || (cfg.MaxTotal == 0 && cfg.RatePerMinute == 0) {
		return nil
	}
	l := &limiter{maxTotal: cfg.MaxTotal}
	if cfg.RatePerMinute > 0 {
		l.rate = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RatePerMinute)), cfg.RatePerMinute)
	}
	return l
}

func (l *limiter) allow() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.maxTotal > 0 && l.count >= l.maxTotal {
		return fmt.Errorf("maximum number of calls exceeded")
	}
	if l.rate != nil && !l.rate.Allow() {
		return fmt.Errorf("rate limit exceeded")
	}
	l.count++
	return nil
}
