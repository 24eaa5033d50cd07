package p11trc

import (
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/peterbourgon/p11trc/ck"
	"github.com/peterbourgon/p11trc/internal/p11ring"
)

// Call summarizes a completed call through the proxy. It never includes
// argument contents.
type Call struct {
	ID       ulid.ULID     `json:"id"`
	Function string        `json:"function"`
	RV       ck.RV         `json:"rv"`
	Start    time.Time     `json:"start"`
	Duration time.Duration `json:"duration"`
}

// Err returns the status of the call as an error.
func (c Call) Err() error { return c.RV.Err() }

// FunctionStats summarizes every call of a single function.
type FunctionStats struct {
	Function string        `json:"function"`
	Calls    uint64        `json:"calls"`
	Errors   uint64        `json:"errors"`
	LastRV   ck.RV         `json:"last_rv"`
	Total    time.Duration `json:"total"`
}

// Mean returns the mean call duration.
func (s FunctionStats) Mean() time.Duration {
	if s.Calls <= 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}

var callIDEntropy = ulid.DefaultEntropy()

// collector keeps the most recent calls of every function, and running totals.
type collector struct {
	recent *p11ring.Set[Call]

	mtx   sync.Mutex
	stats map[string]*FunctionStats
}

func newCollector(recentPerFunction int) *collector {
	return &collector{
		recent: p11ring.NewSet[Call](recentPerFunction),
		stats:  map[string]*FunctionStats{},
	}
}

func (c *collector) add(function string, rv ck.RV, start time.Time, took time.Duration) {
	c.recent.Get(function).Add(Call{
		ID:       ulid.MustNew(ulid.Timestamp(start), callIDEntropy),
		Function: function,
		RV:       rv,
		Start:    start,
		Duration: took,
	})

	c.mtx.Lock()
	defer c.mtx.Unlock()

	s, ok := c.stats[function]
	if !ok {
		s = &FunctionStats{Function: function}
		c.stats[function] = s
	}
	s.Calls++
	if rv != ck.CKR_OK {
		s.Errors++
	}
	s.LastRV = rv
	s.Total += took
}

// RecentCalls returns up to limit of the most recent calls, newest first. If
// function is empty, calls of every function are considered. A negative limit
// means no limit.
func (p *Proxy) RecentCalls(function string, limit int) []Call {
	if function != "" {
		r, ok := p.calls.recent.Lookup(function)
		if !ok {
			return nil
		}
		return r.Recent(limit)
	}

	var calls []Call
	for _, r := range p.calls.recent.All() {
		calls = append(calls, r.Recent(limit)...)
	}
	sort.Slice(calls, func(i, j int) bool {
		return calls[i].ID.Compare(calls[j].ID) > 0
	})
	if limit >= 0 && len(calls) > limit {
		calls = calls[:limit]
	}
	return calls
}

// CallStats returns statistics for every function that has been called,
// ordered by function name.
func (p *Proxy) CallStats() []FunctionStats {
	p.calls.mtx.Lock()
	defer p.calls.mtx.Unlock()

	stats := make([]FunctionStats, 0, len(p.calls.stats))
	for _, s := range p.calls.stats {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Function < stats[j].Function
	})
	return stats
}

// SetRecentCalls changes the number of calls remembered per function, within
// the same limits as Config.RecentCalls.
func (p *Proxy) SetRecentCalls(n int) {
	switch {
	case n < recentCallsMin:
		n = recentCallsMin
	case n > recentCallsMax:
		n = recentCallsMax
	}
	evicted := p.calls.recent.Resize(n)
	Logger().Debug("resized recent calls", zap.Int("per_function", n), zap.Int("evicted", len(evicted)))
}
