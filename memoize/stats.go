package memoize

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Stats is a point-in-time snapshot of memoization effectiveness.
type Stats struct {
	Profile string
	Calls   uint64
	Hits    uint64
}

// Usage returns the hit rate as a percentage of calls, 0 when no calls
// were recorded.
func (s Stats) Usage() float64 {
	if s.Calls == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Calls) * 100
}

// String formats the snapshot for logs.
func (s Stats) String() string {
	return fmt.Sprintf("%s: %d calls, %d hits (%.4f%%)", s.Profile, s.Calls, s.Hits, s.Usage())
}

// profileStats holds the live counters for one profile.
type profileStats struct {
	profile string
	calls   atomic.Uint64
	hits    atomic.Uint64
}

func (p *profileStats) snapshot() Stats {
	return Stats{
		Profile: p.profile,
		Calls:   p.calls.Load(),
		Hits:    p.hits.Load(),
	}
}

// Package registry of profiles, keyed by name. Registering the same
// profile twice shares its counters, so related wrappers can aggregate.
var (
	statsMu        sync.RWMutex
	statsProfiles  = make(map[string]*profileStats)
	anonymousCount atomic.Uint64
)

// registerProfile returns the counters for name, creating them on first
// use. An empty name is assigned a fresh anonymous profile.
func registerProfile(name string) *profileStats {
	if name == "" {
		name = fmt.Sprintf("anonymous-%d", anonymousCount.Add(1))
	}

	statsMu.Lock()
	defer statsMu.Unlock()
	if p, ok := statsProfiles[name]; ok {
		return p
	}
	p := &profileStats{profile: name}
	statsProfiles[name] = p
	return p
}

// GetStats returns the snapshot for a named profile. The zero Stats is
// returned for unknown profiles.
func GetStats(profile string) Stats {
	statsMu.RLock()
	p, ok := statsProfiles[profile]
	statsMu.RUnlock()
	if !ok {
		return Stats{Profile: profile}
	}
	return p.snapshot()
}

// AllStats returns snapshots for every registered profile.
func AllStats() []Stats {
	statsMu.RLock()
	defer statsMu.RUnlock()
	all := make([]Stats, 0, len(statsProfiles))
	for _, p := range statsProfiles {
		all = append(all, p.snapshot())
	}
	return all
}
