package services

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"careercompass/models"
)

// CacheStats tracks cache effectiveness counters.
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Sets      int64 `json:"sets"`
	Evictions int64 `json:"evictions"`
}

type jobCacheEntry struct {
	Jobs      []models.Job
	CachedAt  time.Time
	ExpiresAt time.Time
}

// JobCache is an in-memory TTL cache for job-recommendation lists keyed by a
// hash of the candidate profile plus location.
type JobCache struct {
	entries map[string]*jobCacheEntry
	mu      sync.RWMutex
	ttl     time.Duration
	stats   CacheStats
}

// NewJobCache creates a job cache with the given default TTL.
func NewJobCache(ttl time.Duration) *JobCache {
	return &JobCache{
		entries: make(map[string]*jobCacheEntry),
		ttl:     ttl,
	}
}

// ProfileKey derives a stable cache key from the candidate profile and
// location. Skills and job titles are lowercased and sorted so equivalent
// profiles hash identically regardless of discovery order.
func ProfileKey(profile models.CandidateProfile, location string) string {
	normalize := func(values []string) []string {
		out := make([]string, 0, len(values))
		for _, v := range values {
			out = append(out, strings.ToLower(strings.TrimSpace(v)))
		}
		sort.Strings(out)
		return out
	}

	keyData := map[string]interface{}{
		"skills":     normalize(profile.Skills),
		"experience": strings.ToLower(strings.TrimSpace(profile.Experience)),
		"last_jobs":  normalize(profile.LastTwoJobs),
		"location":   strings.ToLower(strings.TrimSpace(location)),
	}

	encoded, _ := json.Marshal(keyData)
	sum := md5.Sum(encoded)
	return hex.EncodeToString(sum[:])
}

// Get returns cached jobs for the profile, or false on a miss or an expired
// entry. Expired entries across the cache are evicted on the way in.
func (c *JobCache) Get(profile models.CandidateProfile, location string) ([]models.Job, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictExpired()

	key := ProfileKey(profile, location)
	entry, exists := c.entries[key]
	if !exists {
		c.stats.Misses++
		return nil, false
	}

	c.stats.Hits++
	return entry.Jobs, true
}

// Set caches jobs for the profile using the default TTL.
func (c *JobCache) Set(profile models.CandidateProfile, location string, jobs []models.Job) {
	c.SetWithTTL(profile, location, jobs, c.ttl)
}

// SetWithTTL caches jobs for the profile with an explicit TTL.
func (c *JobCache) SetWithTTL(profile models.CandidateProfile, location string, jobs []models.Job, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	c.entries[ProfileKey(profile, location)] = &jobCacheEntry{
		Jobs:      jobs,
		CachedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	c.stats.Sets++
}

// Invalidate removes the cached jobs for a profile. Returns true when an
// entry was present.
func (c *JobCache) Invalidate(profile models.CandidateProfile, location string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := ProfileKey(profile, location)
	if _, exists := c.entries[key]; exists {
		delete(c.entries, key)
		return true
	}
	return false
}

// Stats returns a snapshot of counters plus the current entry count and hit
// rate percentage.
func (c *JobCache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.stats.Hits + c.stats.Misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.stats.Hits) / float64(total) * 100
	}

	return map[string]interface{}{
		"total_entries":    len(c.entries),
		"hits":             c.stats.Hits,
		"misses":           c.stats.Misses,
		"sets":             c.stats.Sets,
		"evictions":        c.stats.Evictions,
		"hit_rate_percent": hitRate,
	}
}

// evictExpired must be called with the write lock held.
func (c *JobCache) evictExpired() {
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			c.stats.Evictions++
		}
	}
}

type userSession struct {
	Jobs         []models.Job
	Profile      models.CandidateProfile
	ExpiresAt    time.Time
	RefreshCount int
}

// UserSessionCache holds the most recent job list per user for the lifetime
// of their session, independent of profile changes.
type UserSessionCache struct {
	sessions map[string]*userSession
	mu       sync.RWMutex
	ttl      time.Duration
}

// NewUserSessionCache creates a session cache with the given session TTL.
func NewUserSessionCache(ttl time.Duration) *UserSessionCache {
	return &UserSessionCache{
		sessions: make(map[string]*userSession),
		ttl:      ttl,
	}
}

// GetUserJobs returns the cached jobs for a user, or false when the session
// is absent or expired.
func (c *UserSessionCache) GetUserJobs(userID string) ([]models.Job, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for id, session := range c.sessions {
		if now.After(session.ExpiresAt) {
			delete(c.sessions, id)
		}
	}

	session, exists := c.sessions[userID]
	if !exists {
		return nil, false
	}
	return session.Jobs, true
}

// SetUserJobs caches a job list for the user together with the profile that
// produced it. Refresh counts survive re-caching.
func (c *UserSessionCache) SetUserJobs(userID string, jobs []models.Job, profile models.CandidateProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	refreshCount := 0
	if prev, exists := c.sessions[userID]; exists {
		refreshCount = prev.RefreshCount
	}

	c.sessions[userID] = &userSession{
		Jobs:         jobs,
		Profile:      profile,
		ExpiresAt:    time.Now().Add(c.ttl),
		RefreshCount: refreshCount,
	}
}

// InvalidateUser drops the user's session. Returns true when one existed.
func (c *UserSessionCache) InvalidateUser(userID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.sessions[userID]; exists {
		delete(c.sessions, userID)
		return true
	}
	return false
}

// RefreshUser marks the user's jobs for refresh by dropping the session and
// bumping its refresh counter for the next fill.
func (c *UserSessionCache) RefreshUser(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if session, exists := c.sessions[userID]; exists {
		session.RefreshCount++
		delete(c.sessions, userID)
	}
}

// ActiveUsers reports the number of live user sessions.
func (c *UserSessionCache) ActiveUsers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sessions)
}
