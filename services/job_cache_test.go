package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"careercompass/models"
)

func sampleProfile() models.CandidateProfile {
	return models.CandidateProfile{
		Name:        "John Smith",
		Experience:  "5 years of experience",
		Skills:      []string{"Python", "AWS", "Docker"},
		LastTwoJobs: []string{"Senior Software Engineer"},
	}
}

func sampleJobs() []models.Job {
	return []models.Job{
		{Title: "Backend Engineer", Company: "Initech"},
		{Title: "Platform Engineer", Company: "Globex"},
	}
}

func TestProfileKey_StableAcrossOrderAndCase(t *testing.T) {
	a := models.CandidateProfile{
		Experience:  "5 years",
		Skills:      []string{"Python", "AWS"},
		LastTwoJobs: []string{"Engineer", "Analyst"},
	}
	b := models.CandidateProfile{
		Experience:  "  5 YEARS ",
		Skills:      []string{"aws", "PYTHON"},
		LastTwoJobs: []string{"analyst", "engineer"},
	}

	assert.Equal(t, ProfileKey(a, "Amsterdam"), ProfileKey(b, " amsterdam "))
}

func TestProfileKey_DifferentProfiles(t *testing.T) {
	a := sampleProfile()
	b := sampleProfile()
	b.Skills = append(b.Skills, "Kubernetes")

	assert.NotEqual(t, ProfileKey(a, ""), ProfileKey(b, ""))
	assert.NotEqual(t, ProfileKey(a, "berlin"), ProfileKey(a, "london"))
}

func TestJobCache_SetAndGet(t *testing.T) {
	cache := NewJobCache(30 * time.Minute)

	_, ok := cache.Get(sampleProfile(), "")
	assert.False(t, ok)

	cache.Set(sampleProfile(), "", sampleJobs())

	jobs, ok := cache.Get(sampleProfile(), "")
	assert.True(t, ok)
	assert.Len(t, jobs, 2)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
}

func TestJobCache_Expiration(t *testing.T) {
	cache := NewJobCache(30 * time.Minute)
	cache.SetWithTTL(sampleProfile(), "", sampleJobs(), 50*time.Millisecond)

	_, ok := cache.Get(sampleProfile(), "")
	assert.True(t, ok)

	time.Sleep(80 * time.Millisecond)

	_, ok = cache.Get(sampleProfile(), "")
	assert.False(t, ok)
}

func TestJobCache_Invalidate(t *testing.T) {
	cache := NewJobCache(30 * time.Minute)
	cache.Set(sampleProfile(), "berlin", sampleJobs())

	assert.True(t, cache.Invalidate(sampleProfile(), "berlin"))
	assert.False(t, cache.Invalidate(sampleProfile(), "berlin"))

	_, ok := cache.Get(sampleProfile(), "berlin")
	assert.False(t, ok)
}

func TestJobCache_Stats(t *testing.T) {
	cache := NewJobCache(30 * time.Minute)

	cache.Get(sampleProfile(), "") // miss
	cache.Set(sampleProfile(), "", sampleJobs())
	cache.Get(sampleProfile(), "") // hit

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.Equal(t, int64(1), stats["sets"])
	assert.Equal(t, 1, stats["total_entries"])
	assert.Equal(t, 50.0, stats["hit_rate_percent"])
}

func TestUserSessionCache_SetAndGet(t *testing.T) {
	sessions := NewUserSessionCache(8 * time.Hour)

	_, ok := sessions.GetUserJobs("user_1")
	assert.False(t, ok)

	sessions.SetUserJobs("user_1", sampleJobs(), sampleProfile())

	jobs, ok := sessions.GetUserJobs("user_1")
	assert.True(t, ok)
	assert.Len(t, jobs, 2)

	// Other users are isolated
	_, ok = sessions.GetUserJobs("user_2")
	assert.False(t, ok)
}

func TestUserSessionCache_Expiration(t *testing.T) {
	sessions := NewUserSessionCache(50 * time.Millisecond)
	sessions.SetUserJobs("user_1", sampleJobs(), sampleProfile())

	time.Sleep(80 * time.Millisecond)

	_, ok := sessions.GetUserJobs("user_1")
	assert.False(t, ok)
	assert.Equal(t, 0, sessions.ActiveUsers())
}

func TestUserSessionCache_Invalidate(t *testing.T) {
	sessions := NewUserSessionCache(8 * time.Hour)
	sessions.SetUserJobs("user_1", sampleJobs(), sampleProfile())

	assert.True(t, sessions.InvalidateUser("user_1"))
	assert.False(t, sessions.InvalidateUser("user_1"))
}

func TestUserSessionCache_Refresh(t *testing.T) {
	sessions := NewUserSessionCache(8 * time.Hour)
	sessions.SetUserJobs("user_1", sampleJobs(), sampleProfile())

	sessions.RefreshUser("user_1")

	_, ok := sessions.GetUserJobs("user_1")
	assert.False(t, ok)
}
