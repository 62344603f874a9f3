package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careercompass/middleware"
	"careercompass/models"
	"careercompass/services"
	"careercompass/utils"
)

type jobRecommendationsRequest struct {
	Profile  models.CandidateProfile `json:"profile" binding:"required"`
	Location string                  `json:"location"`
	Refresh  bool                    `json:"refresh"`
}

// JobRecommendations returns job recommendations for the caller's candidate
// profile. Results come from the user's session cache, then the shared
// profile cache, then the backend service; fresh results populate both
// caches. Setting refresh bypasses the caches.
func JobRecommendations(backend *services.BackendClient, jobCache *services.JobCache, sessions *services.UserSessionCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)

		var req jobRecommendationsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestError(c, "Invalid request data", err)
			return
		}

		if req.Refresh {
			sessions.RefreshUser(userID)
			jobCache.Invalidate(req.Profile, req.Location)
		} else {
			if jobs, ok := sessions.GetUserJobs(userID); ok {
				c.JSON(http.StatusOK, gin.H{"jobs": jobs, "cached": true, "source": "session"})
				return
			}

			if jobs, ok := jobCache.Get(req.Profile, req.Location); ok {
				sessions.SetUserJobs(userID, jobs, req.Profile)
				c.JSON(http.StatusOK, gin.H{"jobs": jobs, "cached": true, "source": "profile"})
				return
			}
		}

		jobs, err := backend.RecommendJobs(c.Request.Context(), req.Profile, req.Location)
		if err != nil {
			utils.BadGatewayError(c, "Failed to fetch job recommendations", err)
			return
		}

		jobCache.Set(req.Profile, req.Location, jobs)
		sessions.SetUserJobs(userID, jobs, req.Profile)

		c.JSON(http.StatusOK, gin.H{"jobs": jobs, "cached": false, "source": "backend"})
	}
}

type invalidateCacheRequest struct {
	Profile  models.CandidateProfile `json:"profile"`
	Location string                  `json:"location"`
}

// InvalidateJobCache drops the caller's session cache and, when a profile is
// supplied, the matching shared cache entry.
func InvalidateJobCache(jobCache *services.JobCache, sessions *services.UserSessionCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)

		var req invalidateCacheRequest
		_ = c.ShouldBindJSON(&req)

		sessionDropped := sessions.InvalidateUser(userID)
		profileDropped := false
		if len(req.Profile.Skills) > 0 || req.Profile.Experience != "" {
			profileDropped = jobCache.Invalidate(req.Profile, req.Location)
		}

		utils.SuccessResponse(c, http.StatusOK, "Cache invalidated", gin.H{
			"session_dropped": sessionDropped,
			"profile_dropped": profileDropped,
		})
	}
}

// JobCacheStats reports cache effectiveness counters.
func JobCacheStats(jobCache *services.JobCache, sessions *services.UserSessionCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := jobCache.Stats()
		stats["active_user_sessions"] = sessions.ActiveUsers()

		c.JSON(http.StatusOK, gin.H{"stats": stats})
	}
}
