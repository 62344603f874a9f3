package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careercompass/middleware"
	"careercompass/services"
	"careercompass/utils"
)

type tokenRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Name   string `json:"name"`
}

// IssueToken mints a session JWT for an already-authenticated user. The
// dashboard server calls this after its identity provider verifies the
// login, authenticating itself with the shared API key.
func IssueToken(jwtService *services.JWTService, apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			utils.ErrorResponseWithCode(c, http.StatusServiceUnavailable, "Token issuance is not configured", nil)
			return
		}

		if c.GetHeader("X-API-Key") != apiKey {
			utils.UnauthorizedError(c, "Invalid API key")
			return
		}

		var req tokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestError(c, "Invalid request data", err)
			return
		}

		token, err := jwtService.GenerateToken(req.UserID, req.Email, req.Name)
		if err != nil {
			utils.InternalServerError(c, "Failed to generate token", err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Token issued", gin.H{"token": token})
	}
}

// Me echoes the authenticated caller's identity from the validated token.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user": gin.H{
				"id":    c.GetString(middleware.ContextUserID),
				"email": c.GetString(middleware.ContextUserEmail),
				"name":  c.GetString(middleware.ContextUserName),
			},
		})
	}
}
