package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"careercompass/services"
	"careercompass/utils"
)

// ForwardToBackend relays the JSON request body to the given backend path
// and passes the backend's response through unchanged. Used for the AI
// endpoints (career path, skill gap, resume optimization) whose logic lives
// entirely in the backend service.
func ForwardToBackend(backend *services.BackendClient, path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			utils.BadRequestError(c, "Could not read request body", err)
			return
		}

		resp, err := backend.Forward(c.Request.Context(), http.MethodPost, path, body, c.GetHeader("Authorization"))
		if err != nil {
			utils.BadGatewayError(c, "Backend service unavailable", err)
			return
		}

		c.Data(resp.StatusCode, "application/json", resp.Body)
	}
}
