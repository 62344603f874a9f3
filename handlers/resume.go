package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"careercompass/parsers"
	"careercompass/services"
	"careercompass/utils"
)

type extractRequest struct {
	Text string `json:"text"`
}

// ExtractProfile parses resume content into a candidate profile. The request
// either uploads a document as multipart form field "resume" or posts JSON
// {"text": "..."}. Empty text is rejected here; the extractor itself never
// fails. Pass a nil archive to disable S3 archival of uploads.
func ExtractProfile(extractor *parsers.ProfileExtractor, documents *parsers.DocumentExtractor, archive *services.S3Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		text, ok := resumeText(c, documents, archive)
		if !ok {
			return
		}

		if strings.TrimSpace(text) == "" {
			utils.BadRequestError(c, "Resume text must not be empty", nil)
			return
		}

		profile := extractor.Extract(text)

		c.JSON(http.StatusOK, gin.H{"profile": profile})
	}
}

// resumeText obtains plain text from the request, converting an uploaded
// document when one is present. Returns false after writing an error
// response.
func resumeText(c *gin.Context, documents *parsers.DocumentExtractor, archive *services.S3Service) (string, bool) {
	if strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data") {
		file, header, err := c.Request.FormFile("resume")
		if err != nil {
			utils.BadRequestError(c, "Could not read uploaded resume", err)
			return "", false
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			utils.InternalServerError(c, "Failed to read uploaded file", err)
			return "", false
		}

		archiveUpload(archive, header.Filename, data)

		text, err := documents.ExtractFromFile(header.Filename, data)
		if err != nil {
			utils.BadRequestError(c, "Could not extract text from document", err)
			return "", false
		}
		return text, true
	}

	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request data", err)
		return "", false
	}
	return req.Text, true
}

// archiveUpload stores the original document in S3. Best-effort: failures
// are logged, never surfaced to the caller.
func archiveUpload(archive *services.S3Service, filename string, data []byte) {
	if archive == nil {
		return
	}

	key := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	if _, err := archive.UploadResume(key, data, contentTypeFor(filename)); err != nil {
		utils.LogWarn("Resume archive upload failed", map[string]string{"key": key, "error": err.Error()})
		return
	}
	utils.LogInfo("Resume archived", map[string]string{"key": key})
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain"
	}
}
