package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheEntry represents a cached response
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// ResponseCache caches JSON responses keyed by method, path, query, and body.
type ResponseCache struct {
	cache map[string]*CacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

// NewResponseCache creates a new response cache
func NewResponseCache(ttl time.Duration) *ResponseCache {
	rc := &ResponseCache{
		cache: make(map[string]*CacheEntry),
		ttl:   ttl,
	}

	go rc.cleanup()

	return rc
}

// Cache middleware for caching responses. GET requests and designated proxy
// POST endpoints are cacheable; everything else passes through.
func (rc *ResponseCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" && !isCacheableEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		key := rc.generateKey(c)

		rc.mu.RLock()
		entry, exists := rc.cache[key]
		rc.mu.RUnlock()

		if exists && time.Now().Before(entry.ExpiresAt) {
			c.JSON(200, entry.Data)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           []byte{},
		}
		c.Writer = writer

		c.Next()

		// Cache successful responses only
		if c.Writer.Status() == 200 && len(writer.body) > 0 {
			var data interface{}
			if err := json.Unmarshal(writer.body, &data); err == nil {
				rc.mu.Lock()
				rc.cache[key] = &CacheEntry{
					Data:      data,
					ExpiresAt: time.Now().Add(rc.ttl),
				}
				rc.mu.Unlock()
			}
		}
	}
}

// generateKey creates a cache key from the request
func (rc *ResponseCache) generateKey(c *gin.Context) string {
	h := md5.New()
	h.Write([]byte(c.Request.Method))
	h.Write([]byte(c.Request.URL.Path))
	h.Write([]byte(c.Request.URL.RawQuery))

	// Include body for POST requests
	if c.Request.Method == "POST" {
		body, _ := c.GetRawData()
		h.Write(body)
		// Restore body for further processing
		c.Request.Body = &cachedBody{bytes: body}
	}

	return hex.EncodeToString(h.Sum(nil))
}

// cleanup removes expired cache entries
func (rc *ResponseCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for {
		<-ticker.C
		rc.mu.Lock()
		now := time.Now()
		for key, entry := range rc.cache {
			if now.After(entry.ExpiresAt) {
				delete(rc.cache, key)
			}
		}
		rc.mu.Unlock()
	}
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

// cachedBody implements io.ReadCloser
type cachedBody struct {
	bytes []byte
	pos   int
}

func (cb *cachedBody) Read(p []byte) (n int, err error) {
	if cb.pos >= len(cb.bytes) {
		return 0, io.EOF
	}
	n = copy(p, cb.bytes[cb.pos:])
	cb.pos += n
	return n, nil
}

func (cb *cachedBody) Close() error {
	return nil
}

// isCacheableEndpoint lists POST endpoints whose responses are stable enough
// to cache: AI proxy calls that are pure functions of the request body.
func isCacheableEndpoint(path string) bool {
	cacheablePaths := []string{
		"/api/ai/career-path",
		"/api/ai/skill-gap",
		"/api/ai/resume-optimization",
	}

	for _, cacheable := range cacheablePaths {
		if path == cacheable {
			return true
		}
	}
	return false
}
