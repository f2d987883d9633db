package middleware

import (
	"bytes"
	"net/http"

	"user-service/internal/domain/idempotency"
	"user-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Idempotency replays the stored response when a request repeats an
// Idempotency-Key. Requests without the header pass through untouched, and
// only successful responses are stored, so a failed attempt can be retried
// with the same key.
func Idempotency(store idempotency.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			c.Next()
			return
		}

		cached, found, err := store.Get(c.Request.Context(), key)
		if err != nil {
			logger.Warn("Idempotency store lookup failed: %v", err)
			c.Next()
			return
		}
		if found {
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		recorder := &responseRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		if recorder.Status() < http.StatusOK || recorder.Status() >= http.StatusMultipleChoices {
			return
		}

		err = store.Set(c.Request.Context(), key, &idempotency.Response{
			Status:      recorder.Status(),
			ContentType: recorder.Header().Get("Content-Type"),
			Body:        recorder.body.Bytes(),
		})
		if err != nil {
			logger.Warn("Failed to store idempotent response: %v", err)
		}
	}
}

type responseRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}
