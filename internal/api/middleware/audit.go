package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

// maxAuditBody 审计日志中请求/响应体的截断上限
const maxAuditBody = 16 << 10

type auditBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *auditBodyWriter) Write(b []byte) (int, error) {
	if r.body.Len() < maxAuditBody {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

func (r *auditBodyWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func truncateBody(b []byte) string {
	if len(b) > maxAuditBody {
		b = b[:maxAuditBody]
	}
	return string(b)
}

// AuditMiddleware 记录请求与响应摘要，响应体只在非 2xx/3xx 时落日志
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBody))
		}

		decodedQuery, err := url.QueryUnescape(c.Request.URL.RawQuery)
		if err != nil {
			decodedQuery = c.Request.URL.RawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.String("req_body", truncateBody(reqBody)),
		)

		w := &auditBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		startTime := time.Now()

		c.Next()

		attrs := []any{
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.Int("res_size", c.Writer.Size()),
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			attrs = append(attrs, log.String("res_body", w.body.String()))
		}
		log.InfoContext(ctx, "Send Response", attrs...)
	}
}
