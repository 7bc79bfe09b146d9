package middleware

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scoopdesk/scoopdesk/internal/audit"
	"github.com/scoopdesk/scoopdesk/internal/database/queries"
	"github.com/scoopdesk/scoopdesk/internal/models"
)

// Audit classifies every request and records classified ones in the
// operation log after the handler runs. Responses pass through byte for
// byte; auditing is a side effect, never a control-flow alternative.
func Audit(logs *queries.LogQueries) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bodyBytes []byte
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			if c.Request.Body != nil {
				bodyBytes, _ = io.ReadAll(c.Request.Body)
				// the handler reads the body too; hand it a fresh reader
				c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
			}
		}

		// a malformed body classifies like an absent one; the handler's own
		// binding reports the error to the client
		body, _ := audit.ParseBody(bodyBytes)
		op, ok := audit.Classify(audit.Request{
			Method: c.Request.Method,
			Path:   c.Request.URL.Path,
			Query:  c.Request.URL.Query(),
			Body:   body,
		})
		if !ok {
			c.Next()
			return
		}

		capture := &captureWriter{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = capture

		defer func() {
			if r := recover(); r != nil {
				appendEntry(logs, op, false, fmt.Sprint(r))
				panic(r)
			}
			success := capture.Status() < http.StatusBadRequest
			appendEntry(logs, op, success, audit.ExtractMessage(capture.buf.Bytes()))
		}()

		c.Next()
	}
}

func appendEntry(logs *queries.LogQueries, op audit.Operation, success bool, message string) {
	entry := &models.OperationLog{
		Time:      time.Now().Format(time.RFC3339),
		Operation: op.Label,
		Command:   op.Command,
		Success:   success,
		Message:   message,
	}
	if err := logs.Append(entry); err != nil {
		log.Printf("Failed to append operation log: %v", err)
	}
}

// captureWriter tees response bytes into a buffer while writing them
// through to the client unchanged
type captureWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
