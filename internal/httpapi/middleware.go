package httpapi

import (
	"bytes"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const maxLoggedBodyBytes = 512

// statusRecorder captures the status code and the start of the body so error
// responses can be logged.
type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	logBody      bytes.Buffer
	maxLogBytes  int
	truncated    bool
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if remaining := r.maxLogBytes - r.logBody.Len(); remaining > 0 {
		if len(p) > remaining {
			r.logBody.Write(p[:remaining])
			r.truncated = true
		} else {
			r.logBody.Write(p)
		}
	} else if len(p) > 0 {
		r.truncated = true
	}

	n, err := r.ResponseWriter.Write(p)
	r.bytesWritten += n
	return n, err
}

func withRequestLogging(next http.Handler, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			maxLogBytes:    maxLoggedBodyBytes,
		}

		next.ServeHTTP(recorder, r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.statusCode),
			zap.Int("bytes", recorder.bytesWritten),
			zap.Duration("duration", time.Since(start)),
		}

		switch {
		case recorder.statusCode >= http.StatusInternalServerError:
			fields = append(fields, zap.String("body", recorder.logBody.String()), zap.Bool("truncated", recorder.truncated))
			logger.Error("request failed", fields...)
		case recorder.statusCode >= http.StatusBadRequest:
			fields = append(fields, zap.String("body", recorder.logBody.String()), zap.Bool("truncated", recorder.truncated))
			logger.Warn("request rejected", fields...)
		default:
			logger.Info("request served", fields...)
		}
	})
}
