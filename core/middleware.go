package core

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

var logOutput io.Writer = os.Stdout

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// WithRequestID propagates an incoming X-Request-Id or assigns a new one.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func WithLogging(config Config, next http.Handler) http.Handler {
	if !config.DebugLogs {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		fmt.Fprintf(logOutput, "📥 %s %s → %d (%s) id=%s\n",
			r.Method, r.URL.Path, rec.Status(), time.Since(start).Round(time.Microsecond), r.Header.Get(RequestIDHeader))
	})
}

// Wrap applies the standard middleware stack around h.
func Wrap(config Config, h http.Handler) http.Handler {
	return WithRequestID(WithLogging(config, h))
}
