package server

import (
	"log/slog"
	"net/http"
	"time"
)

// trackedWriter records what a handler answered: the status line and
// how many payload bytes went out. WriteHeader may never be called on
// the fire-and-forget item routes, so the zero status means 200.
type trackedWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *trackedWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *trackedWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer so
// the live-view route can still hijack the connection.
func (w *trackedWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// logRequests emits one line per request. Client mistakes (4xx) log at
// warn and server failures at error so a tail of the log surfaces them.
func (s *Server) logRequests(next http.Handler) http.Handler {
	logger := s.logger.With("component", "http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		tw := &trackedWriter{ResponseWriter: w}

		next.ServeHTTP(tw, r)

		status := tw.status
		if status == 0 {
			status = http.StatusOK
		}

		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		logger.Log(r.Context(), level, r.Method+" "+r.URL.Path,
			slog.Group("resp",
				"status", status,
				"bytes", tw.bytes,
				"elapsed", time.Since(start),
			),
			"remote", r.RemoteAddr,
		)
	})
}
