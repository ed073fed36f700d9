package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vowvenues/vowvenues/internal/logutil"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// requestLogger tags every request with a fresh req_id, injects the scoped
// logger into the context and emits one line per served request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logutil.GetOrDefault(r.Context()).With().
			Str("req_id", uuid.NewString()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r.WithContext(logutil.WithLogger(r.Context(), log)))
		log.Info().Int("status", sw.status).Dur("elapsed", time.Since(start)).Msg("Request served")
	})
}

// recoverPanics keeps a panicking handler from killing the process; the
// request gets the same opaque 500 as any other infrastructure failure.
func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				log := logutil.GetOrDefault(r.Context())
				log.Error().
					Interface("panic", v).
					Msg("Handler panicked")
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
