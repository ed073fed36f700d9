package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vowvenues/vowvenues/internal/logutil"
	"github.com/vowvenues/vowvenues/internal/store"
)

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageBody{Message: message})
}

// serverError logs the underlying cause and answers with an opaque 500.
// Configuration errors (missing connection string and friends) are logged
// under their own tag so operators can tell a bad deploy from a database
// outage.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	log := logutil.GetOrDefault(r.Context())
	var cfg store.ConfigError
	if errors.As(err, &cfg) {
		log.Error().Err(err).Str("error.kind", "configuration").Msg("Server configuration error")
	} else {
		log.Error().Err(err).Str("error.kind", "infrastructure").Msg("Unexpected server error")
	}
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
