package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type errorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes data with the given status.
func RespondJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// RespondError sends an error JSON response. err is logged, never written.
func RespondError(w http.ResponseWriter, r *http.Request, code int, message string, err error) {
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Int("status", code).Msg(message)
	}
	RespondJSON(w, code, errorResponse{Error: message})
}

// ErrorBody marshals the caller-visible error shape for transports that
// do not write through an http.ResponseWriter.
func ErrorBody(message string) string {
	b, _ := json.Marshal(errorResponse{Error: message})
	return string(b)
}
