package presenter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/minta-io/minta/internal/api/middleware"
	"github.com/minta-io/minta/internal/service"
)

type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id"`
}

func JSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to write json response")
	}
}

func Error(w http.ResponseWriter, r *http.Request, msg string, status int) {
	resp := ErrorResponse{
		Error:         msg,
		CorrelationID: middleware.CorrelationCtx(r.Context()),
	}
	JSON(w, r, resp, status)
}

// Err writes an error response, using the status carried by a
// service.HTTPError when present and 400 otherwise.
func Err(w http.ResponseWriter, r *http.Request, err error, short string) {
	status := http.StatusBadRequest // generic default status
	var httpErr *service.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.StatusCode
	}
	Error(w, r, short+": "+err.Error(), status)
}
