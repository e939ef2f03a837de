package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"questclub/internal/moderation"
	"questclub/pkg/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, errorResponse{Error: msg})
}

// writeResult maps a transition outcome to the result contract the dashboard
// reads: an empty object on success, otherwise an error string. Best-effort
// sub-failures never reach here; the pipeline has already swallowed them.
func (s *Service) writeResult(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		s.respondJSON(w, http.StatusOK, struct{}{})
	case moderation.IsValidation(err):
		s.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, types.ErrPhotoNotFound):
		s.respondError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.WithError(err).Error("photo operation failed")
		s.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
