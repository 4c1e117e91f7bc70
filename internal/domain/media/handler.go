package media

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/arqsuite/arqsuite-api/internal/pkg/response"
	"github.com/arqsuite/arqsuite-api/internal/pkg/validator"
)

// Handler handles media HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates media handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Presign handles POST /media/presign
func (h *Handler) Presign(w http.ResponseWriter, r *http.Request) {
	var req PresignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if details := validator.Validate(&req); details != nil {
		response.ValidationError(w, details)
		return
	}

	result, err := h.svc.Presign(r.Context(), req.Filename, req.ContentType)
	if err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			log.Error().Err(err).Msg("Presign failed")
			response.ServiceUnavailable(w, "Object storage is unavailable, try again")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, result)
}
