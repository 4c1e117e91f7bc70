package catalog

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/arqsuite/arqsuite-api/internal/pkg/response"
)

// Handler serves the uniform CRUD surface for one catalog kind
type Handler struct {
	repo Repository
	desc Descriptor
}

// NewHandler creates a catalog handler for the given kind
func NewHandler(repo Repository, desc Descriptor) *Handler {
	return &Handler{repo: repo, desc: desc}
}

// List handles GET /<resource>
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.repo.ListAll(r.Context())
	if err != nil {
		log.Error().Err(err).Str("resource", h.desc.Resource).Msg("List failed")
		response.InternalError(w)
		return
	}

	response.OK(w, h.desc.RenderList(recs))
}

// Create handles POST /<resource>
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, details, err := h.desc.ParseCreate(r.Body)
	if err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if details != nil {
		response.ValidationError(w, details)
		return
	}

	rec := &Record{
		ID:          uuid.New(),
		ParentID:    req.ParentID,
		Label:       req.Label,
		Description: req.Description,
	}

	if err := h.repo.Create(r.Context(), rec); err != nil {
		if errors.Is(err, ErrParentNotFound) {
			response.UnprocessableEntity(w, "PARENT_NOT_FOUND",
				fmt.Sprintf("Referenced %s does not exist", h.desc.ParentField))
			return
		}
		log.Error().Err(err).Str("resource", h.desc.Resource).Msg("Create failed")
		response.InternalError(w)
		return
	}

	response.OK(w, h.desc.Render(rec))
}

// GetByID handles GET /<resource>/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("resource", h.desc.Resource).Msg("Get failed")
		response.InternalError(w)
		return
	}
	if rec == nil {
		response.NotFound(w, "Record not found")
		return
	}

	response.OK(w, h.desc.Render(rec))
}

// Update handles PATCH /<resource>/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	req, details, err := h.desc.ParseUpdate(r.Body)
	if err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if details != nil {
		response.ValidationError(w, details)
		return
	}

	rec, err := h.repo.Update(r.Context(), id, req.Label, req.Description)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Record not found")
			return
		}
		log.Error().Err(err).Str("resource", h.desc.Resource).Msg("Update failed")
		response.InternalError(w)
		return
	}

	response.OK(w, h.desc.Render(rec))
}

// Delete handles DELETE /<resource>/{id}. Descendants are removed by the
// storage layer's cascade rules, not here.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Record not found")
			return
		}
		log.Error().Err(err).Str("resource", h.desc.Resource).Msg("Delete failed")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return uuid.Nil, false
	}
	return id, true
}
