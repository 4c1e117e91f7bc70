package media

import "github.com/go-chi/chi/v5"

// Routes returns media routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/presign", h.Presign)

	return r
}
