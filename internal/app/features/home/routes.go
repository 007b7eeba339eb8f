package home

import (
	_ "github.com/dalemusser/learnhub/internal/app/features/home/views" // register templates
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRoot)
	return r
}
