package assessment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/sahayak-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.Save)
	r.Get("/", h.List)
	r.Get("/{id}/report", h.Report)
	return r
}
