package passage

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/sahayak-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for passage generation")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Grade == "" {
		config.Fail(w, http.StatusBadRequest, "grade is required")
		return
	}
	if req.Subject == "" {
		config.Fail(w, http.StatusBadRequest, "subject is required")
		return
	}
	req.ApplyDefaults()

	p, err := h.service.Generate(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate reading passage")
		config.Fail(w, http.StatusInternalServerError, "failed to generate reading passage")
		return
	}

	config.Success(w, http.StatusOK, p)
}
