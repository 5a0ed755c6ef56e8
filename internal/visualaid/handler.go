package visualaid

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
		log.WithError(err).Error("Invalid request body for visual aid generation")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Description == "" {
		config.Fail(w, http.StatusBadRequest, "description is required")
		return
	}
	if req.Subject == "" {
		config.Fail(w, http.StatusBadRequest, "subject is required")
		return
	}

	aid, err := h.service.Generate(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate visual aid")
		config.Fail(w, http.StatusInternalServerError, "failed to generate visual aid")
		return
	}

	config.Success(w, http.StatusOK, aid)
}
