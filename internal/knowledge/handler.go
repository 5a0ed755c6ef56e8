package knowledge

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

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for knowledge question")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Question == "" {
		config.Fail(w, http.StatusBadRequest, "question is required")
		return
	}
	req.ApplyDefaults()

	bundle, err := h.service.Ask(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to answer knowledge question")
		config.Fail(w, http.StatusInternalServerError, "failed to answer question")
		return
	}

	config.Success(w, http.StatusOK, bundle)
}
