package content

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

func (h *Handler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for content generation")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Description == "" {
		config.Fail(w, http.StatusBadRequest, "description is required")
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

	bundle, err := h.service.GenerateContent(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate content")
		config.Fail(w, http.StatusInternalServerError, "failed to generate content")
		return
	}

	config.Success(w, http.StatusOK, bundle)
}

func (h *Handler) GenerateExamples(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ExamplesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for examples generation")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Subject == "" {
		config.Fail(w, http.StatusBadRequest, "subject is required")
		return
	}
	if req.Grade == "" {
		config.Fail(w, http.StatusBadRequest, "grade is required")
		return
	}

	set, err := h.service.GenerateExamples(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate examples")
		config.Fail(w, http.StatusInternalServerError, "failed to generate examples")
		return
	}

	config.Success(w, http.StatusOK, set)
}
