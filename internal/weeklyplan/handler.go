package weeklyplan

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
		log.WithError(err).Error("Invalid request body for weekly plan generation")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.AnalyzedContent.Topic == "" {
		config.Fail(w, http.StatusBadRequest, "analyzedContent is required")
		return
	}
	if len(req.TargetGrades) == 0 {
		config.Fail(w, http.StatusBadRequest, "targetGrades is required")
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate weekly plans")
		config.Fail(w, http.StatusInternalServerError, "failed to generate weekly plans")
		return
	}

	config.Success(w, http.StatusOK, resp)
}
