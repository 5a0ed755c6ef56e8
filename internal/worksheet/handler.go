package worksheet

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

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for textbook analysis")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Content == "" {
		config.Fail(w, http.StatusBadRequest, "content is required")
		return
	}

	analysis, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to analyze textbook content")
		config.Fail(w, http.StatusInternalServerError, "failed to analyze textbook content")
		return
	}

	config.Success(w, http.StatusOK, analysis)
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for worksheet generation")
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
		log.WithError(err).Error("Failed to generate worksheets")
		config.Fail(w, http.StatusInternalServerError, "failed to generate worksheets")
		return
	}

	config.Success(w, http.StatusOK, resp)
}
