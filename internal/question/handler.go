package question

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
		log.WithError(err).Error("Invalid request body for question generation")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Text == "" {
		config.Fail(w, http.StatusBadRequest, "text is required")
		return
	}
	if req.GradeLevel == "" {
		config.Fail(w, http.StatusBadRequest, "gradeLevel is required")
		return
	}

	set, err := h.service.Generate(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		config.Fail(w, http.StatusInternalServerError, "failed to generate questions")
		return
	}

	resp := GenerateResponse{
		Questions:  set.Questions,
		TotalCount: set.TotalCount,
		Generated:  len(set.Questions),
	}
	if req.NumQuestions.Set {
		n := req.NumQuestions.N
		resp.Requested = &n
	}

	config.Success(w, http.StatusOK, resp)
}
