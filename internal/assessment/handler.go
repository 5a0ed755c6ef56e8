package assessment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/sahayak-lambda/internal/config"
)

type Handler struct {
	service AssessmentService
}

func NewHandler(s AssessmentService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for saving assessment")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.StudentName == "" {
		config.Fail(w, http.StatusBadRequest, "studentName is required")
		return
	}
	if len(req.Result) == 0 {
		config.Fail(w, http.StatusBadRequest, "result is required")
		return
	}

	a, err := h.service.Save(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to save assessment")
		config.Fail(w, http.StatusInternalServerError, "failed to save assessment")
		return
	}

	config.Success(w, http.StatusCreated, a)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	assessments, err := h.service.List(r.Context(), r.URL.Query().Get("student"))
	if err != nil {
		log.WithError(err).Error("Failed to list assessments")
		config.Fail(w, http.StatusInternalServerError, "failed to list assessments")
		return
	}

	config.Success(w, http.StatusOK, assessments)
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		config.Fail(w, http.StatusBadRequest, "assessment id required")
		return
	}

	report, err := h.service.Report(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to generate assessment report")
		config.Fail(w, http.StatusInternalServerError, "failed to generate report")
		return
	}
	if report == nil {
		config.Fail(w, http.StatusNotFound, "assessment not found")
		return
	}

	config.Success(w, http.StatusOK, report)
}
