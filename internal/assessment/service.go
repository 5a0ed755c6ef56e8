package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sahayak-lambda/internal/config"
	"gorm.io/datatypes"
)

type AssessmentService interface {
	Save(ctx context.Context, req SaveRequest) (*Assessment, error)
	List(ctx context.Context, studentName string) ([]*Assessment, error)
	Report(ctx context.Context, id string) (*Report, error)
}

type assessmentService struct {
	repo AssessmentRepository
}

func NewService(repo AssessmentRepository) AssessmentService {
	return &assessmentService{repo: repo}
}

func (s *assessmentService) Save(ctx context.Context, req SaveRequest) (*Assessment, error) {
	log := config.WithContext(ctx)
	log.WithField("student", req.StudentName).Info("Saving reading assessment")

	var summary resultSummary
	if len(req.Result) > 0 {
		// Headline numbers are denormalized for listing; a result that does
		// not carry them just stores zeros.
		_ = json.Unmarshal(req.Result, &summary)
	}

	a := &Assessment{
		ID:             uuid.New(),
		StudentName:    req.StudentName,
		Grade:          req.Grade,
		Subject:        req.Subject,
		Accuracy:       summary.Accuracy,
		WordsPerMinute: summary.WordsPerMinute,
		FluencyScore:   summary.FluencyScore,
		Result:         datatypes.JSON(req.Result),
	}

	if err := s.repo.Create(a); err != nil {
		log.WithError(err).Error("Failed to save assessment")
		return nil, err
	}

	log.WithField("assessment_id", a.ID.String()).Info("Assessment saved")
	return a, nil
}

func (s *assessmentService) List(ctx context.Context, studentName string) ([]*Assessment, error) {
	log := config.WithContext(ctx)

	var (
		assessments []*Assessment
		err         error
	)
	if studentName != "" {
		assessments, err = s.repo.ListByStudent(studentName)
	} else {
		assessments, err = s.repo.List()
	}
	if err != nil {
		log.WithError(err).Error("Failed to list assessments")
		return nil, err
	}
	return assessments, nil
}

func (s *assessmentService) Report(ctx context.Context, id string) (*Report, error) {
	log := config.WithContext(ctx)

	a, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to load assessment for report")
		return nil, err
	}
	if a == nil {
		return nil, nil
	}

	var summary resultSummary
	_ = json.Unmarshal(a.Result, &summary)

	return &Report{
		AssessmentID: a.ID.String(),
		StudentName:  a.StudentName,
		Grade:        a.Grade,
		Subject:      a.Subject,
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		Summary:      buildSummary(a, summary),
	}, nil
}

func buildSummary(a *Assessment, summary resultSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reading Assessment Report for %s (Grade %s, %s).\n", a.StudentName, a.Grade, a.Subject)
	fmt.Fprintf(&b, "Accuracy: %.1f%%. Reading speed: %d words per minute. Fluency score: %d/10.\n",
		a.Accuracy, a.WordsPerMinute, a.FluencyScore)
	if len(summary.Hotspots) > 0 {
		fmt.Fprintf(&b, "Words to practice: %s.\n", strings.Join(summary.Hotspots, ", "))
	}
	if summary.PositiveFeedback != "" {
		fmt.Fprintf(&b, "Strengths: %s\n", summary.PositiveFeedback)
	}
	if summary.ActionableTip != "" {
		fmt.Fprintf(&b, "Next step: %s\n", summary.ActionableTip)
	}
	return b.String()
}
