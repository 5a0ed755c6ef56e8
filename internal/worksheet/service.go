package worksheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/saulo-duarte/sahayak-lambda/internal/config"
	"github.com/saulo-duarte/sahayak-lambda/internal/llm"
	"github.com/saulo-duarte/sahayak-lambda/internal/normalize"
)

type Service interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*TextbookAnalysis, error)
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type service struct {
	llm llm.Client
}

func NewService(client llm.Client) Service {
	return &service{llm: client}
}

func (s *service) Analyze(ctx context.Context, req AnalyzeRequest) (*TextbookAnalysis, error) {
	log := config.WithContext(ctx)

	raw, err := s.llm.Complete(ctx, BuildAnalysisPrompt(req))
	if err != nil {
		return nil, err
	}

	var analysis TextbookAnalysis
	if err := normalize.Object(raw, &analysis); err != nil {
		log.WithError(err).Warn("Textbook analysis unparseable, substituting fallback")
		return fallbackAnalysis(), nil
	}

	return &analysis, nil
}

// gradeProfile maps a grade label like "Grade 4" to the difficulty band used
// for its worksheet. Unrecognised labels land in the hardest band.
func gradeProfile(grade string) (difficulty, complexity string, exerciseCount int) {
	n, err := strconv.Atoi(strings.TrimPrefix(grade, "Grade "))
	switch {
	case err == nil && n <= 2:
		return "easy", "simple", 6
	case err == nil && n <= 5:
		return "medium", "intermediate", 8
	default:
		return "hard", "advanced", 10
	}
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	log := config.WithContext(ctx)

	if len(req.QuestionTypes) == 0 {
		req.QuestionTypes = []string{"mixed"}
	}

	worksheets := make([]Worksheet, 0, len(req.TargetGrades))
	for _, grade := range req.TargetGrades {
		difficulty, complexity, count := gradeProfile(grade)

		raw, err := s.llm.Complete(ctx, BuildWorksheetPrompt(req, grade, difficulty, complexity, count))
		if err != nil {
			log.WithError(err).WithField("grade", grade).Warn("Worksheet generation failed, substituting fallback")
			worksheets = append(worksheets, fallbackWorksheet(req.AnalyzedContent.Topic, grade, difficulty, count))
			continue
		}

		var sheet Worksheet
		if err := normalize.Object(raw, &sheet); err != nil || len(sheet.Exercises) == 0 {
			log.WithField("grade", grade).Warn("Worksheet response unparseable, substituting fallback")
			worksheets = append(worksheets, fallbackWorksheet(req.AnalyzedContent.Topic, grade, difficulty, count))
			continue
		}

		normalizeWorksheet(&sheet, grade, difficulty)
		worksheets = append(worksheets, sheet)
	}

	return &GenerateResponse{
		Worksheets:     worksheets,
		TotalGenerated: len(worksheets),
		TargetGrades:   req.TargetGrades,
	}, nil
}

// normalizeWorksheet fills in the fields the model routinely leaves out so
// every exercise presented to the dashboard is complete.
func normalizeWorksheet(sheet *Worksheet, grade, difficulty string) {
	if sheet.Grade == "" {
		sheet.Grade = grade
	}
	if sheet.Difficulty == "" {
		sheet.Difficulty = difficulty
	}
	for i := range sheet.Exercises {
		ex := &sheet.Exercises[i]
		if ex.ID == "" {
			ex.ID = fmt.Sprintf("ex%d", i+1)
		}
		if ex.Type == "" {
			ex.Type = "shortAnswer"
		}
		if ex.Question == "" {
			ex.Question = fmt.Sprintf("Question %d", i+1)
		}
		if ex.Options == nil {
			ex.Options = []string{}
		}
		if ex.CorrectAnswer == "" {
			ex.CorrectAnswer = "Sample answer"
		}
		if ex.Points == 0 {
			ex.Points = 2
		}
	}
}
