package worksheet

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubClient struct {
	replies []string
	errs    []error
	calls   int
	prompts []string
}

func (s *stubClient) Complete(_ context.Context, prompt string) (string, error) {
	i := s.calls
	s.calls++
	s.prompts = append(s.prompts, prompt)
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	var reply string
	if i < len(s.replies) {
		reply = s.replies[i]
	}
	return reply, err
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()
	req := AnalyzeRequest{Content: "Photosynthesis is the process by which plants make food."}

	t.Run("ParsesFencedJSON", func(t *testing.T) {
		stub := &stubClient{replies: []string{"```json\n{" +
			`"topic":"Photosynthesis","keyTerms":["chlorophyll","sunlight"],"concepts":["Energy conversion"],` +
			`"difficulty":"intermediate","suggestedGrades":["Grade 4","Grade 5"],"contentType":"text","subject":"Science"` +
			"}\n```"}}
		svc := NewService(stub)

		analysis, err := svc.Analyze(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if analysis.Topic != "Photosynthesis" {
			t.Errorf("topic = %q, want Photosynthesis", analysis.Topic)
		}
		if analysis.Subject != "Science" {
			t.Errorf("subject = %q, want Science", analysis.Subject)
		}
	})

	t.Run("FallsBackOnProse", func(t *testing.T) {
		stub := &stubClient{replies: []string{"The page appears to discuss plants."}}
		svc := NewService(stub)

		analysis, err := svc.Analyze(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if analysis.Topic != "Educational Content Analysis" {
			t.Errorf("fallback topic = %q", analysis.Topic)
		}
		if len(analysis.SuggestedGrades) != 3 {
			t.Errorf("fallback grades = %d, want 3", len(analysis.SuggestedGrades))
		}
	})

	t.Run("UpstreamErrorPropagates", func(t *testing.T) {
		wantErr := errors.New("model unavailable")
		svc := NewService(&stubClient{errs: []error{wantErr}})

		if _, err := svc.Analyze(ctx, req); !errors.Is(err, wantErr) {
			t.Fatalf("error = %v, want %v", err, wantErr)
		}
	})
}

func TestGradeProfile(t *testing.T) {
	tests := []struct {
		grade      string
		difficulty string
		count      int
	}{
		{"Grade 1", "easy", 6},
		{"Grade 2", "easy", 6},
		{"Grade 3", "medium", 8},
		{"Grade 5", "medium", 8},
		{"Grade 6", "hard", 10},
		{"Grade 10", "hard", 10},
		{"Kindergarten", "hard", 10},
	}
	for _, tt := range tests {
		t.Run(tt.grade, func(t *testing.T) {
			difficulty, _, count := gradeProfile(tt.grade)
			if difficulty != tt.difficulty || count != tt.count {
				t.Errorf("gradeProfile(%q) = %s/%d, want %s/%d", tt.grade, difficulty, count, tt.difficulty, tt.count)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	analysis := TextbookAnalysis{
		Topic:    "Photosynthesis",
		KeyTerms: []string{"chlorophyll"},
		Concepts: []string{"Energy conversion"},
	}

	t.Run("FallbacksCarryFullExerciseCount", func(t *testing.T) {
		stub := &stubClient{replies: []string{"nonsense", "nonsense", "nonsense"}}
		svc := NewService(stub)

		resp, err := svc.Generate(ctx, GenerateRequest{
			AnalyzedContent: analysis,
			TargetGrades:    []string{"Grade 1", "Grade 4", "Grade 8"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.TotalGenerated != 3 {
			t.Fatalf("totalGenerated = %d, want 3", resp.TotalGenerated)
		}
		wantCounts := []int{6, 8, 10}
		for i, sheet := range resp.Worksheets {
			if len(sheet.Exercises) != wantCounts[i] {
				t.Errorf("worksheet %s has %d exercises, want %d", sheet.Grade, len(sheet.Exercises), wantCounts[i])
			}
			if sheet.Title == "" || sheet.Instructions == "" {
				t.Errorf("fallback worksheet %s should be shape-complete", sheet.Grade)
			}
		}
	})

	t.Run("NormalizesSparseExercises", func(t *testing.T) {
		stub := &stubClient{replies: []string{`{"title":"Plants Worksheet","exercises":[{"question":"What makes leaves green?"},{"id":"custom","type":"truefalse","question":"Plants need sunlight.","correctAnswer":"true","points":1}]}`}}
		svc := NewService(stub)

		resp, err := svc.Generate(ctx, GenerateRequest{
			AnalyzedContent: analysis,
			TargetGrades:    []string{"Grade 4"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sheet := resp.Worksheets[0]
		if sheet.Grade != "Grade 4" {
			t.Errorf("grade = %q, want filled from request", sheet.Grade)
		}
		if sheet.Difficulty != "medium" {
			t.Errorf("difficulty = %q, want medium", sheet.Difficulty)
		}
		first := sheet.Exercises[0]
		if first.ID != "ex1" || first.Type != "shortAnswer" || first.Points != 2 {
			t.Errorf("sparse exercise not normalized: %+v", first)
		}
		if first.Options == nil {
			t.Error("options should never be nil")
		}
		second := sheet.Exercises[1]
		if second.ID != "custom" || second.Points != 1 {
			t.Errorf("populated exercise should be preserved: %+v", second)
		}
	})

	t.Run("PerGradeFailureStillYieldsWorksheet", func(t *testing.T) {
		good := `{"grade":"Grade 2","title":"Easy Plants","difficulty":"easy","instructions":"Try your best.","exercises":[{"id":"ex1","type":"shortAnswer","question":"Name a plant.","correctAnswer":"Tulsi","points":2}]}`
		stub := &stubClient{
			replies: []string{good, ""},
			errs:    []error{nil, errors.New("model unavailable")},
		}
		svc := NewService(stub)

		resp, err := svc.Generate(ctx, GenerateRequest{
			AnalyzedContent: analysis,
			TargetGrades:    []string{"Grade 2", "Grade 7"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.TotalGenerated != 2 {
			t.Fatalf("totalGenerated = %d, want 2", resp.TotalGenerated)
		}
		if resp.Worksheets[0].Title != "Easy Plants" {
			t.Errorf("first worksheet = %q, want parsed model output", resp.Worksheets[0].Title)
		}
		if len(resp.Worksheets[1].Exercises) != 10 {
			t.Errorf("failed grade fallback has %d exercises, want 10", len(resp.Worksheets[1].Exercises))
		}
	})

	t.Run("QuestionTypesDefaultToMixed", func(t *testing.T) {
		stub := &stubClient{replies: []string{"nonsense"}}
		svc := NewService(stub)

		if _, err := svc.Generate(ctx, GenerateRequest{
			AnalyzedContent: analysis,
			TargetGrades:    []string{"Grade 3"},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stub.prompts[0], "Mixed Variety") {
			t.Error("prompt should use the mixed type instructions by default")
		}
	})
}
