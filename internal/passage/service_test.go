package passage

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubClient struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubClient) Complete(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	req := GenerateRequest{Grade: "4", Subject: "Science", Topic: "The Water Cycle"}
	req.ApplyDefaults()

	t.Run("ParsesFencedJSON", func(t *testing.T) {
		stub := &stubClient{reply: "```json\n{" +
			`"title":"Rain in Rajasthan","content":"Meera watched the clouds gather over her village...",` +
			`"gradeLevel":"4","subject":"Science","keyPoints":["Evaporation"],` +
			`"discussionQuestions":["Where does rain come from?"],"vocabulary":["monsoon"]` +
			"}\n```"}
		svc := NewService(stub)

		p, err := svc.Generate(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Title != "Rain in Rajasthan" {
			t.Errorf("title = %q", p.Title)
		}
		if len(p.Vocabulary) != 1 || p.Vocabulary[0] != "monsoon" {
			t.Errorf("vocabulary = %v", p.Vocabulary)
		}
	})

	t.Run("FallsBackOnProse", func(t *testing.T) {
		stub := &stubClient{reply: "Here is a nice passage about the water cycle for your class."}
		svc := NewService(stub)

		p, err := svc.Generate(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(p.Content, "The Water Cycle") {
			t.Errorf("fallback content should reference the topic, got %q", p.Content)
		}
		if len(p.KeyPoints) == 0 || len(p.DiscussionQuestions) == 0 || len(p.Vocabulary) == 0 {
			t.Error("fallback passage should be shape-complete")
		}
	})

	t.Run("FillsMissingGradeAndSubject", func(t *testing.T) {
		stub := &stubClient{reply: `{"title":"A Story","content":"Once upon a time in Chennai..."}`}
		svc := NewService(stub)

		p, err := svc.Generate(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.GradeLevel != "4" || p.Subject != "Science" {
			t.Errorf("gradeLevel = %q, subject = %q, want filled from request", p.GradeLevel, p.Subject)
		}
	})

	t.Run("UpstreamErrorPropagates", func(t *testing.T) {
		wantErr := errors.New("model unavailable")
		svc := NewService(&stubClient{err: wantErr})

		if _, err := svc.Generate(ctx, req); !errors.Is(err, wantErr) {
			t.Fatalf("error = %v, want %v", err, wantErr)
		}
	})

	t.Run("PromptCarriesDefaults", func(t *testing.T) {
		stub := &stubClient{reply: `{"content":"text"}`}
		svc := NewService(stub)

		plain := GenerateRequest{Grade: "2", Subject: "English"}
		plain.ApplyDefaults()
		if _, err := svc.Generate(ctx, plain); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stub.lastPrompt, "Topic: English") {
			t.Error("topic should default to the subject")
		}
		if !strings.Contains(stub.lastPrompt, "Language: English") {
			t.Error("language should default to English")
		}
		if !strings.Contains(stub.lastPrompt, "Indian educational context") {
			t.Error("cultural context should carry the default")
		}
	})
}
