package question_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/saulo-duarte/sahayak-lambda/internal/llm"
	"github.com/saulo-duarte/sahayak-lambda/internal/question"
)

type stubClient struct {
	response string
	err      error
	prompt   string
}

func (s *stubClient) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func target(n int) question.TargetCount {
	return question.TargetCount{N: n, Set: true}
}

func TestGeneratePadsShortResponse(t *testing.T) {
	client := &stubClient{response: "```json\n" + `{
		"questions": [
			{"id":"q1","type":"multipleChoice","question":"Which river flows through Varanasi?",
			 "options":["Ganges","Yamuna","Godavari","Kaveri"],"correctAnswer":"Ganges",
			 "points":2,"skill":"Geography","difficulty":"easy"}
		],
		"totalCount": 1
	}` + "\n```"}

	svc := question.NewService(client)
	set, err := svc.Generate(context.Background(), question.GenerateRequest{
		Text: "passage", GradeLevel: "5", NumQuestions: target(3),
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(set.Questions) != 3 || set.TotalCount != 3 {
		t.Fatalf("expected 3 questions, got %d (totalCount %d)", len(set.Questions), set.TotalCount)
	}
	if set.Questions[0].Question != "Which river flows through Varanasi?" {
		t.Error("model-authored question was not preserved")
	}
	for i, q := range set.Questions[1:] {
		if !strings.Contains(q.Question, "Based on the text") {
			t.Errorf("item %d is not the synthetic template: %q", i+2, q.Question)
		}
	}
	if set.Questions[2].ID != "q3" {
		t.Errorf("ids not resequenced, got %q", set.Questions[2].ID)
	}
}

func TestGenerateTruncatesLongResponse(t *testing.T) {
	client := &stubClient{response: `{
		"questions": [
			{"id":"q1","question":"one"},{"id":"q2","question":"two"},
			{"id":"q3","question":"three"},{"id":"q4","question":"four"}
		],
		"totalCount": 4
	}`}

	svc := question.NewService(client)
	set, err := svc.Generate(context.Background(), question.GenerateRequest{
		Text: "passage", GradeLevel: "5", NumQuestions: target(2),
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(set.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(set.Questions))
	}
	if set.Questions[0].Question != "one" || set.Questions[1].Question != "two" {
		t.Error("truncation did not keep the prefix in order")
	}
}

func TestGenerateSkipsEnforcementWithoutTarget(t *testing.T) {
	client := &stubClient{response: `{"questions":[{"id":"a","question":"x"},{"id":"b","question":"y"}],"totalCount":2}`}

	svc := question.NewService(client)
	set, err := svc.Generate(context.Background(), question.GenerateRequest{Text: "p", GradeLevel: "4"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(set.Questions) != 2 {
		t.Fatalf("expected model count untouched, got %d", len(set.Questions))
	}
	if set.Questions[0].ID != "a" {
		t.Error("ids must not be rewritten when enforcement is skipped")
	}
}

func TestGenerateFallbackOnUnparseableResponse(t *testing.T) {
	client := &stubClient{response: "I cannot help with that."}

	svc := question.NewService(client)
	set, err := svc.Generate(context.Background(), question.GenerateRequest{
		Text: "p", GradeLevel: "4", NumQuestions: target(5),
	})
	if err != nil {
		t.Fatalf("fallback path must not error: %v", err)
	}

	if len(set.Questions) != 5 || set.TotalCount != 5 {
		t.Fatalf("expected 5 fallback questions, got %d", len(set.Questions))
	}
	for i, q := range set.Questions {
		if q.Skill != "Reading Comprehension" {
			t.Errorf("fallback item %d not from template: %+v", i, q)
		}
	}
}

func TestGenerateFallbackWithoutTargetYieldsOne(t *testing.T) {
	client := &stubClient{response: "no json here"}

	svc := question.NewService(client)
	set, err := svc.Generate(context.Background(), question.GenerateRequest{Text: "p", GradeLevel: "4"})
	if err != nil {
		t.Fatalf("fallback path must not error: %v", err)
	}
	if len(set.Questions) != 1 {
		t.Fatalf("expected single fallback question, got %d", len(set.Questions))
	}
}

func TestGeneratePropagatesUpstreamError(t *testing.T) {
	client := &stubClient{err: llm.ErrUpstream}

	svc := question.NewService(client)
	if _, err := svc.Generate(context.Background(), question.GenerateRequest{
		Text: "p", GradeLevel: "4", NumQuestions: target(2),
	}); !errors.Is(err, llm.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestGenerateSendsCountProportionalPrompt(t *testing.T) {
	client := &stubClient{response: `{"questions":[],"totalCount":0}`}

	svc := question.NewService(client)
	if _, err := svc.Generate(context.Background(), question.GenerateRequest{
		Text: "p", GradeLevel: "4", NumQuestions: target(4),
	}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.Contains(client.prompt, `"id": "q4"`) {
		t.Error("prompt example payload does not reach the requested count")
	}
}
