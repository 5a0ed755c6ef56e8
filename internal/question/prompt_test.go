package question

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildPromptIsDeterministic(t *testing.T) {
	req := GenerateRequest{
		Text:         "The Ganges is the longest river in India.",
		GradeLevel:   "5",
		NumQuestions: TargetCount{N: 3, Set: true},
		Skills:       []string{"Geography"},
	}

	if BuildPrompt(req) != BuildPrompt(req) {
		t.Fatal("prompt differs across calls for the same request")
	}
}

func TestExamplePayloadScalesWithCount(t *testing.T) {
	for _, n := range []int{1, 3, 8} {
		req := GenerateRequest{
			Text:         "sample",
			GradeLevel:   "4",
			NumQuestions: TargetCount{N: n, Set: true},
		}

		payload := examplePayload(req)

		var parsed QuestionSet
		if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
			t.Fatalf("example payload for n=%d is not valid JSON: %v", n, err)
		}
		if len(parsed.Questions) != n {
			t.Errorf("example payload holds %d entries, want %d", len(parsed.Questions), n)
		}
		if parsed.TotalCount != n {
			t.Errorf("example totalCount %d, want %d", parsed.TotalCount, n)
		}
	}
}

func TestBuildPromptEmbedsRequestFields(t *testing.T) {
	req := GenerateRequest{
		Text:          "Diwali is the festival of lights.",
		GradeLevel:    "3",
		NumQuestions:  TargetCount{N: 2, Set: true},
		QuestionTypes: []string{"multipleChoice", "shortAnswer"},
		Skills:        []string{"Cultural Awareness"},
	}

	prompt := BuildPrompt(req)

	for _, want := range []string{
		"Diwali is the festival of lights.",
		"Grade 3",
		"EXACTLY 2 questions",
		"multipleChoice, shortAnswer",
		"Cultural Awareness",
		"up to q2",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptWithoutTarget(t *testing.T) {
	req := GenerateRequest{Text: "sample", GradeLevel: "6"}
	prompt := BuildPrompt(req)

	if strings.Contains(prompt, "EXACTLY") {
		t.Error("prompt must not demand an exact count when none was requested")
	}
}
