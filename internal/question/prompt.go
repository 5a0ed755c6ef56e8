package question

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the generation instruction as a pure function of the
// request. When a target count is set, the embedded example payload contains
// exactly that many example entries so the instruction itself scales with
// the requested quantity.
func BuildPrompt(req GenerateRequest) string {
	types := strings.Join(req.QuestionTypes, ", ")
	if types == "" {
		types = "multipleChoice"
	}
	skills := strings.Join(req.Skills, ", ")
	if skills == "" {
		skills = "Reading Comprehension"
	}

	var b strings.Builder

	if req.NumQuestions.Set {
		n := req.NumQuestions.N
		fmt.Fprintf(&b, "You MUST generate EXACTLY %d questions. A response with any other count will be rejected.\n\n", n)
		fmt.Fprintf(&b, "Generate %d culturally relevant questions for Grade %s students based on this text:\n\n", n, req.GradeLevel)
	} else {
		fmt.Fprintf(&b, "Generate culturally relevant questions for Grade %s students based on this text:\n\n", req.GradeLevel)
	}

	fmt.Fprintf(&b, "%q\n\n", req.Text)
	fmt.Fprintf(&b, "Question Types: %s\nSkills to Assess: %s\n\n", types, skills)

	b.WriteString("Respond with ONLY valid JSON in this EXACT format:\n\n")
	b.WriteString(examplePayload(req))

	b.WriteString("\n\nRequirements:\n")
	b.WriteString("- Use Indian names, places, and cultural references\n")
	b.WriteString("- Include local examples (festivals, food, traditions)\n")
	fmt.Fprintf(&b, "- Mix difficulty levels appropriate for Grade %s\n", req.GradeLevel)
	if req.NumQuestions.Set {
		fmt.Fprintf(&b, "- Number questions as q1, q2, q3... up to q%d\n", req.NumQuestions.N)
		fmt.Fprintf(&b, "- Count your questions before responding: the array must hold exactly %d entries\n", req.NumQuestions.N)
	} else {
		b.WriteString("- Number questions sequentially as q1, q2, q3...\n")
	}

	return b.String()
}

// examplePayload renders a complete example response. One example entry per
// requested question; two when no count was requested.
func examplePayload(req GenerateRequest) string {
	n := 2
	if req.NumQuestions.Set {
		n = req.NumQuestions.N
	}

	letters := []string{"Option A", "Option B", "Option C", "Option D"}

	var b strings.Builder
	b.WriteString("{\n  \"questions\": [")
	for k := 1; k <= n; k++ {
		if k > 1 {
			b.WriteString(",")
		}
		b.WriteString("\n    {\n")
		fmt.Fprintf(&b, "      \"id\": \"q%d\",\n", k)
		b.WriteString("      \"type\": \"multipleChoice\",\n")
		fmt.Fprintf(&b, "      \"question\": \"Question %d with Indian cultural context\",\n", k)
		b.WriteString("      \"options\": [\"Option A\", \"Option B\", \"Option C\", \"Option D\"],\n")
		fmt.Fprintf(&b, "      \"correctAnswer\": %q,\n", letters[(k-1)%len(letters)])
		b.WriteString("      \"points\": 2,\n")
		b.WriteString("      \"skill\": \"Reading Comprehension\",\n")
		b.WriteString("      \"difficulty\": \"medium\",\n")
		b.WriteString("      \"culturalContext\": \"How this question relates to Indian culture\"\n")
		b.WriteString("    }")
	}
	b.WriteString("\n  ],\n")
	fmt.Fprintf(&b, "  \"totalCount\": %d\n}", n)
	return b.String()
}
