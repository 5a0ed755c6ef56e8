package knowledge

import "fmt"

// legacyAnswer is the shape an older prompt generation of the knowledge
// endpoint produced: a flat answer instead of the explanations bundle.
// Responses in this shape still appear and are converted rather than
// discarded.
type legacyAnswer struct {
	Answer   string   `json:"answer"`
	Analogy  string   `json:"analogy"`
	Examples []string `json:"examples"`
	Activity string   `json:"activity"`
}

// fromLegacy synthesizes the comprehensive bundle out of a legacy answer.
// Best-effort: derived fields are interpolated from the flat answer and the
// result is lower fidelity than a native response, but always shape-valid.
func fromLegacy(req AskRequest, old legacyAnswer) *Bundle {
	analogy := old.Analogy
	if analogy == "" {
		analogy = "Analogy not available"
	}
	activity := old.Activity
	if activity == "" {
		activity = "Simple classroom demonstration"
	}

	return &Bundle{
		Question:   req.Question,
		Subject:    req.Subject,
		GradeLevel: req.Grade,
		Language:   req.Language,
		Explanations: Explanations{
			Simple:    old.Answer,
			Detailed:  fmt.Sprintf("A more detailed explanation of %q: %s", req.Question, old.Answer),
			Analogy:   analogy,
			RealWorld: fmt.Sprintf("Real-world application: %s", old.Answer),
		},
		CulturalContext: CulturalContext{
			IndianExamples: old.Examples,
			LocalAnalogies: []string{analogy},
			Festivals:      []string{"Connection to Indian festivals and traditions"},
			DailyLife:      []string{"How this concept appears in Indian daily life"},
		},
		TeachingResources: TeachingResources{
			CommonMisconceptions: []string{"Common student misconceptions about this topic"},
			TeachingTips:         []string{"Practical teaching tips for this concept"},
			Demonstrations:       []string{activity},
			Activities:           []string{activity},
			Materials:            []string{"Basic classroom materials needed"},
		},
		VisualSuggestions: VisualSuggestions{
			SimpleDrawings: []string{"Simple diagram for the blackboard"},
			Experiments:    []string{activity},
			Gestures:       []string{"Hand gestures to explain the concept"},
		},
		RelatedQuestions: []string{
			"How does this relate to other concepts?",
			"What are practical applications of this?",
		},
		Difficulty:    "intermediate",
		EstimatedTime: "10 minutes explanation + 15 minutes activity",
		GradeAdaptations: GradeAdaptations{
			Grades1To2:  "Very simple explanation with pictures",
			Grades3To5:  old.Answer,
			Grades6To8:  fmt.Sprintf("More detailed: %s", old.Answer),
			Grades9To10: "Advanced explanation with scientific details",
		},
	}
}
