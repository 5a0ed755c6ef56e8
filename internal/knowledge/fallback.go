package knowledge

import "fmt"

// fallbackBundle is the shape-complete replacement used when the model reply
// cannot be parsed at all. Generic, but keyed to the teacher's question.
func fallbackBundle(req AskRequest) *Bundle {
	q := req.Question

	return &Bundle{
		Question:   q,
		Subject:    req.Subject,
		GradeLevel: req.Grade,
		Language:   req.Language,
		Explanations: Explanations{
			Simple:    fmt.Sprintf("Here's a simple explanation of %s for %s students. This concept helps us understand the world around us.", q, req.Grade),
			Detailed:  fmt.Sprintf("A detailed explanation of %s covers the underlying principles and how its key components work together.", q),
			Analogy:   fmt.Sprintf("Think of %s like something familiar from Indian daily life - just as processes unfold in the kitchen when cooking, this concept works in a similar way in nature.", q),
			RealWorld: fmt.Sprintf("In real life, %s affects things we see every day in India, from the monsoon seasons to the way we cook our food.", q),
		},
		CulturalContext: CulturalContext{
			IndianExamples: []string{
				"Example from Indian festivals like Diwali or Holi",
				"Example from Indian climate and monsoons",
				"Example from Indian cooking and spices",
				"Example from Indian daily family life",
			},
			LocalAnalogies: []string{
				"Like making rotis in the kitchen",
				"Like celebrating festivals with family",
				"Like the changing seasons in India",
			},
			Festivals: []string{
				"Connection to major Indian festivals",
				"Connection to regional celebrations",
			},
			DailyLife: []string{
				"How this appears in Indian homes",
				"How this relates to Indian school life",
			},
		},
		TeachingResources: TeachingResources{
			CommonMisconceptions: []string{
				"Students might think this concept works differently than it does",
				"Another common misunderstanding about this topic",
			},
			TeachingTips: []string{
				"Use familiar Indian examples to explain this concept",
				"Connect to students' daily experiences",
				"Encourage questions and discussion",
			},
			Demonstrations: []string{
				"Simple classroom demonstration using basic materials",
				"Visual demonstration using drawings",
			},
			Activities: []string{
				"Interactive activity using local materials",
				"Group activity for a multi-grade classroom",
			},
			Materials: []string{
				"Basic classroom supplies",
				"Common household items",
				"Natural materials from the environment",
			},
		},
		VisualSuggestions: VisualSuggestions{
			SimpleDrawings: []string{
				"Simple diagram for the blackboard",
				"Basic sketch to illustrate the concept",
			},
			Experiments: []string{
				"Safe experiment to demonstrate the concept",
				"Observation activity for students",
			},
			Gestures: []string{
				"Hand gestures to explain the concept",
				"Body movements to demonstrate the idea",
			},
		},
		RelatedQuestions: []string{
			"Follow-up question to deepen understanding",
			"Connected question about a similar concept",
			"Advanced question for higher grades",
		},
		Difficulty:    "intermediate",
		EstimatedTime: "10 minutes for explanation + 15 minutes for activity",
		GradeAdaptations: GradeAdaptations{
			Grades1To2:  "Very simple explanation with lots of pictures and examples",
			Grades3To5:  "Standard explanation with Indian examples and activities",
			Grades6To8:  "More detailed explanation with scientific terminology",
			Grades9To10: "Advanced explanation with real-world applications",
		},
	}
}
