package worksheet

import "fmt"

// fallbackAnalysis is returned when the analysis reply cannot be parsed.
func fallbackAnalysis() *TextbookAnalysis {
	return &TextbookAnalysis{
		Topic:            "Educational Content Analysis",
		ImageDescription: "Textbook page uploaded for analysis",
		KeyTerms:         []string{"learning", "education", "knowledge", "study", "concept"},
		Concepts:         []string{"Basic understanding", "Key learning points", "Educational content", "Study material"},
		Difficulty:       "intermediate",
		SuggestedGrades:  []string{"Grade 3", "Grade 4", "Grade 5"},
		ContentType:      "text",
		Subject:          "General",
	}
}

// fallbackWorksheet builds a complete worksheet with the full exercise count
// for a grade whose generation call or parse failed.
func fallbackWorksheet(topic, grade, difficulty string, exerciseCount int) Worksheet {
	exercises := make([]Exercise, 0, exerciseCount)
	for i := 0; i < exerciseCount; i++ {
		ex := Exercise{
			ID:       fmt.Sprintf("ex%d", i+1),
			Question: fmt.Sprintf("Question %d: Based on the textbook content, what is an important concept to understand?", i+1),
			Options:  []string{},
			Points:   2,
			Hint:     "Think about the main ideas from the textbook page",
		}
		if i%2 == 0 {
			ex.Type = "multipleChoice"
			ex.Options = []string{"Option A", "Option B", "Option C", "Option D"}
			ex.CorrectAnswer = "Option A"
		} else {
			ex.Type = "shortAnswer"
			ex.CorrectAnswer = "Sample answer explaining key concept"
		}
		exercises = append(exercises, ex)
	}

	return Worksheet{
		Grade:        grade,
		Title:        fmt.Sprintf("%s - %s Worksheet", topic, grade),
		Difficulty:   difficulty,
		Instructions: "Read each question carefully and provide your best answer.",
		Exercises:    exercises,
	}
}
