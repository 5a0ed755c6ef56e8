package question

import "fmt"

const (
	syntheticType       = "multipleChoice"
	syntheticSkill      = "Reading Comprehension"
	syntheticDifficulty = "medium"
	syntheticContext    = "Connects to Indian educational values and cultural context"
	syntheticPoints     = 2
)

var syntheticOptions = []string{
	"Option A - First possible answer",
	"Option B - Second possible answer",
	"Option C - Third possible answer",
	"Option D - Fourth possible answer",
}

// syntheticItem builds the fixed-template placeholder question at 1-based
// position k. Apart from the embedded index it is byte-identical across runs.
func syntheticItem(k int) QuestionItem {
	options := make([]string, len(syntheticOptions))
	copy(options, syntheticOptions)

	return QuestionItem{
		ID:              fmt.Sprintf("q%d", k),
		Type:            syntheticType,
		Question:        fmt.Sprintf("Question %d: Based on the text, what is an important concept to understand?", k),
		Options:         options,
		CorrectAnswer:   syntheticOptions[0],
		Points:          syntheticPoints,
		Skill:           syntheticSkill,
		Difficulty:      syntheticDifficulty,
		CulturalContext: syntheticContext,
	}
}

// Enforce forces set to hold exactly n questions: extra items are dropped
// from the tail, missing ones are appended as synthetic placeholders, and
// every ID is resequenced q1..qN regardless of what the model produced.
// Idempotent for a fixed n.
func Enforce(set *QuestionSet, n int) {
	if n < 0 {
		return
	}
	if set.Questions == nil {
		set.Questions = []QuestionItem{}
	}

	if len(set.Questions) > n {
		set.Questions = set.Questions[:n]
	}
	for k := len(set.Questions) + 1; k <= n; k++ {
		set.Questions = append(set.Questions, syntheticItem(k))
	}

	for i := range set.Questions {
		set.Questions[i].ID = fmt.Sprintf("q%d", i+1)
	}
	set.TotalCount = n
}
