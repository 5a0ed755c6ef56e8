package question

type QuestionItem struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Question        string   `json:"question"`
	Options         []string `json:"options,omitempty"`
	CorrectAnswer   string   `json:"correctAnswer,omitempty"`
	Points          int      `json:"points"`
	Skill           string   `json:"skill"`
	Difficulty      string   `json:"difficulty"`
	CulturalContext string   `json:"culturalContext,omitempty"`
}

type QuestionSet struct {
	Questions  []QuestionItem `json:"questions"`
	TotalCount int            `json:"totalCount"`
}

type GenerateRequest struct {
	Text          string      `json:"text"`
	GradeLevel    string      `json:"gradeLevel"`
	NumQuestions  TargetCount `json:"numQuestions"`
	QuestionTypes []string    `json:"questionTypes"`
	Skills        []string    `json:"skills"`
}

type GenerateResponse struct {
	Questions  []QuestionItem `json:"questions"`
	TotalCount int            `json:"totalCount"`
	Requested  *int           `json:"requested,omitempty"`
	Generated  int            `json:"generated"`
}
