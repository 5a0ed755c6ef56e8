package passage

type GenerateRequest struct {
	Grade           string `json:"grade"`
	Subject         string `json:"subject"`
	Topic           string `json:"topic"`
	Language        string `json:"language"`
	CulturalContext string `json:"culturalContext"`
}

// ApplyDefaults mirrors the dashboard's optional fields.
func (r *GenerateRequest) ApplyDefaults() {
	if r.Topic == "" {
		r.Topic = r.Subject
	}
	if r.Language == "" {
		r.Language = "English"
	}
	if r.CulturalContext == "" {
		r.CulturalContext = "Indian educational context"
	}
}

type Passage struct {
	Title               string   `json:"title"`
	Content             string   `json:"content"`
	GradeLevel          string   `json:"gradeLevel"`
	Subject             string   `json:"subject"`
	KeyPoints           []string `json:"keyPoints"`
	DiscussionQuestions []string `json:"discussionQuestions"`
	Vocabulary          []string `json:"vocabulary"`
}
