package worksheet

type AnalyzeRequest struct {
	Content  string `json:"content"`
	FileType string `json:"fileType"`
}

type TextbookAnalysis struct {
	Topic            string   `json:"topic"`
	ImageDescription string   `json:"imageDescription,omitempty"`
	KeyTerms         []string `json:"keyTerms"`
	Concepts         []string `json:"concepts"`
	Difficulty       string   `json:"difficulty"`
	SuggestedGrades  []string `json:"suggestedGrades"`
	ContentType      string   `json:"contentType"`
	Subject          string   `json:"subject"`
}

type GenerateRequest struct {
	AnalyzedContent TextbookAnalysis `json:"analyzedContent"`
	TargetGrades    []string         `json:"targetGrades"`
	QuestionTypes   []string         `json:"questionTypes"`
}

type Exercise struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Points        int      `json:"points"`
	Hint          string   `json:"hint"`
}

type Worksheet struct {
	Grade        string     `json:"grade"`
	Title        string     `json:"title"`
	Difficulty   string     `json:"difficulty"`
	Instructions string     `json:"instructions"`
	Exercises    []Exercise `json:"exercises"`
}

type GenerateResponse struct {
	Worksheets     []Worksheet `json:"worksheets"`
	TotalGenerated int         `json:"totalGenerated"`
	TargetGrades   []string    `json:"targetGrades"`
}
