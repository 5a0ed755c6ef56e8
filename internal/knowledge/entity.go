package knowledge

type AskRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
	Grade    string `json:"grade"`
	Subject  string `json:"subject"`
	Context  string `json:"context"`
}

// ApplyDefaults mirrors the dashboard's optional fields.
func (r *AskRequest) ApplyDefaults() {
	if r.Language == "" {
		r.Language = "english"
	}
	if r.Grade == "" {
		r.Grade = "3-5"
	}
	if r.Subject == "" {
		r.Subject = "general"
	}
	if r.Context == "" {
		r.Context = "multi-grade Indian classroom"
	}
}

type Explanations struct {
	Simple    string `json:"simple"`
	Detailed  string `json:"detailed"`
	Analogy   string `json:"analogy"`
	RealWorld string `json:"realWorld"`
}

type CulturalContext struct {
	IndianExamples []string `json:"indianExamples"`
	LocalAnalogies []string `json:"localAnalogies"`
	Festivals      []string `json:"festivals"`
	DailyLife      []string `json:"dailyLife"`
}

type TeachingResources struct {
	CommonMisconceptions []string `json:"commonMisconceptions"`
	TeachingTips         []string `json:"teachingTips"`
	Demonstrations       []string `json:"demonstrations"`
	Activities           []string `json:"activities"`
	Materials            []string `json:"materials"`
}

type VisualSuggestions struct {
	SimpleDrawings []string `json:"simpleDrawings"`
	Experiments    []string `json:"experiments"`
	Gestures       []string `json:"gestures"`
}

type GradeAdaptations struct {
	Grades1To2  string `json:"grades1-2"`
	Grades3To5  string `json:"grades3-5"`
	Grades6To8  string `json:"grades6-8"`
	Grades9To10 string `json:"grades9-10"`
}

type Bundle struct {
	Question          string            `json:"question"`
	Subject           string            `json:"subject"`
	GradeLevel        string            `json:"gradeLevel"`
	Language          string            `json:"language"`
	Explanations      Explanations      `json:"explanations"`
	CulturalContext   CulturalContext   `json:"culturalContext"`
	TeachingResources TeachingResources `json:"teachingResources"`
	VisualSuggestions VisualSuggestions `json:"visualSuggestions"`
	RelatedQuestions  []string          `json:"relatedQuestions"`
	Difficulty        string            `json:"difficulty"`
	EstimatedTime     string            `json:"estimatedTime"`
	GradeAdaptations  GradeAdaptations  `json:"gradeAdaptations"`
}
