package content

type GenerateRequest struct {
	Description string `json:"description"`
	Language    string `json:"language"`
	Grade       string `json:"grade"`
	Subject     string `json:"subject"`
	Location    string `json:"location"`
}

type ExamplesRequest struct {
	Language string `json:"language"`
	Grade    string `json:"grade"`
	Subject  string `json:"subject"`
	Location string `json:"location"`
}

type VocabularyTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

type MainContent struct {
	Story      string           `json:"story"`
	KeyPoints  []string         `json:"keyPoints"`
	Vocabulary []VocabularyTerm `json:"vocabulary"`
}

type TeachingTip struct {
	Category       string `json:"category"`
	Tip            string `json:"tip"`
	Implementation string `json:"implementation"`
}

type ExtensionActivity struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Materials       []string `json:"materials"`
	GradeAdaptation string   `json:"gradeAdaptation"`
}

type ContentBundle struct {
	MainContent         MainContent         `json:"mainContent"`
	TeachingTips        []TeachingTip       `json:"teachingTips"`
	ExtensionActivities []ExtensionActivity `json:"extensionActivities"`
}

type Example struct {
	Title     string `json:"title"`
	Prompt    string `json:"prompt"`
	Rationale string `json:"rationale"`
}

type ExampleSet struct {
	Examples []Example `json:"examples"`
}
