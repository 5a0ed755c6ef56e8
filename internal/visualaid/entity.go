package visualaid

type GenerateRequest struct {
	Description string `json:"description"`
	Subject     string `json:"subject"`
	GradeLevel  string `json:"gradeLevel"`
	Complexity  string `json:"complexity"`
}

type VisualAid struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Subject         string   `json:"subject"`
	Complexity      string   `json:"complexity"`
	Concepts        []string `json:"concepts"`
	Materials       []string `json:"materials"`
	Instructions    []string `json:"instructions"`
	BlackboardSteps []string `json:"blackboardSteps"`
	SVGContent      string   `json:"svgContent"`
}
