package assessment

import "encoding/json"

type SaveRequest struct {
	StudentName string          `json:"studentName"`
	Grade       string          `json:"grade"`
	Subject     string          `json:"subject"`
	Result      json.RawMessage `json:"result"`
}

// resultSummary is the subset of the reading analysis the report pulls its
// headline numbers from.
type resultSummary struct {
	Accuracy         float64  `json:"accuracy"`
	WordsPerMinute   int      `json:"wordsPerMinute"`
	FluencyScore     int      `json:"fluencyScore"`
	PositiveFeedback string   `json:"positiveFeedback"`
	ActionableTip    string   `json:"actionableTip"`
	Hotspots         []string `json:"pronunciationHotspots"`
}

type Report struct {
	AssessmentID string `json:"assessment_id"`
	StudentName  string `json:"student_name"`
	Grade        string `json:"grade"`
	Subject      string `json:"subject"`
	GeneratedAt  string `json:"generated_at"`
	Summary      string `json:"summary"`
}
