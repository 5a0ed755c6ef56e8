package weeklyplan

import "github.com/saulo-duarte/sahayak-lambda/internal/worksheet"

type GenerateRequest struct {
	AnalyzedContent worksheet.TextbookAnalysis `json:"analyzedContent"`
	TargetGrades    []string                   `json:"targetGrades"`
	NumberOfWeeks   int                        `json:"numberOfWeeks"`
}

type Activity struct {
	Time            string   `json:"time"`
	Activity        string   `json:"activity"`
	Description     string   `json:"description"`
	Materials       []string `json:"materials"`
	GradeAdaptation string   `json:"gradeAdaptation"`
}

type DailyPlan struct {
	Day        string     `json:"day"`
	Title      string     `json:"title"`
	Duration   string     `json:"duration"`
	Activities []Activity `json:"activities"`
}

type DailyPlans struct {
	Monday    DailyPlan `json:"monday"`
	Tuesday   DailyPlan `json:"tuesday"`
	Wednesday DailyPlan `json:"wednesday"`
	Thursday  DailyPlan `json:"thursday"`
	Friday    DailyPlan `json:"friday"`
}

type Resources struct {
	Materials           []string `json:"materials"`
	CulturalConnections []string `json:"culturalConnections"`
	AssessmentTools     []string `json:"assessmentTools"`
}

type Adaptations struct {
	LowerGrades  string `json:"lowerGrades"`
	HigherGrades string `json:"higherGrades"`
	MixedGrade   string `json:"mixedGrade"`
}

type WeeklyPlan struct {
	Week               int         `json:"week"`
	Theme              string      `json:"theme"`
	Overview           string      `json:"overview"`
	LearningObjectives []string    `json:"learningObjectives"`
	DailyPlans         DailyPlans  `json:"dailyPlans"`
	Resources          Resources   `json:"resources"`
	Homework           []string    `json:"homework"`
	Adaptations        Adaptations `json:"adaptations"`
}

type GenerateResponse struct {
	WeeklyPlans  []WeeklyPlan `json:"weeklyPlans"`
	TotalWeeks   int          `json:"totalWeeks"`
	TargetGrades []string     `json:"targetGrades"`
}
