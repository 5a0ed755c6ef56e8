package content

import "fmt"

// truncate keeps the first n runes so a prose-only model reply can still be
// surfaced inside the fallback story.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// fallbackBundle is the hand-authored content bundle substituted when the
// model reply cannot be parsed. Shape-complete, populated from the request.
func fallbackBundle(req GenerateRequest, raw string) *ContentBundle {
	return &ContentBundle{
		MainContent: MainContent{
			Story: fmt.Sprintf("Here's an engaging %s story for Grade %s students in %s. %s",
				req.Subject, req.Grade, req.Location, truncate(raw, 500)),
			KeyPoints: []string{
				fmt.Sprintf("Key concept 1 for %s", req.Subject),
				"Important learning point 2",
				"Practical application 3",
				fmt.Sprintf("Cultural connection to %s", req.Location),
			},
			Vocabulary: []VocabularyTerm{
				{
					Term:       "Important Term",
					Definition: "Simple definition for students",
					Example:    fmt.Sprintf("Example from %s culture", req.Location),
				},
			},
		},
		TeachingTips: []TeachingTip{
			{
				Category:       "Engagement",
				Tip:            "Use local examples and cultural references",
				Implementation: "Connect lessons to familiar experiences",
			},
			{
				Category:       "Materials",
				Tip:            "Use locally available materials",
				Implementation: "Adapt activities to available resources",
			},
			{
				Category:       "Assessment",
				Tip:            "Use informal assessment techniques",
				Implementation: "Observe student participation and understanding",
			},
		},
		ExtensionActivities: []ExtensionActivity{
			{
				Title:           "Community Connection",
				Description:     "Connect learning to the local community",
				Materials:       []string{"local materials", "community resources"},
				GradeAdaptation: "Adjust complexity for different grade levels",
			},
			{
				Title:           "Creative Project",
				Description:     "Create something related to the topic",
				Materials:       []string{"basic art supplies", "local materials"},
				GradeAdaptation: "Vary project scope and complexity",
			},
		},
	}
}

func fallbackExamples(req ExamplesRequest) *ExampleSet {
	return &ExampleSet{
		Examples: []Example{
			{
				Title: "Cultural Story",
				Prompt: fmt.Sprintf("Create a %s story in %s about %s traditions that teaches important concepts to Grade %s students",
					req.Subject, req.Language, req.Location, req.Grade),
				Rationale: "Cultural stories connect learning to students' lived experiences",
			},
			{
				Title: "Local Activity",
				Prompt: fmt.Sprintf("Design a hands-on %s activity using materials available in %s for Grade %s",
					req.Subject, req.Location, req.Grade),
				Rationale: "Local materials make learning practical and accessible",
			},
			{
				Title: "Community Project",
				Prompt: fmt.Sprintf("Develop a %s project that connects Grade %s students to their %s community",
					req.Subject, req.Grade, req.Location),
				Rationale: "Community connections make learning meaningful and relevant",
			},
		},
	}
}
