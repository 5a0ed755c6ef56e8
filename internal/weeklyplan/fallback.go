package weeklyplan

import "fmt"

// fallbackPlan builds a complete single-week plan around the analysed topic
// for a week whose generation call or parse failed.
func fallbackPlan(topic string, week int) WeeklyPlan {
	return WeeklyPlan{
		Week:     week,
		Theme:    fmt.Sprintf("Week %d: %s", week, topic),
		Overview: fmt.Sprintf("This week students will explore %s through various activities and cultural connections.", topic),
		LearningObjectives: []string{
			fmt.Sprintf("Students will understand the key concepts of %s", topic),
			"Students will be able to apply learning to real-world situations",
			"Students will analyze the cultural significance of the topic",
		},
		DailyPlans: DailyPlans{
			Monday: DailyPlan{
				Day:      "Monday",
				Title:    "Introduction to the Topic",
				Duration: "45 minutes",
				Activities: []Activity{
					{
						Time:            "0-10 min",
						Activity:        "Warm-up and Review",
						Description:     "Quick review and introduction",
						Materials:       []string{"Blackboard", "Chalk"},
						GradeAdaptation: "Simpler questions for younger grades",
					},
					{
						Time:            "10-35 min",
						Activity:        "Main Lesson",
						Description:     fmt.Sprintf("Introduce %s with Indian examples", topic),
						Materials:       []string{"Textbook", "Local examples"},
						GradeAdaptation: "Different complexity levels",
					},
					{
						Time:            "35-45 min",
						Activity:        "Wrap-up",
						Description:     "Summary and preview",
						Materials:       []string{"Discussion"},
						GradeAdaptation: "Age-appropriate questioning",
					},
				},
			},
			Tuesday: DailyPlan{
				Day:      "Tuesday",
				Title:    "Exploring Key Concepts",
				Duration: "45 minutes",
				Activities: []Activity{
					{
						Time:            "0-45 min",
						Activity:        "Concept Exploration",
						Description:     "Deep dive into key concepts",
						Materials:       []string{"Various materials"},
						GradeAdaptation: "Multi-level activities",
					},
				},
			},
			Wednesday: DailyPlan{
				Day:      "Wednesday",
				Title:    "Practical Applications",
				Duration: "45 minutes",
				Activities: []Activity{
					{
						Time:            "0-45 min",
						Activity:        "Real-world Connections",
						Description:     "Connect to daily life",
						Materials:       []string{"Local examples"},
						GradeAdaptation: "Different complexity",
					},
				},
			},
			Thursday: DailyPlan{
				Day:      "Thursday",
				Title:    "Creative Expression",
				Duration: "45 minutes",
				Activities: []Activity{
					{
						Time:            "0-45 min",
						Activity:        "Creative Project",
						Description:     "Express learning creatively",
						Materials:       []string{"Art supplies"},
						GradeAdaptation: "Different mediums",
					},
				},
			},
			Friday: DailyPlan{
				Day:      "Friday",
				Title:    "Review and Assessment",
				Duration: "45 minutes",
				Activities: []Activity{
					{
						Time:            "0-45 min",
						Activity:        "Review and Assess",
						Description:     "Week review and assessment",
						Materials:       []string{"Assessment tools"},
						GradeAdaptation: "Multiple formats",
					},
				},
			},
		},
		Resources: Resources{
			Materials:           []string{"Blackboard", "Chalk", "Textbook", "Local materials"},
			CulturalConnections: []string{"Local festivals", "Community examples"},
			AssessmentTools:     []string{"Oral questions", "Observation", "Peer assessment"},
		},
		Homework: []string{
			"Monday: Observation task",
			"Tuesday: Practice exercise",
			"Wednesday: Community activity",
			"Thursday: Creative work",
			"Friday: Reflection",
		},
		Adaptations: Adaptations{
			LowerGrades:  "Simpler activities and visual aids",
			HigherGrades: "More complex analysis and projects",
			MixedGrade:   "Peer teaching and group work",
		},
	}
}
