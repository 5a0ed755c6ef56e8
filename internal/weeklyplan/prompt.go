package weeklyplan

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the per-week generation instruction. The embedded
// example payload spells out the full Monday to Friday structure so the model
// returns every weekday.
func BuildPrompt(req GenerateRequest, week int) string {
	return fmt.Sprintf(`You are Sahayak, an expert AI teaching assistant for Indian multi-grade classrooms.

Create a detailed weekly lesson plan for Week %d based on this textbook analysis:

TEXTBOOK ANALYSIS:
- Topic: %s
- Key Concepts: %s
- Key Terms: %s
- Target Grades: %s

CRITICAL: You MUST respond with ONLY valid JSON in this EXACT format:

{
  "week": %d,
  "theme": "Week %d theme based on %s",
  "overview": "Brief overview of what students will learn this week",
  "learningObjectives": [
    "Students will understand...",
    "Students will be able to...",
    "Students will analyze..."
  ],
  "dailyPlans": {
    "monday": {
      "day": "Monday",
      "title": "Introduction to the Topic",
      "duration": "45 minutes",
      "activities": [
        {
          "time": "0-10 min",
          "activity": "Warm-up and Review",
          "description": "Quick review of previous knowledge",
          "materials": ["Blackboard", "Chalk"],
          "gradeAdaptation": "Simpler questions for younger grades"
        },
        {
          "time": "10-25 min",
          "activity": "Main Lesson",
          "description": "Introduce key concepts using Indian cultural examples",
          "materials": ["Textbook", "Local examples"],
          "gradeAdaptation": "Different complexity levels for different grades"
        },
        {
          "time": "25-40 min",
          "activity": "Practice Activity",
          "description": "Hands-on activity to reinforce learning",
          "materials": ["Worksheets", "Group work"],
          "gradeAdaptation": "Varied difficulty levels"
        },
        {
          "time": "40-45 min",
          "activity": "Wrap-up",
          "description": "Summary and preview of next day",
          "materials": ["Discussion"],
          "gradeAdaptation": "Age-appropriate questioning"
        }
      ]
    },
    "tuesday": {
      "day": "Tuesday",
      "title": "Exploring Key Concepts",
      "duration": "45 minutes",
      "activities": [
        {
          "time": "0-45 min",
          "activity": "Deep Dive",
          "description": "Explore concepts in detail with Indian examples",
          "materials": ["Local materials", "Stories"],
          "gradeAdaptation": "More complex analysis for older grades"
        }
      ]
    },
    "wednesday": {
      "day": "Wednesday",
      "title": "Practical Applications",
      "duration": "45 minutes",
      "activities": [
        {
          "time": "0-45 min",
          "activity": "Real-World Connections",
          "description": "Connect learning to Indian daily life and culture",
          "materials": ["Local examples", "Community connections"],
          "gradeAdaptation": "Different complexity of connections"
        }
      ]
    },
    "thursday": {
      "day": "Thursday",
      "title": "Creative Expression",
      "duration": "45 minutes",
      "activities": [
        {
          "time": "0-45 min",
          "activity": "Creative Project",
          "description": "Art, drama, or storytelling related to the topic",
          "materials": ["Art supplies", "Props"],
          "gradeAdaptation": "Different creative mediums"
        }
      ]
    },
    "friday": {
      "day": "Friday",
      "title": "Review and Assessment",
      "duration": "45 minutes",
      "activities": [
        {
          "time": "0-45 min",
          "activity": "Review and Assess",
          "description": "Comprehensive review of the week's learning",
          "materials": ["Review materials", "Games"],
          "gradeAdaptation": "Multiple assessment formats"
        }
      ]
    }
  },
  "resources": {
    "materials": ["Commonly available materials in Indian schools"],
    "culturalConnections": ["Local festivals", "Community examples", "Regional traditions"],
    "assessmentTools": ["Formative assessment methods", "Peer assessment", "Self-reflection"]
  },
  "homework": [
    "Monday: Simple observation task",
    "Tuesday: Practice exercise",
    "Wednesday: Community connection activity",
    "Thursday: Creative preparation",
    "Friday: Reflection and preview"
  ],
  "adaptations": {
    "lowerGrades": "Specific adaptations for younger students",
    "higherGrades": "Extensions and challenges for older students",
    "mixedGrade": "Strategies for multi-grade teaching"
  }
}

RULES:
- Focus on practical, implementable daily activities
- Use authentic Indian cultural context throughout
- Include specific time allocations for each activity
- Provide clear multi-grade adaptations
- Ensure activities use locally available materials
- Make it immediately usable by teachers in resource-limited schools`,
		week,
		req.AnalyzedContent.Topic,
		strings.Join(req.AnalyzedContent.Concepts, ", "),
		strings.Join(req.AnalyzedContent.KeyTerms, ", "),
		strings.Join(req.TargetGrades, ", "),
		week,
		week,
		req.AnalyzedContent.Topic)
}
