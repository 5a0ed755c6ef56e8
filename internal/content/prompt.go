package content

import "fmt"

// BuildContentPrompt renders the lesson-content instruction. Deterministic in
// the request so it can be snapshot-tested without a network call.
func BuildContentPrompt(req GenerateRequest) string {
	return fmt.Sprintf(`You are Sahayak, an expert AI teaching assistant for Indian multi-grade classrooms.

Create rich, engaging educational content for this request:
- Description: %s
- Language: %s
- Grade: %s
- Subject: %s
- Location: %s

Respond with ONLY valid JSON in this EXACT format:

{
  "mainContent": {
    "story": "Engaging narrative with local %[5]s cultural elements, landmarks, festivals, and traditions appropriate for Grade %[3]s students",
    "keyPoints": ["First key learning point", "Second important concept", "Third practical application", "Fourth connection to local culture"],
    "vocabulary": [
      {"term": "Important word from the content", "definition": "Simple definition for Grade %[3]s students", "example": "Local %[5]s example using familiar concepts"}
    ]
  },
  "teachingTips": [
    {"category": "Engagement", "tip": "Strategy to engage multi-grade students", "implementation": "Step-by-step guide"},
    {"category": "Materials", "tip": "Local materials available in %[5]s schools", "implementation": "How to use them effectively"},
    {"category": "Assessment", "tip": "Quick assessment technique for Grade %[3]s", "implementation": "Practical evaluation method"}
  ],
  "extensionActivities": [
    {"title": "Community Connection Activity", "description": "Activity connecting learning to the local %[5]s community", "materials": ["locally available items"], "gradeAdaptation": "How to adapt for younger or older students"}
  ]
}

RULES:
- Use authentic %[5]s culture, festivals, food, landmarks and traditions
- Include practical teaching advice for resource-limited schools
- Ensure Grade %[3]s appropriate language and concepts`,
		req.Description, req.Language, req.Grade, req.Subject, req.Location)
}

// BuildExamplesPrompt asks for three contextual example prompts teachers can
// start from.
func BuildExamplesPrompt(req ExamplesRequest) string {
	return fmt.Sprintf(`Generate 3 dynamic, contextual example prompts for teachers in %[4]s.

Context:
- %[3]s subject for Grade %[2]s
- %[1]s language
- %[4]s cultural context

Respond with ONLY valid JSON in this EXACT format:

{
  "examples": [
    {"title": "Storytelling Approach", "prompt": "Create a %[3]s story in %[1]s about a %[4]s cultural element that teaches a specific concept to Grade %[2]s students", "rationale": "Why this approach works for multi-grade classrooms"},
    {"title": "Hands-on Activity", "prompt": "Design a %[3]s activity in %[1]s using materials available in %[4]s schools for Grade %[2]s", "rationale": "How this engages students with local resources"},
    {"title": "Community Connection", "prompt": "Develop a %[3]s lesson in %[1]s connecting Grade %[2]s students to their %[4]s community", "rationale": "Why community connections enhance learning"}
  ]
}

Use specific %[4]s examples: festivals, foods, landmarks, occupations, traditions.
Make each prompt practical and immediately usable by teachers.`,
		req.Language, req.Grade, req.Subject, req.Location)
}
