package passage

import "fmt"

func BuildPrompt(req GenerateRequest) string {
	return fmt.Sprintf(`Generate a reading passage for grade %s students studying %s.
Topic: %s
Language: %s
Cultural Context: %s

Requirements:
- Appropriate length for grade level
- Include cultural references and examples
- Use grade-appropriate vocabulary
- Include 2-3 key concepts or learning points
- End with 2-3 discussion questions

Format the response as a JSON object with these fields:
{
  "title": "Passage title",
  "content": "The actual passage text",
  "gradeLevel": "Target grade level",
  "subject": "Subject area",
  "keyPoints": ["Point 1", "Point 2", "Point 3"],
  "discussionQuestions": ["Question 1?", "Question 2?", "Question 3?"],
  "vocabulary": ["Word 1", "Word 2", "Word 3"]
}`, req.Grade, req.Subject, req.Topic, req.Language, req.CulturalContext)
}
