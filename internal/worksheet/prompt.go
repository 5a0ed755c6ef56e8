package worksheet

import (
	"fmt"
	"strings"
)

// BuildAnalysisPrompt asks the model to analyse extracted textbook text and
// report a structured summary suitable for differentiated worksheet
// generation.
func BuildAnalysisPrompt(req AnalyzeRequest) string {
	return fmt.Sprintf(`ANALYZE THIS TEXTBOOK PAGE - COMPREHENSIVE EDUCATIONAL CONTENT ANALYSIS

You are analyzing text extracted from an uploaded textbook page. Provide a detailed analysis of the educational content for generating differentiated worksheets.

TEXTBOOK CONTENT:
%s

ANALYSIS REQUIREMENTS:
1. Identify the main topic and educational concepts
2. Extract key terms and vocabulary
3. Determine appropriate grade levels (1-10)
4. Assess content difficulty and complexity
5. Summarize what the page covers

RESPONSE FORMAT (JSON):
{
  "topic": "Clear, specific topic title",
  "imageDescription": "Detailed description of the page content",
  "keyTerms": ["term1", "term2", "term3", "term4", "term5"],
  "concepts": ["concept1", "concept2", "concept3", "concept4"],
  "difficulty": "beginner|intermediate|advanced",
  "suggestedGrades": ["Grade 3", "Grade 4", "Grade 5"],
  "contentType": "text|diagram|both|chart|illustration",
  "subject": "Science|Mathematics|English|Social Studies|General"
}

IMPORTANT GUIDELINES:
- Use Indian educational context and terminology
- Suggest 3-5 appropriate grade levels
- Include cultural relevance where applicable
- Be specific about concepts and terms
- Provide actionable educational insights

Generate EXACTLY this JSON structure - no additional text or explanation.`, req.Content)
}

func questionTypeInstructions(questionTypes []string) string {
	for _, t := range questionTypes {
		if t == "mixed" {
			return `EXERCISE TYPES TO INCLUDE (Mixed Variety):
- Multiple Choice (with 4 options) - 30%
- Fill in the Blank - 25%
- Short Answer - 20%
- True/False - 15%
- Matching (when appropriate) - 10%`
		}
	}

	typeMap := map[string]string{
		"mcq":         "Multiple Choice (with 4 options)",
		"shortAnswer": "Short Answer questions",
		"fillInBlank": "Fill in the Blank",
		"truefalse":   "True/False questions",
		"matching":    "Matching exercises",
	}

	var lines []string
	for _, t := range questionTypes {
		desc, ok := typeMap[t]
		if !ok {
			desc = t
		}
		lines = append(lines, "- "+desc)
	}

	return fmt.Sprintf(`EXERCISE TYPES TO INCLUDE (Selected Types Only):
%s

DISTRIBUTION: Create exercises using ONLY the selected question types above.`, strings.Join(lines, "\n"))
}

// BuildWorksheetPrompt renders the per-grade generation instruction. The
// difficulty and exercise count are already resolved from the grade by the
// service.
func BuildWorksheetPrompt(req GenerateRequest, grade, difficulty, complexity string, exerciseCount int) string {
	return fmt.Sprintf(`CREATE DIFFERENTIATED WORKSHEET FOR %s

CONTENT ANALYSIS:
- Topic: %s
- Key Terms: %s
- Concepts: %s
- Difficulty Level: %s
- Complexity: %s

WORKSHEET REQUIREMENTS:
- Target Grade: %s
- Number of Exercises: %d
- Difficulty: %s
- Question Type Preference: %s
- Use Indian cultural context and examples
- Make it engaging and educational

RESPONSE FORMAT (JSON):
{
  "grade": "%s",
  "title": "Specific worksheet title related to %s",
  "difficulty": "%s",
  "instructions": "Clear, encouraging instructions for %s students",
  "exercises": [
    {
      "id": "ex1",
      "type": "multipleChoice|fillInBlank|shortAnswer|matching|truefalse",
      "question": "Clear, grade-appropriate question with Indian context",
      "options": ["option1", "option2", "option3", "option4"],
      "correctAnswer": "correct answer",
      "points": 2,
      "hint": "Optional helpful hint"
    }
  ]
}

%s

QUESTION GUIDELINES BY TYPE:
- Multiple Choice: 4 options, 1 clearly correct, others plausible but wrong
- Fill in the Blank: Use underscores (___) for blanks, provide exact answer
- Short Answer: Open-ended, 1-3 sentence expected responses
- True/False: Clear statements that are definitely true or false
- Matching: Pairs of related items (terms-definitions, cause-effect)

CULTURAL INTEGRATION:
- Use Indian names: Arjun, Priya, Ravi, Meera, Kiran, Anjali
- Reference Indian places: Delhi, Mumbai, Chennai, Kolkata, Bangalore
- Include festivals: Diwali, Holi, Ganesh Chaturthi, Durga Puja
- Use familiar foods: rice, dal, roti, curry, samosa
- Reference local animals: elephant, tiger, peacock, cobra

IMPORTANT GUIDELINES:
- Grade-appropriate vocabulary and complexity for %s
- Clear, unambiguous questions
- Culturally relevant examples and contexts
- Proper point values (1-3 points based on difficulty)
- Helpful hints for challenging questions
- Educational value aligned with %s

Generate EXACTLY this JSON structure with %d exercises using the specified question types.`,
		strings.ToUpper(grade),
		req.AnalyzedContent.Topic,
		strings.Join(req.AnalyzedContent.KeyTerms, ", "),
		strings.Join(req.AnalyzedContent.Concepts, ", "),
		difficulty,
		complexity,
		grade,
		exerciseCount,
		difficulty,
		strings.Join(req.QuestionTypes, ", "),
		grade,
		req.AnalyzedContent.Topic,
		difficulty,
		grade,
		questionTypeInstructions(req.QuestionTypes),
		grade,
		req.AnalyzedContent.Topic,
		exerciseCount)
}
