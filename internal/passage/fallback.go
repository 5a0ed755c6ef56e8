package passage

import "fmt"

// fallbackPassage gives the reader a usable passage when the model reply
// cannot be parsed.
func fallbackPassage(req GenerateRequest) *Passage {
	return &Passage{
		Title: fmt.Sprintf("Learning About %s", req.Topic),
		Content: fmt.Sprintf(
			"Today we will read about %s. This is an important topic for grade %s students studying %s. "+
				"In villages and cities across India, students learn about this subject every day. "+
				"Reading carefully and asking questions helps us understand the world around us.",
			req.Topic, req.Grade, req.Subject),
		GradeLevel: req.Grade,
		Subject:    req.Subject,
		KeyPoints: []string{
			fmt.Sprintf("Understanding the basics of %s", req.Topic),
			"Connecting learning to everyday life",
			"Building reading confidence",
		},
		DiscussionQuestions: []string{
			fmt.Sprintf("What did you already know about %s?", req.Topic),
			"How does this topic connect to your daily life?",
			"What would you like to learn more about?",
		},
		Vocabulary: []string{"learning", "understanding", "knowledge"},
	}
}
