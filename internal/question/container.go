package question

import "github.com/saulo-duarte/sahayak-lambda/internal/llm"

type QuestionContainer struct {
	Handler *Handler
}

func NewQuestionContainer(client llm.Client) *QuestionContainer {
	service := NewService(client)
	handler := NewHandler(service)

	return &QuestionContainer{
		Handler: handler,
	}
}
