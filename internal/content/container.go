package content

import "github.com/saulo-duarte/sahayak-lambda/internal/llm"

type ContentContainer struct {
	Handler *Handler
}

func NewContentContainer(client llm.Client) *ContentContainer {
	service := NewService(client)
	handler := NewHandler(service)

	return &ContentContainer{
		Handler: handler,
	}
}
