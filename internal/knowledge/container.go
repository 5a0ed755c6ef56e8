package knowledge

import "github.com/saulo-duarte/sahayak-lambda/internal/llm"

type KnowledgeContainer struct {
	Service Service
	Handler *Handler
}

func NewKnowledgeContainer(client llm.Client) *KnowledgeContainer {
	service := NewService(client)
	handler := NewHandler(service)
	return &KnowledgeContainer{
		Service: service,
		Handler: handler,
	}
}
