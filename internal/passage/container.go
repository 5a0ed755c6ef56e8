package passage

import "github.com/saulo-duarte/sahayak-lambda/internal/llm"

type PassageContainer struct {
	Service Service
	Handler *Handler
}

func NewPassageContainer(client llm.Client) *PassageContainer {
	service := NewService(client)
	handler := NewHandler(service)
	return &PassageContainer{
		Service: service,
		Handler: handler,
	}
}
