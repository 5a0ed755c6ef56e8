package worksheet

import "github.com/saulo-duarte/sahayak-lambda/internal/llm"

type WorksheetContainer struct {
	Service Service
	Handler *Handler
}

func NewWorksheetContainer(client llm.Client) *WorksheetContainer {
	service := NewService(client)
	handler := NewHandler(service)
	return &WorksheetContainer{
		Service: service,
		Handler: handler,
	}
}
