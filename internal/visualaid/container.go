package visualaid

type VisualAidContainer struct {
	Service Service
	Handler *Handler
}

func NewVisualAidContainer() *VisualAidContainer {
	service := NewService()
	handler := NewHandler(service)
	return &VisualAidContainer{
		Service: service,
		Handler: handler,
	}
}
