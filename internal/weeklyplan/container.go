package weeklyplan

import "github.com/saulo-duarte/sahayak-lambda/internal/llm"

type WeeklyPlanContainer struct {
	Service Service
	Handler *Handler
}

func NewWeeklyPlanContainer(client llm.Client) *WeeklyPlanContainer {
	service := NewService(client)
	handler := NewHandler(service)
	return &WeeklyPlanContainer{
		Service: service,
		Handler: handler,
	}
}
