package assessment

import "gorm.io/gorm"

type AssessmentContainer struct {
	Handler *Handler
}

func NewAssessmentContainer(db *gorm.DB) *AssessmentContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &AssessmentContainer{
		Handler: handler,
	}
}
