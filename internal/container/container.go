package container

import (
	"context"
	"log"
	"os"

	"github.com/saulo-duarte/sahayak-lambda/internal/assessment"
	"github.com/saulo-duarte/sahayak-lambda/internal/auth"
	"github.com/saulo-duarte/sahayak-lambda/internal/config"
	"github.com/saulo-duarte/sahayak-lambda/internal/content"
	"github.com/saulo-duarte/sahayak-lambda/internal/knowledge"
	"github.com/saulo-duarte/sahayak-lambda/internal/llm"
	"github.com/saulo-duarte/sahayak-lambda/internal/passage"
	"github.com/saulo-duarte/sahayak-lambda/internal/question"
	"github.com/saulo-duarte/sahayak-lambda/internal/user"
	"github.com/saulo-duarte/sahayak-lambda/internal/visualaid"
	"github.com/saulo-duarte/sahayak-lambda/internal/weeklyplan"
	"github.com/saulo-duarte/sahayak-lambda/internal/worksheet"
)

type Container struct {
	ContentContainer    *content.ContentContainer
	QuestionContainer   *question.QuestionContainer
	KnowledgeContainer  *knowledge.KnowledgeContainer
	WorksheetContainer  *worksheet.WorksheetContainer
	WeeklyPlanContainer *weeklyplan.WeeklyPlanContainer
	VisualAidContainer  *visualaid.VisualAidContainer
	PassageContainer    *passage.PassageContainer
	AssessmentContainer *assessment.AssessmentContainer
	UserContainer       *user.UserContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(&user.User{}, &assessment.Assessment{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	client, err := llm.NewGeminiClient(ctx)
	if err != nil {
		log.Fatalf("failed to create gemini client: %v", err)
	}

	return &Container{
		ContentContainer:    content.NewContentContainer(client),
		QuestionContainer:   question.NewQuestionContainer(client),
		KnowledgeContainer:  knowledge.NewKnowledgeContainer(client),
		WorksheetContainer:  worksheet.NewWorksheetContainer(client),
		WeeklyPlanContainer: weeklyplan.NewWeeklyPlanContainer(client),
		VisualAidContainer:  visualaid.NewVisualAidContainer(),
		PassageContainer:    passage.NewPassageContainer(client),
		AssessmentContainer: assessment.NewAssessmentContainer(config.DB),
		UserContainer:       user.NewUserContainer(config.DB),
	}
}
