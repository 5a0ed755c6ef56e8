package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/sahayak-lambda/internal/container"
	"github.com/saulo-duarte/sahayak-lambda/internal/router"
)

var chiLambda *chiadapter.ChiLambdaV2

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return chiLambda.ProxyWithContextV2(ctx, req)
}

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		ContentHandler:    c.ContentContainer.Handler,
		QuestionHandler:   c.QuestionContainer.Handler,
		KnowledgeHandler:  c.KnowledgeContainer.Handler,
		WorksheetHandler:  c.WorksheetContainer.Handler,
		WeeklyPlanHandler: c.WeeklyPlanContainer.Handler,
		VisualAidHandler:  c.VisualAidContainer.Handler,
		PassageHandler:    c.PassageContainer.Handler,
		AssessmentHandler: c.AssessmentContainer.Handler,
		UserHandler:       c.UserContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.NewV2(r)
		lambda.Start(handler)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	log.Printf("Sahayak server running on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
