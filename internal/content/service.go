package content

import (
	"context"

	"github.com/saulo-duarte/sahayak-lambda/internal/config"
	"github.com/saulo-duarte/sahayak-lambda/internal/llm"
	"github.com/saulo-duarte/sahayak-lambda/internal/normalize"
)

type Service interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (*ContentBundle, error)
	GenerateExamples(ctx context.Context, req ExamplesRequest) (*ExampleSet, error)
}

type service struct {
	llm llm.Client
}

func NewService(client llm.Client) Service {
	return &service{llm: client}
}

func (s *service) GenerateContent(ctx context.Context, req GenerateRequest) (*ContentBundle, error) {
	log := config.WithContext(ctx)

	raw, err := s.llm.Complete(ctx, BuildContentPrompt(req))
	if err != nil {
		return nil, err
	}

	var bundle ContentBundle
	if err := normalize.Object(raw, &bundle); err != nil {
		log.WithError(err).Warn("Content response unparseable, substituting fallback bundle")
		return fallbackBundle(req, normalize.Clean(raw)), nil
	}

	log.Info("Content bundle generated")
	return &bundle, nil
}

func (s *service) GenerateExamples(ctx context.Context, req ExamplesRequest) (*ExampleSet, error) {
	log := config.WithContext(ctx)

	raw, err := s.llm.Complete(ctx, BuildExamplesPrompt(req))
	if err != nil {
		return nil, err
	}

	var set ExampleSet
	if err := normalize.Object(raw, &set); err != nil {
		log.WithError(err).Warn("Examples response unparseable, substituting fallback set")
		return fallbackExamples(req), nil
	}

	return &set, nil
}
