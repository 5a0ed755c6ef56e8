package passage

import (
	"context"

	"github.com/saulo-duarte/sahayak-lambda/internal/config"
	"github.com/saulo-duarte/sahayak-lambda/internal/llm"
	"github.com/saulo-duarte/sahayak-lambda/internal/normalize"
)

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*Passage, error)
}

type service struct {
	llm llm.Client
}

func NewService(client llm.Client) Service {
	return &service{llm: client}
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*Passage, error) {
	log := config.WithContext(ctx)

	raw, err := s.llm.Complete(ctx, BuildPrompt(req))
	if err != nil {
		return nil, err
	}

	var p Passage
	if err := normalize.Object(raw, &p); err != nil || p.Content == "" {
		log.Warn("Passage response unparseable, substituting fallback")
		return fallbackPassage(req), nil
	}

	if p.GradeLevel == "" {
		p.GradeLevel = req.Grade
	}
	if p.Subject == "" {
		p.Subject = req.Subject
	}
	return &p, nil
}
