package question

import (
	"context"

	"github.com/saulo-duarte/sahayak-lambda/internal/config"
	"github.com/saulo-duarte/sahayak-lambda/internal/llm"
	"github.com/saulo-duarte/sahayak-lambda/internal/normalize"
)

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*QuestionSet, error)
}

type service struct {
	llm llm.Client
}

func NewService(client llm.Client) Service {
	return &service{llm: client}
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*QuestionSet, error) {
	log := config.WithContext(ctx)

	raw, err := s.llm.Complete(ctx, BuildPrompt(req))
	if err != nil {
		return nil, err
	}

	var set QuestionSet
	if err := normalize.Object(raw, &set); err != nil {
		log.WithError(err).Warn("Question response unparseable, substituting fallback set")
		set = *fallbackSet(req.NumQuestions)
		return &set, nil
	}

	if req.NumQuestions.Set {
		if len(set.Questions) != req.NumQuestions.N {
			log.Warnf("Model produced %d questions instead of %d, enforcing count",
				len(set.Questions), req.NumQuestions.N)
		}
		Enforce(&set, req.NumQuestions.N)
	} else if set.Questions == nil {
		set.Questions = []QuestionItem{}
	}

	log.Infof("Generated %d questions", len(set.Questions))
	return &set, nil
}
