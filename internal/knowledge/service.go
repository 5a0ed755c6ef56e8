package knowledge

import (
	"context"
	"encoding/json"

	"github.com/saulo-duarte/sahayak-lambda/internal/config"
	"github.com/saulo-duarte/sahayak-lambda/internal/llm"
	"github.com/saulo-duarte/sahayak-lambda/internal/normalize"
)

type Service interface {
	Ask(ctx context.Context, req AskRequest) (*Bundle, error)
}

type service struct {
	llm llm.Client
}

func NewService(client llm.Client) Service {
	return &service{llm: client}
}

func (s *service) Ask(ctx context.Context, req AskRequest) (*Bundle, error) {
	log := config.WithContext(ctx)

	raw, err := s.llm.Complete(ctx, BuildPrompt(req))
	if err != nil {
		return nil, err
	}

	cleaned := normalize.ExtractObject(raw)

	var bundle Bundle
	if err := json.Unmarshal([]byte(cleaned), &bundle); err != nil {
		log.WithError(err).Warn("Knowledge response unparseable, substituting fallback bundle")
		return fallbackBundle(req), nil
	}

	// Older prompt generations answered with a flat {answer, analogy, ...}
	// object. Detect that shape and lift it into the current bundle.
	if bundle.Explanations == (Explanations{}) {
		var old legacyAnswer
		if err := json.Unmarshal([]byte(cleaned), &old); err == nil && old.Answer != "" {
			log.Info("Converting legacy knowledge format to comprehensive bundle")
			return fromLegacy(req, old), nil
		}
		log.Warn("Knowledge response missing explanations, substituting fallback bundle")
		return fallbackBundle(req), nil
	}

	return &bundle, nil
}
