package weeklyplan

import (
	"context"

	"github.com/saulo-duarte/sahayak-lambda/internal/config"
	"github.com/saulo-duarte/sahayak-lambda/internal/llm"
	"github.com/saulo-duarte/sahayak-lambda/internal/normalize"
)

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type service struct {
	llm llm.Client
}

func NewService(client llm.Client) Service {
	return &service{llm: client}
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	log := config.WithContext(ctx)

	weeks := req.NumberOfWeeks
	if weeks < 1 {
		weeks = 1
	}

	plans := make([]WeeklyPlan, 0, weeks)
	for week := 1; week <= weeks; week++ {
		raw, err := s.llm.Complete(ctx, BuildPrompt(req, week))
		if err != nil {
			log.WithError(err).WithField("week", week).Warn("Weekly plan generation failed, substituting fallback")
			plans = append(plans, fallbackPlan(req.AnalyzedContent.Topic, week))
			continue
		}

		var plan WeeklyPlan
		if err := normalize.Object(raw, &plan); err != nil || plan.Theme == "" {
			log.WithField("week", week).Warn("Weekly plan response unparseable, substituting fallback")
			plans = append(plans, fallbackPlan(req.AnalyzedContent.Topic, week))
			continue
		}

		if plan.Week == 0 {
			plan.Week = week
		}
		plans = append(plans, plan)
	}

	return &GenerateResponse{
		WeeklyPlans:  plans,
		TotalWeeks:   weeks,
		TargetGrades: req.TargetGrades,
	}, nil
}
