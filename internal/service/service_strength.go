package service

import (
	"context"
	"fmt"

	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/metrics"
	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/akwaabahomes/passcheck/models"
)

// strengthService is the concrete implementation of StrengthService.
type strengthService struct {
	evaluator *strength.Evaluator
	generator *strength.Generator

	// policy is the server policy. Per-request overrides are resolved on
	// top of it and never change it.
	policy strength.Policy

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewStrengthService returns a StrengthService. A nil generator selects one
// backed by crypto/rand.
func NewStrengthService(
	evaluator *strength.Evaluator,
	generator *strength.Generator,
	policy strength.Policy,
	m *metrics.Metrics,
	logger *logger.Logger,
) StrengthService {
	if generator == nil {
		generator = strength.NewGenerator(nil)
	}

	return &strengthService{
		evaluator: evaluator,
		generator: generator,
		policy:    policy,
		metrics:   m,
		logger:    logger,
	}
}

func (s *strengthService) Evaluate(ctx context.Context, req models.EvaluateRequest) (strength.Result, error) {
	policy := s.policy
	if req.Policy != nil {
		policy = req.Policy.ResolveOver(s.policy)
	}

	result := s.evaluator.Evaluate(req.Password, policy, req.Hint())
	s.metrics.ObserveScore(metrics.SourceAPI, result.Score)

	logger.FromContext(ctx).Debug().
		Int("score", result.Score).
		Bool("meets_requirements", result.MeetsRequirements).
		Bool("policy_overridden", req.Policy != nil).
		Msg("password evaluated")

	return result, nil
}

func (s *strengthService) Generate(ctx context.Context, length int) (models.GenerateResponse, error) {
	if length == 0 {
		length = strength.DefaultGeneratedLength
	}
	if length < 0 || length > strength.MaxGeneratedLength {
		return models.GenerateResponse{}, fmt.Errorf("%w: length must be between 1 and %d", ErrInvalidDataProvided, strength.MaxGeneratedLength)
	}

	password, err := s.generator.Generate(length)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("password generation failed")
		return models.GenerateResponse{}, fmt.Errorf("password generation failed: %w", err)
	}

	result := s.evaluator.Evaluate(password, s.policy, nil)
	s.metrics.Generated()
	s.metrics.ObserveScore(metrics.SourceGenerate, result.Score)

	return models.GenerateResponse{
		Password: password,
		Length:   len(password),
		Score:    result.Score,
		Label:    strength.Label(result.Score),
	}, nil
}

func (s *strengthService) Policy(ctx context.Context) strength.Policy {
	return s.policy
}
