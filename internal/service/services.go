package service

import (
	"fmt"

	"github.com/akwaabahomes/passcheck/internal/config"
	"github.com/akwaabahomes/passcheck/internal/crypto"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/metrics"
	"github.com/akwaabahomes/passcheck/internal/store"
	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/akwaabahomes/passcheck/models"
)

type Services struct {
	StrengthService StrengthService
	AuthService     AuthService
	RotationService RotationService
	AppInfoService  AppInfoService
}

// NewServices wires every service. The password policy is the default policy
// with the configured overrides applied, and dict backs every evaluation.
func NewServices(
	storages *store.Storages,
	dict *strength.Dictionary,
	cfg *config.StructuredConfig,
	build models.AppBuildInfo,
	m *metrics.Metrics,
	logger *logger.Logger,
) (*Services, error) {
	policy := cfg.Policy.Overrides().Resolve()
	evaluator := strength.NewEvaluator(dict)
	hasher := crypto.NewPasswordHasher(cfg.App.Argon2.MemoryKiB, cfg.App.Argon2.Iterations, cfg.App.Argon2.Parallelism)

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	auth := NewAuthService(
		storages.UserRepository,
		storages.PasswordHistoryRepository,
		hasher,
		evaluator,
		policy,
		cfg.App,
		m,
		logger,
	)

	return &Services{
		StrengthService: NewStrengthValidationService().Wrap(NewStrengthService(evaluator, nil, policy, m, logger)),
		AuthService:     NewAuthValidationService().Wrap(auth),
		RotationService: NewRotationService(storages.UserRepository, policy, m, logger),
		AppInfoService:  appInfo,
	}, nil
}
