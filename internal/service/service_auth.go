package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akwaabahomes/passcheck/internal/config"
	"github.com/akwaabahomes/passcheck/internal/crypto"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/metrics"
	"github.com/akwaabahomes/passcheck/internal/store"
	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/akwaabahomes/passcheck/internal/utils"
	"github.com/akwaabahomes/passcheck/models"
)

const (
	rejectReasonPolicy = "policy"
	rejectReasonReuse  = "reuse"
)

// authService is the concrete implementation of AuthService.
// It gates every new password through the strength evaluator, stores argon2id
// hashes, keeps the reuse history and issues JWT access tokens.
type authService struct {
	userRepository    store.UserRepository
	historyRepository store.PasswordHistoryRepository

	hasher    crypto.PasswordHasher
	evaluator *strength.Evaluator
	policy    strength.Policy

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	// decoyHash is compared against when the login is unknown, so that case
	// costs one argon2id verification just like a wrong password.
	decoyHash string
	decoyOnce sync.Once

	now     func() time.Time
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewAuthService constructs an AuthService. All state is read-only after
// construction so the service is safe for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	historyRepository store.PasswordHistoryRepository,
	hasher crypto.PasswordHasher,
	evaluator *strength.Evaluator,
	policy strength.Policy,
	cfg config.App,
	m *metrics.Metrics,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:    userRepository,
		historyRepository: historyRepository,
		hasher:            hasher,
		evaluator:         evaluator,
		policy:            policy,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		now:               time.Now,
		metrics:           m,
		logger:            logger,
	}
}

// RegisterUser creates an account once the password passes the policy.
//
// The login (an email address) and the display name are used as the identity
// hint, so passwords built from them are refused. The initial hash is also
// written to the reuse history.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - *PolicyViolationError (matching ErrPasswordPolicyViolation) when the
//     password is not acceptable.
//   - A wrapped storage error, e.g. store.ErrLoginAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Login == "" || req.Password == "" {
		log.Error().Str("login", req.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hint := &strength.IdentityHint{Email: req.Login, Name: req.Name}
	if err := a.checkPolicy(req.Password, hint, metrics.SourceRegister); err != nil {
		log.Info().Str("login", req.Login).Msg("registration rejected by password policy")
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("login", req.Login).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Login:        req.Login,
		Name:         req.Name,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("login", req.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	// the account exists at this point; a missing history row only weakens
	// the first reuse check
	if err = a.historyRepository.AddPasswordHash(ctx, registeredUser.UserID, hash); err != nil {
		log.Warn().Err(err).Int64("user_id", registeredUser.UserID).Msg("initial password history entry was not stored")
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the user record with MustChangePassword reflecting both the stored
// flag and the password age, or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error (e.g. store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Login == "" || req.Password == "" {
		log.Error().Str("login", req.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.compareDecoy(req.Password)
		}
		log.Err(err).Str("login", req.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = a.verify(req.Password, foundUser); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Str("login", foundUser.Login).Msg("wrong password")
		return models.User{}, err
	}

	a.rehashIfNeeded(ctx, foundUser, req.Password)

	foundUser.MustChangePassword = foundUser.MustChangePassword || a.isExpired(foundUser.PasswordChangedAt)

	return foundUser, nil
}

// ChangePassword replaces the password of userID.
//
// The current password must match. The new one must pass the policy with the
// user's email and name as the identity hint, and must not match any of the
// last PreventReuse passwords.
func (a *authService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx).With().Int64("user_id", userID).Logger()

	if userID <= 0 || req.CurrentPassword == "" || req.NewPassword == "" {
		log.Error().Msg("invalid password change data provided")
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err = a.verify(req.CurrentPassword, user); err != nil {
		log.Err(err).Msg("current password does not match")
		return err
	}

	hint := &strength.IdentityHint{Email: user.Login, Name: user.Name}
	if err = a.checkPolicy(req.NewPassword, hint, metrics.SourceChange); err != nil {
		log.Info().Msg("password change rejected by password policy")
		return err
	}

	if err = a.checkReuse(ctx, userID, req.NewPassword); err != nil {
		log.Info().Msg("password change rejected as reused")
		return err
	}

	hash, err := a.hasher.Hash(req.NewPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, hash); err != nil {
		log.Err(err).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	if err = a.historyRepository.AddPasswordHash(ctx, userID, hash); err != nil {
		log.Warn().Err(err).Msg("password history entry was not stored")
		return nil
	}

	if _, err = a.historyRepository.TrimPasswordHistory(ctx, userID, max(a.policy.PreventReuse, 1)); err != nil {
		log.Warn().Err(err).Msg("password history trim failed")
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Any validation failure is reported
// as ErrTokenIsExpiredOrInvalid so callers never inspect JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) verify(password string, user models.User) error {
	ok, err := a.hasher.Compare(password, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("stored password hash is unusable: %w", err)
	}
	if !ok {
		return ErrWrongPassword
	}
	return nil
}

func (a *authService) compareDecoy(password string) {
	a.decoyOnce.Do(func() {
		// hashed with the configured cost so timing matches stored hashes
		hash, err := a.hasher.Hash("passcheck-decoy-credential")
		if err != nil {
			a.logger.Err(err).Msg("decoy hash could not be created")
			return
		}
		a.decoyHash = hash
	})

	if a.decoyHash != "" {
		_, _ = a.hasher.Compare(password, a.decoyHash)
	}
}

func (a *authService) checkPolicy(password string, hint *strength.IdentityHint, source string) error {
	result := a.evaluator.Evaluate(password, a.policy, hint)
	a.metrics.ObserveScore(source, result.Score)

	if !result.MeetsRequirements {
		a.metrics.Rejected(source, rejectReasonPolicy)
		return &PolicyViolationError{Result: result}
	}
	return nil
}

func (a *authService) checkReuse(ctx context.Context, userID int64, password string) error {
	if a.policy.PreventReuse <= 0 {
		return nil
	}

	hashes, err := a.historyRepository.RecentPasswordHashes(ctx, userID, a.policy.PreventReuse)
	if err != nil {
		return fmt.Errorf("password history lookup failed: %w", err)
	}

	for _, h := range hashes {
		match, err := a.hasher.Compare(password, h)
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("skipping unreadable history entry")
			continue
		}
		if match {
			a.metrics.Rejected(metrics.SourceChange, rejectReasonReuse)
			return ErrPasswordReused
		}
	}
	return nil
}

// rehashIfNeeded upgrades a hash made with weaker argon2 parameters. Failures
// are logged and never fail the login.
func (a *authService) rehashIfNeeded(ctx context.Context, user models.User, password string) {
	if !a.hasher.NeedsRehash(user.PasswordHash) {
		return
	}

	log := logger.FromContext(ctx)
	hash, err := a.hasher.Hash(password)
	if err == nil {
		err = a.userRepository.RehashPassword(ctx, user.UserID, user.PasswordHash, hash)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("password rehash failed")
	}
}

// isExpired reports whether a password set at changedAt is older than
// MaxAgeDays. A non-positive MaxAgeDays disables expiry.
func (a *authService) isExpired(changedAt time.Time) bool {
	if a.policy.MaxAgeDays <= 0 || changedAt.IsZero() {
		return false
	}
	return a.now().Sub(changedAt) > time.Duration(a.policy.MaxAgeDays)*24*time.Hour
}
