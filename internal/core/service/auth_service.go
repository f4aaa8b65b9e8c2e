package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-api/internal/core/domain"
	"github.com/taskhive/task-api/internal/core/ports"
)

// LoginLimiter abstracts the failed-login throttle (Redis). A nil limiter
// disables throttling entirely.
type LoginLimiter interface {
	TooMany(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements registration and login.
type AuthService struct {
	repo    ports.AuthRepository
	hasher  ports.CredentialHasher
	signer  ports.TokenSigner
	limiter LoginLimiter
	log     zerolog.Logger
}

func NewAuthService(
	repo ports.AuthRepository,
	hasher ports.CredentialHasher,
	signer ports.TokenSigner,
	limiter LoginLimiter,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, signer: signer, limiter: limiter, log: log}
}

// Register creates a new user and returns a bearer token for it. Username
// uniqueness is enforced by the repository at write time; a collision yields
// domain.ErrUserExists, never a merge.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")

	return s.signer.Issue(created.ID)
}

// Login verifies credentials and returns a fresh bearer token. An unknown
// username and a wrong password both collapse to ErrInvalidCredentials so
// the two cases are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooMany(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, allowing attempt")
		} else if blocked {
			return "", domain.ErrLoginThrottled
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		s.recordFailure(ctx, username)
		return "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login throttle")
		}
	}

	s.log.Info().Str("username", username).Msg("login successful")

	return s.signer.Issue(user.ID)
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}
