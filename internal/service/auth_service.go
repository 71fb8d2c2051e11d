package service

import (
	"context"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/auth"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"go.uber.org/zap"
)

// AuthService exchanges the shared admin password for a session token
type AuthService struct {
	tokens       *auth.TokenManager
	passwordHash string
	logger       *zap.Logger
}

func NewAuthService(tokens *auth.TokenManager, passwordHash string, logger *zap.Logger) *AuthService {
	return &AuthService{
		tokens:       tokens,
		passwordHash: passwordHash,
		logger:       logger,
	}
}

// Login checks the password against the configured bcrypt hash and issues a session
func (s *AuthService) Login(ctx context.Context, in *domain.LoginRequest) (*domain.AuthSessionDTO, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := auth.CheckPassword(s.passwordHash, in.Password); err != nil {
		s.logger.Warn("admin login rejected", zap.Error(err))
		return nil, ErrUnauthorized
	}

	token, session, err := s.tokens.Issue()
	if err != nil {
		return nil, err
	}

	s.logger.Info("admin session issued",
		zap.String("session_id", session.ID),
		zap.Time("expires_at", session.ExpiresAt),
	)
	return &domain.AuthSessionDTO{
		Token:     token,
		IssuedAt:  session.IssuedAt,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Session describes the session attached to ctx by the auth middleware
func (s *AuthService) Session(ctx context.Context) (*domain.AuthSessionDTO, error) {
	session, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	return &domain.AuthSessionDTO{
		IssuedAt:  session.IssuedAt,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
