package service

import (
	"context"
	"crypto/subtle"
	"sync"

	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	"github.com/google/uuid"
)

// gateService implements the access gate. Live session ids are held in
// memory only, so a restart ends every session; the owner just logs in
// again. The secret itself is compared in plain form (see SecretRepository
// note).
type gateService struct {
	secrets auth.SecretRepository
	tokens  *jwt.Manager

	mu       sync.Mutex
	sessions map[string]struct{}
}

// NewGateService creates the access gate service.
func NewGateService(secrets auth.SecretRepository, tokens *jwt.Manager) auth.Service {
	return &gateService{
		secrets:  secrets,
		tokens:   tokens,
		sessions: make(map[string]struct{}),
	}
}

func (s *gateService) Attempt(ctx context.Context, candidate string) (string, error) {
	secret, err := s.secrets.Secret(ctx)
	if err != nil {
		return "", err
	}

	// constant-time compare; no lockout, no rate limiting
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(secret)) != 1 {
		logger.Info("owner login rejected", nil)
		return "", auth.ErrInvalidPassword
	}

	sessionID := uuid.NewString()
	token, err := s.tokens.GenerateSessionToken(sessionID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[sessionID] = struct{}{}
	s.mu.Unlock()

	logger.Info("owner session opened", map[string]interface{}{"session_id": sessionID})
	return token, nil
}

func (s *gateService) ChangeSecret(ctx context.Context, newSecret string) error {
	if newSecret == "" {
		return auth.ErrEmptySecret
	}

	if err := s.secrets.SetSecret(ctx, newSecret); err != nil {
		return &auth.AuthError{
			Code:    auth.ErrSecretNotSaved.Code,
			Message: auth.ErrSecretNotSaved.Message,
			Err:     err,
		}
	}

	// existing sessions stay valid on purpose
	logger.Info("owner secret changed", nil)
	return nil
}

func (s *gateService) Logout(_ context.Context, token string) error {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		// already unusable, nothing to end
		return nil
	}

	s.mu.Lock()
	delete(s.sessions, claims.SessionID)
	s.mu.Unlock()

	logger.Info("owner session closed", map[string]interface{}{"session_id": claims.SessionID})
	return nil
}

func (s *gateService) VerifySession(token string) error {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return auth.ErrInvalidSession
	}

	s.mu.Lock()
	_, active := s.sessions[claims.SessionID]
	s.mu.Unlock()

	if !active {
		return auth.ErrInvalidSession
	}
	return nil
}
