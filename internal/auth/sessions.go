// Package auth implements the back-office session mechanism: a single
// configured credential pair exchanged for an opaque Redis-backed
// token with a fixed TTL.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"sabi-consults/internal/common/config"
	"sabi-consults/internal/common/database"
	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/common/logger"
)

const sessionKeyPrefix = "admin_session:"

// Authorizer answers the single question the mutation paths ask: does
// this token prove an active admin session. A nil return means yes.
type Authorizer interface {
	Authorize(ctx context.Context, token string) error
}

// SessionManager issues, validates and revokes admin session tokens.
type SessionManager struct {
	redis  *database.RedisClient
	config config.AdminConfig
	logger logger.Logger
}

func NewSessionManager(redisClient *database.RedisClient, cfg config.AdminConfig, log logger.Logger) *SessionManager {
	return &SessionManager{
		redis:  redisClient,
		config: cfg,
		logger: log,
	}
}

// Login checks the supplied credentials against the configured admin
// pair and, on success, issues a fresh session token.
func (m *SessionManager) Login(ctx context.Context, email, password string) (token string, expiresAt time.Time, err error) {
	if !credentialsMatch(email, m.config.Email) || !credentialsMatch(password, m.config.Password) {
		m.logger.Warn("Admin login rejected", map[string]interface{}{
			"email": email,
		})
		return "", time.Time{}, apperrors.NewInvalidCredentialsError()
	}

	token = uuid.New().String()
	ttl := m.config.SessionDuration()
	if err := m.redis.Set(ctx, sessionKeyPrefix+token, email, ttl); err != nil {
		return "", time.Time{}, apperrors.NewStorageError("create session", err)
	}

	m.logger.Info("Admin session created", map[string]interface{}{
		"ttl_hours": ttl.Hours(),
	})
	return token, time.Now().UTC().Add(ttl), nil
}

// Authorize reports whether token names a live session. A missing or
// expired token is an authorization failure; a Redis outage is a
// storage failure, not a silent denial.
func (m *SessionManager) Authorize(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.NewUnauthorizedError("missing session token")
	}
	_, err := m.redis.Get(ctx, sessionKeyPrefix+token)
	if errors.Is(err, redis.Nil) {
		return apperrors.NewUnauthorizedError("session expired or unknown")
	}
	if err != nil {
		return apperrors.NewStorageError("check session", err)
	}
	return nil
}

// Logout revokes the session. Revoking an unknown token is not an
// error.
func (m *SessionManager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.redis.Del(ctx, sessionKeyPrefix+token); err != nil {
		return apperrors.NewStorageError("delete session", err)
	}
	return nil
}

func credentialsMatch(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
