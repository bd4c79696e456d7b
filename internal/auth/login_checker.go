package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymlog/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// LoginChecker resolves session tokens to profile ids.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	now         func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		now:         time.Now,
	}
}

func (c *LoginChecker) ProfileID(ctx context.Context, token string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.loginChecker.profileId")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := readSession(ctx, c.redisClient, token)
	if err != nil {
		return "", err
	}

	if session.Expired(c.ttl, c.now()) {
		return "", ErrSessionExpired
	}

	return session.ProfileID, nil
}

func (c *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	_, err := c.ProfileID(ctx, token)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotLogged), errors.Is(err, ErrSessionExpired):
		return false, nil
	default:
		return false, err
	}
}

func readSession(ctx context.Context, rdb *redis.Client, token string) (*Session, error) {
	raw, err := rdb.Get(ctx, SessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotLogged
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSession, err)
	}
	if _, err := uuid.Parse(session.ProfileID); err != nil {
		return nil, fmt.Errorf("%w: profile id: %s", ErrInvalidSession, err)
	}

	return &session, nil
}
