package auth

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultTTL = 24 * 7 * time.Hour
	// session||<token> -> JSON Session, written by the auth service on login
	sessionKeyPrefix = "session||"
	// set of all live session tokens
	TokensSetKey = "gymlog-sessions"
)

var (
	ErrNotLogged      = errors.New("not logged in")
	ErrSessionExpired = errors.New("session expired")
	ErrInvalidSession = errors.New("invalid session")
)

type Session struct {
	ProfileID string `json:"profileId"`
	// CreatedAt is a unix timestamp in seconds.
	CreatedAt int64 `json:"createdAt"`
}

func (s Session) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(time.Unix(s.CreatedAt, 0)) > ttl
}

func SessionKey(token string) string {
	return sessionKeyPrefix + token
}

type profileIDKey struct{}

// WithProfileID stores the authenticated profile id in the request context.
func WithProfileID(ctx context.Context, profileID string) context.Context {
	return context.WithValue(ctx, profileIDKey{}, profileID)
}

func ProfileIDFromContext(ctx context.Context) (string, bool) {
	profileID, ok := ctx.Value(profileIDKey{}).(string)
	return profileID, ok && profileID != ""
}
