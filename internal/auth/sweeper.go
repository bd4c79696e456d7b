package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// SessionSweeper drops expired and broken sessions left behind by clients
// that never logged out.
type SessionSweeper struct {
	redisClient *redis.Client
	ttl         time.Duration
	now         func() time.Time
}

func NewSessionSweeper(ttl time.Duration, redisClient *redis.Client) *SessionSweeper {
	return &SessionSweeper{
		redisClient: redisClient,
		ttl:         ttl,
		now:         time.Now,
	}
}

// ScanAndClean checks every tracked session and removes the stale ones.
// Returns the number of removed sessions.
func (s *SessionSweeper) ScanAndClean(ctx context.Context) int {
	sessionTokens, err := s.redisClient.SMembers(ctx, TokensSetKey).Result()
	if err != nil {
		log.Errorf("session sweeper, get sessions: %s", err)
		return 0
	}
	if len(sessionTokens) == 0 {
		log.Debugln("session sweeper, no sessions")
		return 0
	}

	var toRemove []string
	for _, token := range sessionTokens {
		session, err := readSession(ctx, s.redisClient, token)
		switch {
		case errors.Is(err, ErrNotLogged), errors.Is(err, ErrInvalidSession):
			toRemove = append(toRemove, token)
		case err != nil:
			log.Errorf("session sweeper, read session: %s", err)
		case session.Expired(s.ttl, s.now()):
			toRemove = append(toRemove, token)
		}
	}

	removed := 0
	for _, token := range toRemove {
		if err := s.redisClient.Del(ctx, SessionKey(token)).Err(); err != nil {
			log.Errorf("session sweeper, delete session: %s", err)
			continue
		}
		if err := s.redisClient.SRem(ctx, TokensSetKey, token).Err(); err != nil {
			log.Errorf("session sweeper, untrack session: %s", err)
			continue
		}
		removed++
	}

	log.Debugf("session sweeper: %d/%d sessions removed", removed, len(sessionTokens))
	return removed
}

// Run sweeps on every tick until ctx is done.
func (s *SessionSweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ScanAndClean(ctx)
		}
	}
}
