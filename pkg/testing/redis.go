package testing

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"testing"
	"time"

	"github.com/2beens/gymlog/internal/auth"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

// GetRedisClientAndCtx connects to a live redis on the given port. Host and
// password come from REDIS_HOST and REDIS_PASS.
func GetRedisClientAndCtx(t *testing.T, port string) (context.Context, *redis.Client) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		redisHost = "localhost"
	}
	if port == "" {
		port = "6379"
	}
	t.Logf("using redis: [%s:%s]", redisHost, port)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(redisHost, port),
		Password: os.Getenv("REDIS_PASS"),
		DB:       0, // use default DB
	})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	pingRes, err := rdb.Ping(ctx).Result()
	require.NoError(t, err)
	t.Logf("redis ping res: %s", pingRes)

	return ctx, rdb
}

// SeedSession stores a session for the profile the way the auth service does
// on login.
func SeedSession(ctx context.Context, t *testing.T, rdb *redis.Client, token, profileID string, createdAt time.Time) {
	t.Helper()

	sessionJSON, err := json.Marshal(auth.Session{
		ProfileID: profileID,
		CreatedAt: createdAt.Unix(),
	})
	require.NoError(t, err)
	require.NoError(t, rdb.Set(ctx, auth.SessionKey(token), sessionJSON, 0).Err())
	require.NoError(t, rdb.SAdd(ctx, auth.TokensSetKey, token).Err())
}
