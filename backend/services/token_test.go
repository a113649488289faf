package services

import (
	"context"
	"os"
	"testing"
	"time"

	"contacts-manager/backend/config"
	"contacts-manager/backend/database"
	"contacts-manager/backend/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789"

func testUser() *models.User {
	return &models.User{ID: uuid.New(), Email: "jane@example.com", Role: models.RoleAdmin}
}

func TestTokenService_IssueAndParse(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour, NewMemoryRevocationList())
	user := testUser()

	raw, expires, err := svc.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := svc.Parse(context.Background(), raw)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.True(t, claims.IsAdmin())
	assert.NotEmpty(t, claims.ID)
}

func TestTokenService_Rejects(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService(testSecret, time.Hour, NewMemoryRevocationList())

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Parse(ctx, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("another-secret-0123456789", time.Hour, nil)
		raw, _, err := other.Issue(testUser())
		require.NoError(t, err)
		_, err = svc.Parse(ctx, raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewTokenService(testSecret, time.Hour, nil)
		old.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		raw, _, err := old.Issue(testUser())
		require.NoError(t, err)
		_, err = svc.Parse(ctx, raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.Parse(ctx, raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("revoked", func(t *testing.T) {
		raw, _, err := svc.Issue(testUser())
		require.NoError(t, err)
		claims, err := svc.Parse(ctx, raw)
		require.NoError(t, err)

		require.NoError(t, svc.Revoke(ctx, claims))
		_, err = svc.Parse(ctx, raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestMemoryRevocationList_Expires(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	list := NewMemoryRevocationList()
	list.now = func() time.Time { return now }

	require.NoError(t, list.Revoke(ctx, "abc", time.Minute))
	require.NoError(t, list.Revoke(ctx, "ignored", 0))

	revoked, err := list.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = list.IsRevoked(ctx, "ignored")
	require.NoError(t, err)
	assert.False(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, err = list.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)
}

// Runs against a real server when REDIS_URL is set.
func TestRedisRevocationList(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	ctx := context.Background()
	client, err := database.OpenRedis(ctx, config.RedisConfig{
		URL:          url,
		PoolSize:     2,
		DialTimeout:  time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	require.NoError(t, err)
	defer client.Close()

	list := NewRedisRevocationList(client)
	jti := uuid.NewString()

	revoked, err := list.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, list.Revoke(ctx, jti, time.Minute))
	revoked, err = list.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := client.TTL(ctx, revokedTokenKeyPrefix+jti).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
