package auth

import (
	"testing"
	"time"

	"areacheck/config"
	domainerrors "areacheck/internal/domain/errors"
	"areacheck/internal/domain/service"
	"areacheck/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
	}
}

func newTestJWTService(t *testing.T, clock func() time.Time) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	if clock != nil {
		impl.now = clock
	}

	return impl
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Refresh = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestNewJWTService_TTLs(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, svc.AccessTTL())
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTTL())

	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{AccessTTL: time.Minute, RefreshTTL: time.Hour}
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, svc.AccessTTL())
	assert.Equal(t, time.Hour, svc.RefreshTTL())
}

func TestJWTService_IssueAndParse(t *testing.T) {
	svc := newTestJWTService(t, nil)

	accessToken, err := svc.IssueAccessToken("alice", 42)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	refreshToken, err := svc.IssueRefreshToken("alice", 42)
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ParseAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", accessClaims.Username)
	assert.Equal(t, int64(42), accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, "42", accessClaims.Subject)

	refreshClaims, err := svc.ParseRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", refreshClaims.Username)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)

	username, err := svc.UsernameOf(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	userID, err := svc.UserIDOf(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	svc := newTestJWTService(t, nil)

	first, err := svc.IssueAccessToken("alice", 1)
	require.NoError(t, err)
	second, err := svc.IssueAccessToken("alice", 1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_Expiry(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	current := issuedAt
	svc := newTestJWTService(t, func() time.Time { return current })

	accessToken, err := svc.IssueAccessToken("bob", 7)
	require.NoError(t, err)
	refreshToken, err := svc.IssueRefreshToken("bob", 7)
	require.NoError(t, err)

	current = issuedAt.Add(14 * time.Minute)
	_, err = svc.ParseAccessToken(accessToken)
	require.NoError(t, err)

	current = issuedAt.Add(16 * time.Minute)
	_, err = svc.ParseAccessToken(accessToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	// The refresh token outlives the access token.
	_, err = svc.ParseRefreshToken(refreshToken)
	require.NoError(t, err)

	current = issuedAt.Add(8 * 24 * time.Hour)
	_, err = svc.ParseRefreshToken(refreshToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newTestJWTService(t, nil)

	accessToken, err := svc.IssueAccessToken("carol", 3)
	require.NoError(t, err)
	refreshToken, err := svc.IssueRefreshToken("carol", 3)
	require.NoError(t, err)

	other, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKeyConfig{Access: "another_access_secret", Refresh: "another_refresh_secret"},
	})
	require.NoError(t, err)
	foreignToken, err := other.IssueAccessToken("carol", 3)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{
		Username: "carol",
		Type:     service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		Username: "carol",
		Type:     service.TokenTypeAccess,
	}).SignedString(svc.accessSecret)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
		parse func(string) (*service.Claims, error)
	}{
		{name: "empty", token: "", parse: svc.ParseAccessToken},
		{name: "garbage", token: "clearly-not-a-jwt-token-format", parse: svc.ParseAccessToken},
		{name: "truncated", token: accessToken[:len(accessToken)-4], parse: svc.ParseAccessToken},
		{name: "refresh used as access", token: refreshToken, parse: svc.ParseAccessToken},
		{name: "access used as refresh", token: accessToken, parse: svc.ParseRefreshToken},
		{name: "foreign secret", token: foreignToken, parse: svc.ParseAccessToken},
		{name: "alg none", token: noneToken, parse: svc.ParseAccessToken},
		{name: "missing expiry", token: noExpiry, parse: svc.ParseAccessToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := tc.parse(tc.token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestJWTService_UsernameOfInvalid(t *testing.T) {
	svc := newTestJWTService(t, nil)

	username, err := svc.UsernameOf("bad")
	assert.Error(t, err)
	assert.Empty(t, username)

	userID, err := svc.UserIDOf("bad")
	assert.Error(t, err)
	assert.Zero(t, userID)
}
