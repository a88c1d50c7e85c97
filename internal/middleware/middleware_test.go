package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func whoami(c *gin.Context) {
	c.String(http.StatusOK, UserID(c))
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	const secret = "s3cret"
	valid, err := IssueToken(secret, "alice", time.Hour)
	require.NoError(t, err)
	expired, err := IssueToken(secret, "alice", -time.Minute)
	require.NoError(t, err)
	wrongKey, err := IssueToken("other", "alice", time.Hour)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "alice",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	subjectOnly, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "carol",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name     string
		required bool
		header   string
		status   int
		body     string
	}{
		{"valid token", true, "Bearer " + valid, http.StatusOK, "alice"},
		{"subject claim", true, "Bearer " + subjectOnly, http.StatusOK, "carol"},
		{"missing token required", true, "", http.StatusUnauthorized, ""},
		{"missing token optional", false, "", http.StatusOK, AnonymousUser},
		{"expired", false, "Bearer " + expired, http.StatusUnauthorized, ""},
		{"wrong key", false, "Bearer " + wrongKey, http.StatusUnauthorized, ""},
		{"alg none", false, "Bearer " + unsigned, http.StatusUnauthorized, ""},
		{"not bearer", false, "Basic abc", http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/me", Auth(secret, tt.required), whoami)
			w := serve(r, tt.header)
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestParseTokenRoundTrip(t *testing.T) {
	tok, err := IssueToken("k", "dave", time.Minute)
	require.NoError(t, err)
	claims, err := ParseToken("k", tok)
	require.NoError(t, err)
	assert.Equal(t, "dave", claims.Owner())
	assert.Equal(t, "bodymap-backend", claims.Issuer)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"), "limits are per client")

	now = now.Add(time.Minute)
	assert.True(t, rl.Allow("a"), "window slid past earlier requests")

	rl.Stop() // idempotent
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	r := gin.New()
	r.GET("/me", RateLimit(rl), whoami)

	assert.Equal(t, http.StatusOK, serve(r, "").Code)
	w := serve(r, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.GET("/me", Logger(zap.New(core)), Auth("k", false), whoami)

	req := httptest.NewRequest(http.MethodGet, "/me?x=1", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/me?x=1", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, AnonymousUser, fields["user_id"])

	r.GET("/fail", Logger(zap.New(core)), Auth("k", true), whoami)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.Len(t, logs.All(), 2)
	assert.Equal(t, zap.WarnLevel, logs.All()[1].Level)
}
