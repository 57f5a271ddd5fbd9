package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Candratama/invow-sub000/internal/config"
	"github.com/Candratama/invow-sub000/internal/storectx"
)

func newAuthTestServer(t *testing.T, secret string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandlingMiddleware())

	s := &Server{engine: r, cfg: config.Config{AuthJWTSecret: secret}}
	r.GET("/whoami", s.AuthRequired(), func(c *gin.Context) {
		storeID, _ := storectx.StoreIDFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"store_id": storeID.String(),
			"role":     storectx.RoleFromContext(c.Request.Context()),
		})
	})
	r.GET("/admin-only", s.AuthRequired(), s.AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func doAuthRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredRejectsAllTokensWithoutConfiguredSecret(t *testing.T) {
	r := newAuthTestServer(t, "")

	// A token signed with the empty HMAC key must not validate.
	forged := signToken(t, "", jwt.MapClaims{"store_id": "42", "role": "admin"})

	w := doAuthRequest(r, "/whoami", forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doAuthRequest(r, "/admin-only", forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredBindsStoreAndRole(t *testing.T) {
	r := newAuthTestServer(t, "test-secret")

	token := signToken(t, "test-secret", jwt.MapClaims{"store_id": "42", "role": "owner"})
	w := doAuthRequest(r, "/whoami", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store_id":"42"`)
	assert.Contains(t, w.Body.String(), `"role":"owner"`)
}

func TestAuthRequiredRejectsBadTokens(t *testing.T) {
	r := newAuthTestServer(t, "test-secret")

	w := doAuthRequest(r, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doAuthRequest(r, "/whoami", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	wrongKey := signToken(t, "other-secret", jwt.MapClaims{"store_id": "42"})
	w = doAuthRequest(r, "/whoami", wrongKey)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	noStore := signToken(t, "test-secret", jwt.MapClaims{"role": "owner"})
	w = doAuthRequest(r, "/whoami", noStore)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredRejectsNumericStoreClaim(t *testing.T) {
	r := newAuthTestServer(t, "test-secret")

	// Numeric claims decode as float64 and corrupt IDs above 2^53.
	token := signToken(t, "test-secret", jwt.MapClaims{"store_id": 42, "role": "owner"})
	w := doAuthRequest(r, "/whoami", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequiredGatesByRole(t *testing.T) {
	r := newAuthTestServer(t, "test-secret")

	admin := signToken(t, "test-secret", jwt.MapClaims{"store_id": "42", "role": "admin"})
	w := doAuthRequest(r, "/admin-only", admin)
	assert.Equal(t, http.StatusOK, w.Code)

	owner := signToken(t, "test-secret", jwt.MapClaims{"store_id": "42", "role": "owner"})
	w = doAuthRequest(r, "/admin-only", owner)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestParseStoreClaim(t *testing.T) {
	id, ok := parseStoreClaim("42")
	assert.True(t, ok)
	assert.Equal(t, snowflake.ID(42), id)

	for _, raw := range []any{float64(42), 42, "0", "abc", nil, true} {
		_, ok := parseStoreClaim(raw)
		assert.False(t, ok, "claim %v should be rejected", raw)
	}
}
