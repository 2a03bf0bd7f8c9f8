package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

var testSecret = []byte("jwt-test-secret")

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestEngine(t *testing.T) *ginext.Engine {
	t.Helper()
	log := newTestLogger(t)

	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/panic", func(*ginext.Context) { panic("boom") })

	authed := r.Group("/me", Auth(testSecret, log))
	authed.GET("", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"user_id": UserID(c)})
	})
	authed.GET("/admin", RequireRole(RoleAdmin), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"ok": true})
	})
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	r := newTestEngine(t)

	w := doGet(r, "/me", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	r := newTestEngine(t)

	w := doGet(r, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.Contains(t, w.Body.String(), w.Header().Get(RequestIDHeader))
}

func TestAuth_MissingToken(t *testing.T) {
	w := doGet(newTestEngine(t), "/me", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	token, err := IssueToken(testSecret, "u1", "u1@example.com", nil, time.Hour)
	require.NoError(t, err)

	w := doGet(newTestEngine(t), "/me", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u1"}`, w.Body.String())
}

func TestAuth_ExpiredToken(t *testing.T) {
	token, err := IssueToken(testSecret, "u1", "", nil, -time.Hour)
	require.NoError(t, err)

	w := doGet(newTestEngine(t), "/me", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	token, err := IssueToken([]byte("other-secret"), "u1", "", nil, time.Hour)
	require.NoError(t, err)

	w := doGet(newTestEngine(t), "/me", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: "u1"})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	w := doGet(newTestEngine(t), "/me", raw)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_SubjectFallback(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u2",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := token.SignedString(testSecret)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, raw)

	require.NoError(t, err)
	assert.Equal(t, "u2", claims.UserID())
}

func TestRequireRole(t *testing.T) {
	r := newTestEngine(t)

	user, err := IssueToken(testSecret, "u1", "", []string{"eventee"}, time.Hour)
	require.NoError(t, err)
	admin, err := IssueToken(testSecret, "u9", "", []string{"creator", RoleAdmin}, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doGet(r, "/me/admin", user).Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/me/admin", admin).Code)
}

func TestBearerToken(t *testing.T) {
	tok, ok := bearerToken("bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = bearerToken("Basic abc")
	assert.False(t, ok)

	_, ok = bearerToken("Bearer ")
	assert.False(t, ok)
}
