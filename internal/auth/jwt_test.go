package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() TokenService {
	return TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "englishkaku",
		Duration: time.Hour,
	}
}

func TestSignParseRoundTrip(t *testing.T) {
	ts := testService()

	tok, exp, err := ts.Sign("nightly-batch")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := ts.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "nightly-batch", claims.Workflow)
	assert.Equal(t, "englishkaku", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, _, err := testService().Sign("w")
	require.NoError(t, err)

	other := testService()
	other.Secret = []byte("different")
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	ts := testService()
	ts.Duration = -time.Minute

	tok, _, err := ts.Sign("w")
	require.NoError(t, err)

	_, err = ts.Parse(tok)
	assert.Error(t, err)
}

func newProtectedRouter(ts TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/convert", Middleware(ts), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestMiddlewareRequiresToken(t *testing.T) {
	router := newProtectedRouter(testService())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/convert", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	ts := testService()
	router := newProtectedRouter(ts)

	tok, _, err := ts.Sign("w")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/convert", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMiddlewareRejectsGarbageToken(t *testing.T) {
	router := newProtectedRouter(testService())

	req := httptest.NewRequest(http.MethodPost, "/convert", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareDisabledWithoutSecret(t *testing.T) {
	router := newProtectedRouter(TokenService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/convert", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
