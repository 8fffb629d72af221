package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"foodgram/internal/config"
	"foodgram/internal/logger"
	"foodgram/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.GlobalConfig = &config.Config{
		JWT: config.JWTConfig{
			SecretKey:            "test-secret",
			AccessExpireSeconds:  3600,
			RefreshExpireSeconds: 7200,
			BufferSeconds:        60,
			Issuer:               "foodgram-test",
		},
		Log: config.LogConfig{Level: "error"},
	}
	logger.InitLogger(&config.GlobalConfig.Log)
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newProtectedRouter 注册一条受保护的路由，记录处理函数是否被执行
func newProtectedRouter(mw gin.HandlerFunc, handlerRan *bool) *gin.Engine {
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		*handlerRan = true
		c.JSON(http.StatusOK, gin.H{"secret": "data"})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuthRejectsNonAdminBeforeHandler(t *testing.T) {
	pair, err := auth.GenerateTokenPair(1, "user")
	require.NoError(t, err)

	var handlerRan bool
	r := newProtectedRouter(AdminAuth(), &handlerRan)

	w := doRequest(r, pair.AccessToken)

	assert.Equal(t, http.StatusForbidden, w.Code)
	// 角色不足时业务处理函数不能被执行
	assert.False(t, handlerRan)
}

func TestAdminAuthAllowsAdmin(t *testing.T) {
	pair, err := auth.GenerateTokenPair(2, "admin")
	require.NoError(t, err)

	var handlerRan bool
	r := newProtectedRouter(AdminAuth(), &handlerRan)

	w := doRequest(r, pair.AccessToken)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerRan)
}

func TestAdminAuthRejectsMissingAndWrongTokens(t *testing.T) {
	pair, err := auth.GenerateTokenPair(3, "admin")
	require.NoError(t, err)

	t.Run("缺少令牌", func(t *testing.T) {
		var handlerRan bool
		r := newProtectedRouter(AdminAuth(), &handlerRan)
		w := doRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, handlerRan)
	})

	t.Run("使用刷新令牌", func(t *testing.T) {
		var handlerRan bool
		r := newProtectedRouter(AdminAuth(), &handlerRan)
		w := doRequest(r, pair.RefreshToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, handlerRan)
	})
}

func TestJWTAuthSetsUserContext(t *testing.T) {
	pair, err := auth.GenerateTokenPair(7, "user")
	require.NoError(t, err)

	var gotID uint
	var gotRole string
	r := gin.New()
	r.GET("/protected", JWTAuth(), func(c *gin.Context) {
		gotID, _ = GetUserID(c)
		gotRole, _ = GetUserRole(c)
		c.Status(http.StatusOK)
	})

	w := doRequest(r, pair.AccessToken)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), gotID)
	assert.Equal(t, "user", gotRole)
}

func TestOptionalAuthAnonymousPasses(t *testing.T) {
	var hasUser bool
	r := gin.New()
	r.GET("/protected", OptionalAuth(), func(c *gin.Context) {
		_, hasUser = GetUserID(c)
		c.Status(http.StatusOK)
	})

	w := doRequest(r, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, hasUser)
}
