package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately-inc/estately/internal/infrastructure/auth"
	"github.com/estately-inc/estately/internal/infrastructure/ratelimit"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/constants"
	"github.com/estately-inc/estately/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)            {}
func (nopLogger) Info(string, ...any)             {}
func (nopLogger) Warn(string, ...any)             {}
func (nopLogger) Error(string, ...any)            {}
func (nopLogger) Fatal(string, ...any)            {}
func (n nopLogger) With(...any) logger.Interface  { return n }
func (n nopLogger) Named(string) logger.Interface { return n }
func (nopLogger) Debugw(string, ...interface{})   {}
func (nopLogger) Infow(string, ...interface{})    {}
func (nopLogger) Warnw(string, ...interface{})    {}
func (nopLogger) Errorw(string, ...interface{})   {}
func (nopLogger) Fatalw(string, ...interface{})   {}

// actorEcho reports the actor resolved by the middleware chain.
func actorEcho(c *gin.Context) {
	actor := authorization.ActorFromContext(c)
	c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "role": string(actor.Role)})
}

func perform(engine *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := auth.NewJWTService("secret", "estately")
	mw := NewAuthMiddleware(jwtService, nopLogger{})

	token, err := jwtService.Generate(7, authorization.RoleModerator, time.Hour)
	require.NoError(t, err)
	forged, err := auth.NewJWTService("other", "estately").Generate(7, authorization.RoleAdmin, time.Hour)
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/required", mw.RequireAuth(), actorEcho)
	engine.GET("/optional", mw.OptionalAuth(), actorEcho)

	tests := []struct {
		name     string
		path     string
		header   string
		wantCode int
		wantBody string
	}{
		{"required valid", "/required", "Bearer " + token, http.StatusOK, `{"user_id":7,"role":"MODERATOR"}`},
		{"required lowercase scheme", "/required", "bearer " + token, http.StatusOK, `{"user_id":7,"role":"MODERATOR"}`},
		{"required missing", "/required", "", http.StatusUnauthorized, ""},
		{"required wrong scheme", "/required", "Basic abc", http.StatusUnauthorized, ""},
		{"required forged", "/required", "Bearer " + forged, http.StatusUnauthorized, ""},
		{"optional valid", "/optional", "Bearer " + token, http.StatusOK, `{"user_id":7,"role":"MODERATOR"}`},
		{"optional anonymous", "/optional", "", http.StatusOK, `{"user_id":0,"role":"USER"}`},
		{"optional forged is anonymous", "/optional", "Bearer " + forged, http.StatusOK, `{"user_id":0,"role":"USER"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := map[string]string{}
			if tt.header != "" {
				header[constants.HeaderAuthorization] = tt.header
			}
			w := perform(engine, http.MethodGet, tt.path, header)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	w := perform(engine, http.MethodGet, "/", map[string]string{constants.HeaderXRequestID: "req-1"})
	assert.Equal(t, "req-1", w.Body.String())
	assert.Equal(t, "req-1", w.Header().Get(constants.HeaderXRequestID))

	w = perform(engine, http.MethodGet, "/", nil)
	generated := w.Header().Get(constants.HeaderXRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(nopLogger{}))
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := perform(engine, http.MethodGet, "/panic", map[string]string{constants.HeaderAuthorization: "Bearer secret"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
}

func TestRedactedHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderAuthorization, "Bearer secret")

	headers := redactedHeaders(req)

	assert.Contains(t, headers, "Authorization: *")
	for _, h := range headers {
		assert.NotContains(t, h, "secret")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	limiter := ratelimit.NewRedisRateLimiter(client)
	mw := NewRateLimitMiddleware(limiter, "listing:create", ratelimit.RateLimitConfig{RequestsPerHour: 2}, nopLogger{})

	engine := gin.New()
	engine.POST("/listings", func(c *gin.Context) {
		if id := c.GetHeader("X-Test-User"); id == "7" {
			c.Set(constants.ContextKeyUserID, uint(7))
		}
		c.Next()
	}, mw.Limit(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	user := map[string]string{"X-Test-User": "7"}
	assert.Equal(t, http.StatusCreated, perform(engine, http.MethodPost, "/listings", user).Code)
	w := perform(engine, http.MethodPost, "/listings", user)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusTooManyRequests, perform(engine, http.MethodPost, "/listings", user).Code)

	// anonymous callers are keyed by IP and have their own budget
	assert.Equal(t, http.StatusCreated, perform(engine, http.MethodPost, "/listings", nil).Code)

	require.NoError(t, limiter.Reset(context.Background(), "listing:create:user:7"))
	assert.Equal(t, http.StatusCreated, perform(engine, http.MethodPost, "/listings", user).Code)
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	mw := NewRateLimitMiddleware(ratelimit.NewRedisRateLimiter(client), "listing:create",
		ratelimit.RateLimitConfig{RequestsPerHour: 1}, nopLogger{})

	engine := gin.New()
	engine.POST("/listings", mw.Limit(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	assert.Equal(t, http.StatusCreated, perform(engine, http.MethodPost, "/listings", nil).Code)
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"https://estately.example"}))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(engine, http.MethodOptions, "/", map[string]string{"Origin": "https://estately.example"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://estately.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = perform(engine, http.MethodGet, "/", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
