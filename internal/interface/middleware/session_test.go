package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AweFilko/PIB-SQL-injection/internal/application"
	"github.com/AweFilko/PIB-SQL-injection/internal/domain/entity"
	"github.com/AweFilko/PIB-SQL-injection/pkg/helpers"
)

type fakeSessions struct {
	identities map[string]*entity.Identity
}

func (f *fakeSessions) Establish(context.Context, *entity.Identity) (string, time.Time, error) {
	return "", time.Time{}, nil
}

func (f *fakeSessions) Lookup(_ context.Context, token string) (*entity.Identity, error) {
	if id, ok := f.identities[token]; ok {
		return id, nil
	}
	return nil, application.ErrNoSession
}

func (f *fakeSessions) Destroy(context.Context, string) error { return nil }

func gateEngine(sessions application.Sessions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/dashboard", SessionGate(sessions), func(c *gin.Context) {
		c.String(http.StatusOK, "hello %s", c.GetString(CtxUsernameKey))
	})
	return r
}

func TestSessionGate_NoCookieRedirects(t *testing.T) {
	r := gateEngine(&fakeSessions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestSessionGate_UnknownTokenRedirects(t *testing.T) {
	r := gateEngine(&fakeSessions{identities: map[string]*entity.Identity{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: "bogus"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestSessionGate_ValidSessionPassesIdentity(t *testing.T) {
	sessions := &fakeSessions{identities: map[string]*entity.Identity{
		"good": {ID: 1, Username: "alice"},
	}}
	r := gateEngine(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: "good"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello alice", w.Body.String())
}
