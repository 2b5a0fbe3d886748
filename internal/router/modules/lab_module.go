package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/AweFilko/PIB-SQL-injection/internal/application"
	handlers "github.com/AweFilko/PIB-SQL-injection/internal/interface/http"
	"github.com/AweFilko/PIB-SQL-injection/internal/interface/middleware"
)

// Module wires the backend's login/dashboard/logout routes.
// Public:    GET/POST /, GET /logout
// Protected: GET /dashboard (plus POST /dashboard for the interpolated variant)
type Module struct {
	Auth          *handlers.AuthHandler
	Dashboard     *handlers.DashboardHandler
	Sessions      application.Sessions
	RDB           *redis.Client
	DashboardPost bool
}

func New(auth *handlers.AuthHandler, dash *handlers.DashboardHandler, sessions application.Sessions, rdb *redis.Client, dashboardPost bool) *Module {
	return &Module{Auth: auth, Dashboard: dash, Sessions: sessions, RDB: rdb, DashboardPost: dashboardPost}
}

func (m *Module) Register(rg *gin.RouterGroup) {
	// 10 login attempts per minute per IP, a softer limit for page loads.
	loginLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIP())
	dashLimiter := middleware.RateLimit(m.RDB, 300, time.Minute, middleware.KeyByIPAndPath())

	rg.GET("/", m.Auth.LoginForm)
	rg.POST("/", loginLimiter, m.Auth.Login)
	rg.GET("/logout", m.Auth.Logout)

	gate := middleware.SessionGate(m.Sessions)
	rg.GET("/dashboard", dashLimiter, gate, m.Dashboard.Show)
	if m.DashboardPost {
		rg.POST("/dashboard", dashLimiter, gate, m.Dashboard.Show)
	}
}
