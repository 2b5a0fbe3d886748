package router

import (
	"github.com/AweFilko/PIB-SQL-injection/internal/container"
	handlers "github.com/AweFilko/PIB-SQL-injection/internal/interface/http"
	"github.com/AweFilko/PIB-SQL-injection/internal/router/modules"
)

// InitModules builds the backend module from container singletons and
// registers it. Call once during startup, after the container is filled.
func InitModules(r *Registry) {
	auth := handlers.NewAuthHandler(
		container.GetStore(),
		container.GetPolicy(),
		container.GetSessions(),
		container.GetCookies(),
		container.GetLogger(),
	)
	dash := handlers.NewDashboardHandler(
		container.GetStore(),
		container.GetPolicy(),
		container.GetLogger(),
	)
	r.Add(modules.New(
		auth,
		dash,
		container.GetSessions(),
		container.GetRedis(),
		container.GetConfig().Interpolated(),
	))
}
