package app

import (
	"github.com/gin-gonic/gin"

	"github.com/AweFilko/PIB-SQL-injection/internal/container"
	"github.com/AweFilko/PIB-SQL-injection/internal/interface/middleware"
	"github.com/AweFilko/PIB-SQL-injection/internal/relay"
	"github.com/AweFilko/PIB-SQL-injection/internal/router"
	"github.com/AweFilko/PIB-SQL-injection/pkg/render"
	"github.com/AweFilko/PIB-SQL-injection/web"
)

// BuildBackend assembles the gin engine for the lab application server.
// InitBackend must have run first.
func BuildBackend() *gin.Engine {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	engine := gin.New()
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithField("panic", recovered).Error("unhandled error while serving request")
		render.ErrorPage(c)
	}))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RealIP())
	if cfg.HTTPLogEnabled {
		engine.Use(gin.Logger())
	}
	engine.SetHTMLTemplate(web.Templates())

	reg := router.NewRegistry(engine)
	router.InitModules(reg)
	reg.RegisterAll()
	return engine
}

// BuildRelay assembles the gin engine for the filtering relay. Every
// route goes through Inspect; anything not blocked falls through to
// Forward via NoRoute.
func BuildRelay() *gin.Engine {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	rl := relay.New(cfg.UpstreamURL, logger, auditSink())

	engine := gin.New()
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithField("panic", recovered).Error("upstream relay failure")
		render.ErrorPage(c)
	}))
	engine.Use(middleware.RequestID())
	if cfg.HTTPLogEnabled {
		engine.Use(gin.Logger())
	}
	engine.SetHTMLTemplate(web.Templates())

	engine.Use(rl.Inspect())
	engine.NoRoute(rl.Forward())
	return engine
}

// auditSink avoids handing the relay a non-nil interface wrapping a nil
// publisher.
func auditSink() relay.AuditPublisher {
	if p := container.GetAuditPub(); p != nil {
		return p
	}
	return nil
}
