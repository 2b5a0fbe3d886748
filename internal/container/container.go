package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/AweFilko/PIB-SQL-injection/config"
	"github.com/AweFilko/PIB-SQL-injection/internal/application"
	"github.com/AweFilko/PIB-SQL-injection/internal/domain/repository"
	"github.com/AweFilko/PIB-SQL-injection/pkg/helpers"
	"github.com/AweFilko/PIB-SQL-injection/pkg/validation"
)

// app-level container to share constructed components across packages.
// Router wiring pulls modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	store    repository.Store
	policy   validation.Policy
	sessions application.Sessions
	cookies  *helpers.CookieManager
	auditPub *helpers.RabbitPublisher
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func GetLogger() *logrus.Logger               { return logger }
func SetPGPool(p *pgxpool.Pool)               { pgPool = p }
func GetPGPool() *pgxpool.Pool                { return pgPool }
func SetRedis(r *redis.Client)                { redisClient = r }
func GetRedis() *redis.Client                 { return redisClient }
func SetStore(s repository.Store)             { store = s }
func GetStore() repository.Store              { return store }
func SetPolicy(p validation.Policy)           { policy = p }
func GetPolicy() validation.Policy            { return policy }
func SetSessions(s application.Sessions)      { sessions = s }
func GetSessions() application.Sessions       { return sessions }
func SetCookies(m *helpers.CookieManager)     { cookies = m }
func GetCookies() *helpers.CookieManager      { return cookies }
func SetAuditPub(p *helpers.RabbitPublisher)  { auditPub = p }
func GetAuditPub() *helpers.RabbitPublisher   { return auditPub }
