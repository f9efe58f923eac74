package app

import (
	"onebiz-payroll/internal/bootstrap"
	"onebiz-payroll/internal/config"
	"onebiz-payroll/internal/middleware"
	"onebiz-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const connectRetries = 5

// BuildApp connects the stores and registers every module on router. The
// returned func closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, auditLogger bootstrap.AuditLogger) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, connectRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, connectRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	router.Use(middleware.ContextLogger(zap.L()))

	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient, auditLogger); err != nil {
		_ = redisClient.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	return func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}, nil
}
