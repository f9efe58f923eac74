package app

import (
	"database/sql"

	"onebiz-payroll/internal/attendance"
	"onebiz-payroll/internal/bootstrap"
	"onebiz-payroll/internal/config"
	"onebiz-payroll/internal/employee"
	"onebiz-payroll/internal/holiday"
	"onebiz-payroll/internal/leave"
	"onebiz-payroll/internal/messaging/kafka"
	"onebiz-payroll/internal/middleware"
	"onebiz-payroll/internal/payroll"
	"onebiz-payroll/internal/rbac"
	"onebiz-payroll/internal/rbac/infra"
	"onebiz-payroll/internal/salaryconfig"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const (
	apiRateLimit = rate.Limit(20)
	apiRateBurst = 40
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	auditLogger bootstrap.AuditLogger,
) error {
	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBAC.ModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbac.NewRepository(gormDB), enforcer)

	// --- Services ---
	salaryConfigService := salaryconfig.NewService(salaryconfig.NewRepository(gormDB), rdb, cfg.Payroll.ConfigCacheTTL)
	payrollService := newPayrollService(cfg, db, gormDB, salaryConfigService, auditLogger, zap.L())

	// --- Handlers ---
	salaryConfigHandler := salaryconfig.NewHandler(salaryConfigService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(apiRateLimit, apiRateBurst))
	{
		salaryconfig.RegisterRoutes(api, salaryConfigHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
	}

	return nil
}

// newPayrollService wires the engine to its read models. The API and the
// bulk consumer share it.
func newPayrollService(
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	configs salaryconfig.Service,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) payroll.Service {
	return payroll.NewService(
		db,
		payroll.NewRepository(gormDB),
		payroll.Dependencies{
			Employees:  employee.NewRepository(gormDB),
			Configs:    configs,
			Attendance: attendance.NewRepository(gormDB),
			Leaves:     leave.NewRepository(gormDB),
			Holidays:   holiday.NewRepository(gormDB),
			Outbox:     kafka.NewOutboxRepository(db),
			Audit:      auditLogger,
		},
		payroll.Options{
			ReadTimeout:     cfg.Payroll.ReadTimeout,
			BulkConcurrency: cfg.Payroll.BulkConcurrency,
			Location:        cfg.Payroll.Location,
		},
		logger,
	)
}
