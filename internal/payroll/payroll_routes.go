package payroll

import (
	"onebiz-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	bulkRateLimit = rate.Limit(0.2)
	bulkBurst     = 2
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	{
		scope := middleware.ResolveScope(rbacService, "payroll", "read_all")

		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), scope, handler.List)
		payrolls.GET("/:employee_id/:month", middleware.RBACAuthorize(rbacService, "payroll", "read"), scope, handler.Get)
		payrolls.GET("/:employee_id/:month/payslip", middleware.RBACAuthorize(rbacService, "payroll", "read"), scope, handler.Payslip)

		payrolls.POST(
			"/calculate",
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			scope,
			middleware.ResolveGrant(rbacService, "payroll", "calculate", middleware.ContextCanCalculate),
			handler.Calculate,
		)
		payrolls.POST(
			"/calculate/bulk",
			middleware.RateLimitByUser(bulkRateLimit, bulkBurst),
			middleware.RBACAuthorize(rbacService, "payroll", "calculate"),
			handler.CalculateBulk,
		)
		if redisClient != nil {
			payrolls.POST(
				"/bulk-requests",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "payroll", "calculate"),
				handler.RequestBulk,
			)
		} else {
			payrolls.POST("/bulk-requests", middleware.RBACAuthorize(rbacService, "payroll", "calculate"), handler.RequestBulk)
		}
		payrolls.POST("", middleware.RBACAuthorize(rbacService, "payroll", "calculate"), handler.Save)
		payrolls.POST("/finalize", middleware.RBACAuthorize(rbacService, "payroll", "finalize"), handler.Finalize)
		payrolls.POST("/unfinalize", middleware.RBACAuthorize(rbacService, "payroll", "finalize"), handler.Unfinalize)
	}
}
