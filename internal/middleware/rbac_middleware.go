package middleware

import (
	"net/http"

	"onebiz-payroll/internal/domain"
	"onebiz-payroll/internal/shared/apperror"
	"onebiz-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type ContextKey string

const (
	ContextEmployeeID ContextKey = "employee_id"
	ContextCompanyID  ContextKey = "company_id"
	ContextCanReadAll   ContextKey = "can_read_all"
	ContextCanCalculate ContextKey = "can_calculate"
)

// RBACService is satisfied by anything with Enforce(domain.EnforceRequest).
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func enforceRequest(c *gin.Context, resource, action string) (domain.EnforceRequest, bool) {
	employeeID := c.GetString(string(ContextEmployeeID))
	companyID := c.GetString(string(ContextCompanyID))
	if employeeID == "" || companyID == "" {
		return domain.EnforceRequest{}, false
	}
	return domain.EnforceRequest{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Resource:   resource,
		Action:     action,
	}, true
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := enforceRequest(c, resource, action)
		if !ok {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(req)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				"You do not have permission to access this resource",
				gin.H{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ResolveScope stores can_read_all without rejecting the request. Handlers
// use the flag to limit callers to their own records.
func ResolveScope(service RBACService, resource, action string) gin.HandlerFunc {
	return ResolveGrant(service, resource, action, ContextCanReadAll)
}

// ResolveGrant stores whether resource:action is granted under key and
// always lets the request through.
func ResolveGrant(service RBACService, resource, action string, key ContextKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		granted := false
		if req, ok := enforceRequest(c, resource, action); ok {
			allowed, err := service.Enforce(req)
			granted = err == nil && allowed
		}
		c.Set(string(key), granted)
		c.Next()
	}
}
