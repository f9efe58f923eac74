package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"onebiz-payroll/internal/domain"
	"onebiz-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBAC struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func withIdentity(c *gin.Context) {
	c.Set("employee_id", "e-1")
	c.Set("company_id", "c-1")
	c.Next()
}

func TestRBACAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		rbac     *fakeRBAC
		identity bool
		want     int
	}{
		{"allowed", &fakeRBAC{allowed: true}, true, http.StatusOK},
		{"denied", &fakeRBAC{allowed: false}, true, http.StatusForbidden},
		{"enforcer error", &fakeRBAC{err: errors.New("policy load failed")}, true, http.StatusInternalServerError},
		{"no identity", &fakeRBAC{allowed: true}, false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			handlers := []gin.HandlerFunc{}
			if tt.identity {
				handlers = append(handlers, withIdentity)
			}
			handlers = append(handlers,
				middleware.RBACAuthorize(tt.rbac, "payroll", "finalize"),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)
			r.POST("/x", handlers...)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))

			assert.Equal(t, tt.want, w.Code)
			if tt.identity {
				assert.Equal(t, "payroll", tt.rbac.got.Resource)
				assert.Equal(t, "finalize", tt.rbac.got.Action)
			}
		})
	}
}

func TestResolveScope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, allowed := range []bool{true, false} {
		r := gin.New()
		var got bool
		r.GET("/x", withIdentity, middleware.ResolveScope(&fakeRBAC{allowed: allowed}, "payroll", "read_all"), func(c *gin.Context) {
			got = c.GetBool("can_read_all")
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, allowed, got)
	}
}

func TestResolveGrant(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rbac := &fakeRBAC{allowed: true}
	r := gin.New()
	var canCalculate, readAllSet bool
	r.GET("/x", withIdentity, middleware.ResolveGrant(rbac, "payroll", "calculate", middleware.ContextCanCalculate), func(c *gin.Context) {
		canCalculate = c.GetBool(string(middleware.ContextCanCalculate))
		_, readAllSet = c.Get(string(middleware.ContextCanReadAll))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, canCalculate)
	assert.False(t, readAllSet)
	assert.Equal(t, "calculate", rbac.got.Action)
}
