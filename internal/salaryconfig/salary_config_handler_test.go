package salaryconfig_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"onebiz-payroll/internal/salaryconfig"
	salaryconfigMock "onebiz-payroll/internal/salaryconfig/mock"
	"onebiz-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func setupRouter(svc salaryconfig.Service, companyID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := salaryconfig.NewHandler(svc)
	r.GET("/salary-configs", func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Next()
	}, h.GetAll)
	return r
}

func TestSalaryConfigHandler_GetAll(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := salaryconfigMock.NewMockService(ctrl)
		svc.EXPECT().
			GetSalaryConfigs(gomock.Any(), companyID, "hourly").
			Return([]salaryconfig.SalaryConfig{
				{ID: uuid.New(), PayType: "hourly", ConfigKey: "hourly_rate", ConfigValue: "50000", IsActive: true},
			}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/salary-configs?pay_type=hourly", nil)
		setupRouter(svc, companyID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)

		var data []salaryconfig.SalaryConfigResponse
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Len(t, data, 1)
		assert.Equal(t, float64(50000), data[0].NumberValue)
	})

	t.Run("missing pay type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := salaryconfigMock.NewMockService(ctrl)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/salary-configs", nil)
		setupRouter(svc, companyID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
	})
}
