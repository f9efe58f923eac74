package payroll

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"onebiz-payroll/internal/middleware"
	payrollerrors "onebiz-payroll/internal/payroll/errors"
	"onebiz-payroll/internal/shared/apperror"
	"onebiz-payroll/internal/shared/contextutil"
	"onebiz-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyResponseTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("employee_id")
	if actorID == "" {
		actorID = c.GetString("user_id_validated")
	}
	return actorID
}

func getActor(c *gin.Context) Actor {
	return Actor{ID: getActorID(c), Name: c.GetString("employee_name")}
}

// canAccess lets callers without read_all see only their own records.
func canAccess(c *gin.Context, employeeID string) bool {
	return c.GetBool(string(middleware.ContextCanReadAll)) || employeeID == c.GetString("employee_id")
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
}

// Calculate returns a preview without persisting anything. Overrides are
// ignored unless the caller may also run payroll:calculate.
func (h *Handler) Calculate(c *gin.Context) {
	var req CalculatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	if !canAccess(c, req.EmployeeID) {
		h.writeServiceError(c, payrollerrors.ErrForbiddenEmployee)
		return
	}
	if !c.GetBool(string(middleware.ContextCanCalculate)) {
		req.Overrides = Overrides{}
	}

	res, err := h.service.CalculateEmployeePayroll(
		c.Request.Context(), c.GetString("company_id"), req.EmployeeID, req.Month, req.Overrides,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) CalculateBulk(c *gin.Context) {
	var req BulkCalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	items, err := h.service.CalculateBulkPayroll(c.Request.Context(), c.GetString("company_id"), req.Month, req.BranchID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) RequestBulk(c *gin.Context) {
	lockKey := c.GetString(middleware.IdempotencyLockKey)
	cacheKey := c.GetString(middleware.IdempotencyCacheKey)
	if h.rdb != nil && lockKey != "" {
		defer h.rdb.Del(c.Request.Context(), lockKey)
	}

	var req BulkCalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.RequestBulkPayroll(c.Request.Context(), c.GetString("company_id"), getActorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil && cacheKey != "" {
		if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
			if setErr := h.rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyResponseTTL).Err(); setErr != nil {
				contextutil.GetLogger(c.Request.Context(), zap.L()).
					Warn("failed to cache idempotent response", zap.Error(setErr))
			}
		}
	}

	response.Success(c, http.StatusAccepted, resp, nil)
}

// Save recalculates server-side and upserts the result.
func (h *Handler) Save(c *gin.Context) {
	var req CalculatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.CalculateAndSave(c.Request.Context(), c.GetString("company_id"), getActorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Finalize(c *gin.Context) {
	h.setFinalized(c, true)
}

func (h *Handler) Unfinalize(c *gin.Context) {
	h.setFinalized(c, false)
}

func (h *Handler) setFinalized(c *gin.Context, finalized bool) {
	var req FinalizePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	fn := h.service.FinalizePayroll
	if !finalized {
		fn = h.service.UnfinalizePayroll
	}

	resp, err := fn(c.Request.Context(), c.GetString("company_id"), getActor(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	var req ListMonthlySalariesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	rows, err := h.service.ListMonthlySalaries(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if !c.GetBool(string(middleware.ContextCanReadAll)) {
		own := make([]MonthlySalaryResponse, 0, 1)
		for _, row := range rows {
			if row.EmployeeID == c.GetString("employee_id") {
				own = append(own, row)
			}
		}
		rows = own
	}

	meta := response.NewPaginationMeta(int64(len(rows)), 1, len(rows))
	response.Success(c, http.StatusOK, rows, &meta)
}

func (h *Handler) Get(c *gin.Context) {
	employeeID := c.Param("employee_id")
	if !canAccess(c, employeeID) {
		h.writeServiceError(c, payrollerrors.ErrForbiddenEmployee)
		return
	}

	resp, err := h.service.GetMonthlySalary(c.Request.Context(), c.GetString("company_id"), employeeID, c.Param("month"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Payslip(c *gin.Context) {
	employeeID := c.Param("employee_id")
	month := c.Param("month")
	if !canAccess(c, employeeID) {
		h.writeServiceError(c, payrollerrors.ErrForbiddenEmployee)
		return
	}

	pdf, err := h.service.GeneratePayslipPDF(c.Request.Context(), c.GetString("company_id"), employeeID, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Attachment(c, fmt.Sprintf("payslip-%s-%s.pdf", employeeID, month), "application/pdf", pdf)
}
