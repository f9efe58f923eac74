package payroll

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"onebiz-payroll/internal/attendance"
	"onebiz-payroll/internal/bootstrap"
	"onebiz-payroll/internal/employee"
	"onebiz-payroll/internal/events"
	"onebiz-payroll/internal/holiday"
	"onebiz-payroll/internal/leave"
	"onebiz-payroll/internal/messaging/kafka"
	payrollerrors "onebiz-payroll/internal/payroll/errors"
	"onebiz-payroll/internal/salaryconfig"
	"onebiz-payroll/internal/shared/apperror"
	"onebiz-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultBulkConcurrency = 8

	aggregateTypePayroll = "payroll"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CalculateEmployeePayroll(ctx context.Context, companyID, employeeID, month string, overrides Overrides) (CalculationResult, error)
	CalculateBulkPayroll(ctx context.Context, companyID, month string, branchID *string) ([]BulkItem, error)
	SavePayrollCalculation(ctx context.Context, companyID, actorID string, result CalculationResult) (MonthlySalaryResponse, error)
	CalculateAndSave(ctx context.Context, companyID, actorID string, req CalculatePayrollRequest) (MonthlySalaryResponse, error)
	CalculateAndSaveBulk(ctx context.Context, companyID, actorID, month string, branchID *string) ([]BulkItem, error)
	FinalizePayroll(ctx context.Context, companyID string, actor Actor, req FinalizePayrollRequest) (FinalizeResponse, error)
	UnfinalizePayroll(ctx context.Context, companyID string, actor Actor, req FinalizePayrollRequest) (FinalizeResponse, error)
	RequestBulkPayroll(ctx context.Context, companyID, actorID string, req BulkCalculateRequest) (BulkRequestResponse, error)
	GetMonthlySalary(ctx context.Context, companyID, employeeID, month string) (MonthlySalaryResponse, error)
	ListMonthlySalaries(ctx context.Context, companyID string, req ListMonthlySalariesRequest) ([]MonthlySalaryResponse, error)
	GeneratePayslipPDF(ctx context.Context, companyID, employeeID, month string) ([]byte, error)
}

// Dependencies are the read models and side channels the engine consumes.
type Dependencies struct {
	Employees  employee.Repository
	Configs    salaryconfig.Service
	Attendance attendance.Repository
	Leaves     leave.Repository
	Holidays   holiday.Repository
	Outbox     kafka.OutboxRepository
	Audit      bootstrap.AuditLogger
}

type Options struct {
	// ReadTimeout bounds the reads for one employee-month.
	ReadTimeout     time.Duration
	BulkConcurrency int
	Location        *time.Location
}

type service struct {
	db         *sql.DB
	repo       Repository
	employees  employee.Repository
	configs    salaryconfig.Service
	attendance attendance.Repository
	leaves     leave.Repository
	holidays   holiday.Repository
	outbox     kafka.OutboxRepository
	audit      bootstrap.AuditLogger
	opts       Options
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Dependencies, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = defaultReadTimeout
	}
	if opts.BulkConcurrency <= 0 {
		opts.BulkConcurrency = defaultBulkConcurrency
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	return &service{
		db:         db,
		repo:       repo,
		employees:  deps.Employees,
		configs:    deps.Configs,
		attendance: deps.Attendance,
		leaves:     deps.Leaves,
		holidays:   deps.Holidays,
		outbox:     deps.Outbox,
		audit:      deps.Audit,
		opts:       opts,
		logger:     l,
	}
}

func (s *service) CalculateEmployeePayroll(
	ctx context.Context,
	companyID, employeeID, month string,
	overrides Overrides,
) (CalculationResult, error) {
	period, err := ParseMonth(month, s.opts.Location)
	if err != nil {
		return CalculationResult{}, err
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return CalculationResult{}, payrollerrors.ErrInvalidEmployeeID
	}

	readCtx, cancel := context.WithTimeout(ctx, s.opts.ReadTimeout)
	defer cancel()

	emp, err := s.employees.FindByIDAndCompany(readCtx, companyID, employeeID)
	if err != nil || emp == nil {
		if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
			return CalculationResult{}, employeeNotFound(employeeID)
		}
		return CalculationResult{}, mapReadError(err)
	}

	return s.calculateFor(readCtx, companyID, *emp, period, overrides)
}

func employeeNotFound(employeeID string) error {
	return apperror.Wrap(
		payrollerrors.ErrEmployeeNotFound,
		apperror.CodeNotFound,
		fmt.Sprintf("employee %s not found", employeeID),
		http.StatusNotFound,
	)
}

func mapReadError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.Wrap(err, payrollerrors.ErrDataSourceTimeout.Code, payrollerrors.ErrDataSourceTimeout.Message, payrollerrors.ErrDataSourceTimeout.HTTPStatus)
	}
	return err
}

// calculateFor loads the employee's month concurrently and runs the pure
// calculator. ctx should already carry the read deadline.
func (s *service) calculateFor(
	ctx context.Context,
	companyID string,
	emp employee.Employee,
	period Period,
	overrides Overrides,
) (CalculationResult, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("employee_id", emp.ID.String()),
		zap.String("month", period.String()),
	)

	if emp.PayType != employee.PayTypeMonthly && emp.PayType != employee.PayTypeHourly {
		return CalculationResult{}, payrollerrors.ErrUnsupportedPayType
	}

	var (
		configRows []salaryconfig.SalaryConfig
		attRows    []attendance.Attendance
		leaveRows  []leave.LeaveRequest
		holidays   []holiday.Holiday
	)
	employeeID := emp.ID.String()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(recoverRead(func() error {
		var err error
		configRows, err = s.configs.GetSalaryConfigs(gctx, companyID, emp.PayType)
		return err
	}))
	g.Go(recoverRead(func() error {
		var err error
		attRows, err = s.attendance.FindByEmployeeAndRange(gctx, companyID, employeeID, period.Start(), period.End())
		return err
	}))
	g.Go(recoverRead(func() error {
		var err error
		leaveRows, err = s.leaves.FindApprovedByEmployeeAndRange(gctx, companyID, employeeID, period.Start(), period.LastDay())
		return err
	}))
	g.Go(recoverRead(func() error {
		var err error
		holidays, err = s.holidays.FindAllByCompany(gctx, companyID)
		return err
	}))
	if err := g.Wait(); err != nil {
		log.Error("load payroll inputs failed", zap.Error(err))
		return CalculationResult{}, mapReadError(err)
	}

	input := CalculationInput{
		Employee:   emp,
		Period:     period,
		Attendance: attRows,
		Leaves:     leaveRows,
		Holidays:   holidays,
		Overrides:  overrides,
	}

	var err error
	switch emp.PayType {
	case employee.PayTypeMonthly:
		input.Monthly, err = salaryconfig.LoadMonthly(configRows)
	case employee.PayTypeHourly:
		input.Hourly, err = salaryconfig.LoadHourly(configRows)
	}
	if err != nil {
		log.Error("salary config is invalid", zap.Error(err))
		return CalculationResult{}, err
	}

	result, err := Calculate(input)
	if err != nil {
		return CalculationResult{}, err
	}

	if result.Monthly != nil && len(result.Monthly.OverlapDates) > 0 {
		log.Warn("attendance and paid leave overlap, both are paid",
			zap.Strings("dates", result.Monthly.OverlapDates),
		)
	}

	log.Debug("payroll calculated",
		zap.String("gross", result.GrossSalary.String()),
		zap.String("net", result.NetSalary.String()),
	)
	return result, nil
}

// recoverRead turns a panic in a concurrent read into an error so the
// calling goroutine can report it.
func recoverRead(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("read panicked: %v", r)
			}
		}()
		return fn()
	}
}

func (s *service) CalculateBulkPayroll(
	ctx context.Context,
	companyID, month string,
	branchID *string,
) ([]BulkItem, error) {
	period, err := ParseMonth(month, s.opts.Location)
	if err != nil {
		return nil, err
	}
	if branchID != nil && *branchID != "" {
		if _, err := uuid.Parse(*branchID); err != nil {
			return nil, payrollerrors.ErrInvalidBranchID
		}
	}

	log := contextutil.GetLogger(ctx, s.logger)

	emps, err := s.employees.FindActiveByCompany(ctx, companyID, branchID)
	if err != nil {
		log.Error("list active employees failed", zap.Error(err))
		return nil, mapReadError(err)
	}

	items := make([]BulkItem, len(emps))
	var g errgroup.Group
	g.SetLimit(s.opts.BulkConcurrency)

	for i := range emps {
		i, emp := i, emps[i]
		items[i] = BulkItem{EmployeeID: emp.ID.String(), EmployeeName: emp.FullName}

		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					items[i].OK = false
					items[i].Result = nil
					items[i].Error = fmt.Sprintf("calculation panicked: %v", r)
					log.Error("payroll calculation panicked",
						zap.String("employee_id", emp.ID.String()),
						zap.Any("panic", r),
					)
				}
			}()

			readCtx, cancel := context.WithTimeout(ctx, s.opts.ReadTimeout)
			defer cancel()

			result, err := s.calculateFor(readCtx, companyID, emp, period, Overrides{})
			if err != nil {
				items[i].Error = err.Error()
				log.Warn("payroll calculation failed",
					zap.String("employee_id", emp.ID.String()),
					zap.Error(err),
				)
				return nil
			}
			items[i].OK = true
			items[i].Result = &result
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, it := range items {
		if !it.OK {
			failed++
		}
	}
	log.Info("bulk payroll calculated",
		zap.String("month", period.String()),
		zap.Int("employees", len(items)),
		zap.Int("failed", failed),
	)

	return items, nil
}

func (s *service) SavePayrollCalculation(
	ctx context.Context,
	companyID, actorID string,
	result CalculationResult,
) (MonthlySalaryResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return MonthlySalaryResponse{}, payrollerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return MonthlySalaryResponse{}, payrollerrors.ErrInvalidActorID
	}
	if result.CompanyID.String() != companyID {
		return MonthlySalaryResponse{}, payrollerrors.ErrInvalidCompanyID
	}

	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MonthlySalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := newMonthlySalary(result, actorUUID)

	existing, err := qtx.FindByEmployeeAndMonth(ctx, companyID, result.EmployeeID.String(), result.Month)
	switch {
	case err == nil && existing != nil:
		if existing.IsFinalized {
			return MonthlySalaryResponse{}, payrollerrors.ErrPayrollFinalized
		}
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return MonthlySalaryResponse{}, mapRepositoryError(err)
	}

	affected, err := qtx.Upsert(ctx, &row)
	if err != nil {
		return MonthlySalaryResponse{}, mapRepositoryError(err)
	}
	if affected == 0 {
		// finalized between the check and the write
		return MonthlySalaryResponse{}, payrollerrors.ErrPayrollFinalized
	}

	if err := tx.Commit(); err != nil {
		return MonthlySalaryResponse{}, err
	}

	log.Info("payroll saved",
		zap.String("employee_id", result.EmployeeID.String()),
		zap.String("month", result.Month),
	)
	return mapToResponse(row), nil
}

func (s *service) CalculateAndSave(
	ctx context.Context,
	companyID, actorID string,
	req CalculatePayrollRequest,
) (MonthlySalaryResponse, error) {
	result, err := s.CalculateEmployeePayroll(ctx, companyID, req.EmployeeID, req.Month, req.Overrides)
	if err != nil {
		return MonthlySalaryResponse{}, err
	}
	return s.SavePayrollCalculation(ctx, companyID, actorID, result)
}

func (s *service) CalculateAndSaveBulk(
	ctx context.Context,
	companyID, actorID, month string,
	branchID *string,
) ([]BulkItem, error) {
	items, err := s.CalculateBulkPayroll(ctx, companyID, month, branchID)
	if err != nil {
		return nil, err
	}

	log := contextutil.GetLogger(ctx, s.logger)
	for i := range items {
		if !items[i].OK {
			continue
		}
		if _, err := s.SavePayrollCalculation(ctx, companyID, actorID, *items[i].Result); err != nil {
			items[i].OK = false
			items[i].Error = err.Error()
			log.Warn("save bulk payroll item failed",
				zap.String("employee_id", items[i].EmployeeID),
				zap.Error(err),
			)
		}
	}
	return items, nil
}

func (s *service) FinalizePayroll(ctx context.Context, companyID string, actor Actor, req FinalizePayrollRequest) (FinalizeResponse, error) {
	return s.setFinalized(ctx, companyID, actor, req, true)
}

func (s *service) UnfinalizePayroll(ctx context.Context, companyID string, actor Actor, req FinalizePayrollRequest) (FinalizeResponse, error) {
	return s.setFinalized(ctx, companyID, actor, req, false)
}

func (s *service) setFinalized(
	ctx context.Context,
	companyID string,
	actor Actor,
	req FinalizePayrollRequest,
	finalized bool,
) (FinalizeResponse, error) {
	period, err := ParseMonth(req.Month, s.opts.Location)
	if err != nil {
		return FinalizeResponse{}, err
	}
	if len(req.EmployeeIDs) == 0 {
		return FinalizeResponse{}, payrollerrors.ErrEmptyEmployeeIDs
	}
	for _, id := range req.EmployeeIDs {
		if _, err := uuid.Parse(id); err != nil {
			return FinalizeResponse{}, payrollerrors.ErrInvalidEmployeeID
		}
	}
	actorUUID, err := uuid.Parse(actor.ID)
	if err != nil {
		return FinalizeResponse{}, payrollerrors.ErrInvalidActorID
	}

	stamp := FinalizeStamp{Finalized: finalized}
	eventType := events.PayrollUnfinalizedEventType
	action := "PAYROLL_UNFINALIZED"
	if finalized {
		now := time.Now().UTC()
		stamp.At = &now
		stamp.By = &actorUUID
		if actor.Name != "" {
			name := actor.Name
			stamp.ByName = &name
		}
		eventType = events.PayrollFinalizedEventType
		action = "PAYROLL_FINALIZED"
	}

	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FinalizeResponse{}, err
	}
	defer tx.Rollback()

	affected, err := s.repo.WithTx(tx).SetFinalized(ctx, companyID, period.String(), req.EmployeeIDs, stamp)
	if err != nil {
		return FinalizeResponse{}, mapRepositoryError(err)
	}

	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		aggregateTypePayroll,
		companyID,
		eventType,
		events.PayrollLifecycleTopic,
		events.PayrollLifecycleEvent{
			EventType:   eventType,
			CompanyID:   companyID,
			Month:       period.String(),
			EmployeeIDs: req.EmployeeIDs,
			Affected:    affected,
			ActorID:     actor.ID,
			ActorName:   actor.Name,
			OccurredAt:  time.Now().UTC(),
		},
	)
	if err != nil {
		return FinalizeResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return FinalizeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return FinalizeResponse{}, err
	}

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  action,
			Message: fmt.Sprintf("payroll %s for %d of %d employees", eventType, affected, len(req.EmployeeIDs)),
			Meta: map[string]any{
				"company_id":   companyID,
				"month":        period.String(),
				"employee_ids": req.EmployeeIDs,
				"actor_id":     actor.ID,
			},
		})
	}
	log.Info("payroll finalize state changed",
		zap.String("month", period.String()),
		zap.Bool("finalized", finalized),
		zap.Int64("affected", affected),
	)

	return FinalizeResponse{
		Month:     period.String(),
		Requested: len(req.EmployeeIDs),
		Updated:   affected,
		Finalized: finalized,
	}, nil
}

func (s *service) RequestBulkPayroll(
	ctx context.Context,
	companyID, actorID string,
	req BulkCalculateRequest,
) (BulkRequestResponse, error) {
	period, err := ParseMonth(req.Month, s.opts.Location)
	if err != nil {
		return BulkRequestResponse{}, err
	}
	if _, err := uuid.Parse(actorID); err != nil {
		return BulkRequestResponse{}, payrollerrors.ErrInvalidActorID
	}
	if req.BranchID != nil && *req.BranchID != "" {
		if _, err := uuid.Parse(*req.BranchID); err != nil {
			return BulkRequestResponse{}, payrollerrors.ErrInvalidBranchID
		}
	}

	requestID := uuid.NewString()
	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		aggregateTypePayroll,
		companyID,
		events.PayrollBulkRequestedEventType,
		events.PayrollBulkRequestedTopic,
		events.PayrollBulkRequestedEvent{
			EventType:   events.PayrollBulkRequestedEventType,
			RequestID:   requestID,
			CompanyID:   companyID,
			Month:       period.String(),
			BranchID:    req.BranchID,
			RequestedBy: actorID,
			OccurredAt:  time.Now().UTC(),
		},
	)
	if err != nil {
		return BulkRequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BulkRequestResponse{}, err
	}
	defer tx.Rollback()

	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return BulkRequestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return BulkRequestResponse{}, err
	}

	return BulkRequestResponse{
		RequestID: requestID,
		Month:     period.String(),
		Status:    "queued",
	}, nil
}

func (s *service) GetMonthlySalary(ctx context.Context, companyID, employeeID, month string) (MonthlySalaryResponse, error) {
	period, err := ParseMonth(month, s.opts.Location)
	if err != nil {
		return MonthlySalaryResponse{}, err
	}

	row, err := s.repo.FindByEmployeeAndMonth(ctx, companyID, employeeID, period.String())
	if err != nil {
		return MonthlySalaryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) ListMonthlySalaries(ctx context.Context, companyID string, req ListMonthlySalariesRequest) ([]MonthlySalaryResponse, error) {
	period, err := ParseMonth(req.Month, s.opts.Location)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAllByMonth(ctx, companyID, period.String(), req.BranchID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GeneratePayslipPDF(ctx context.Context, companyID, employeeID, month string) ([]byte, error) {
	resp, err := s.GetMonthlySalary(ctx, companyID, employeeID, month)
	if err != nil {
		return nil, err
	}
	return buildSimplePayslipPDF(payslipLines(resp))
}
