package payroll

import (
	"context"
	"database/sql"
	"time"

	"onebiz-payroll/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FinalizeStamp is written by a finalize or unfinalize transition. The
// audit fields are nil when unfinalizing.
type FinalizeStamp struct {
	Finalized bool
	At        *time.Time
	By        *uuid.UUID
	ByName    *string
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (*MonthlySalary, error)
	FindAllByMonth(ctx context.Context, companyID, month string, branchID *string) ([]MonthlySalary, error)
	Upsert(ctx context.Context, row *MonthlySalary) (int64, error)
	SetFinalized(ctx context.Context, companyID, month string, employeeIDs []string, stamp FinalizeStamp) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn runs statements on the caller's transaction when one is attached.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) withEmployeeName(db *gorm.DB) *gorm.DB {
	return db.
		Select(`"monthly_salaries".*, employees.full_name AS employee_name`).
		Joins(`LEFT JOIN employees ON employees.id = "monthly_salaries".employee_id`)
}

func (r *repository) FindByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (*MonthlySalary, error) {
	var row MonthlySalary
	err := r.withEmployeeName(r.conn(ctx)).
		Scopes(tenant.ScopeTable(monthlySalariesTable, companyID)).
		Where(`"monthly_salaries".employee_id = ?`, employeeID).
		Where(`"monthly_salaries".month = ?`, month).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindAllByMonth(ctx context.Context, companyID, month string, branchID *string) ([]MonthlySalary, error) {
	var rows []MonthlySalary
	db := r.withEmployeeName(r.conn(ctx)).
		Scopes(tenant.ScopeTable(monthlySalariesTable, companyID)).
		Where(`"monthly_salaries".month = ?`, month)
	if branchID != nil && *branchID != "" {
		db = db.Where(`"monthly_salaries".branch_id = ?`, *branchID)
	}
	err := db.Order("employees.full_name ASC").Find(&rows).Error
	return rows, err
}

// Upsert inserts or overwrites the employee-month row. A finalized row is
// left untouched and reported as zero rows affected.
func (r *repository) Upsert(ctx context.Context, row *MonthlySalary) (int64, error) {
	res := r.conn(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "company_id"},
			{Name: "employee_id"},
			{Name: "month"},
		},
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: `"monthly_salaries"."is_finalized" = ?`, Vars: []any{false}},
		}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(row)
	return res.RowsAffected, res.Error
}

func (r *repository) SetFinalized(ctx context.Context, companyID, month string, employeeIDs []string, stamp FinalizeStamp) (int64, error) {
	res := r.conn(ctx).
		Model(&MonthlySalary{}).
		Scopes(tenant.Scope(companyID)).
		Where("month = ?", month).
		Where("employee_id IN ?", employeeIDs).
		Where("is_finalized = ?", !stamp.Finalized).
		Updates(map[string]any{
			"is_finalized":      stamp.Finalized,
			"finalized_at":      stamp.At,
			"finalized_by":      stamp.By,
			"finalized_by_name": stamp.ByName,
			"updated_at":        time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}
