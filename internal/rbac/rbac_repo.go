package rbac

import "gorm.io/gorm"

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	// GetEmployeeRoles lists role grants in the company; employeeID narrows
	// to one employee when non-empty.
	GetEmployeeRoles(companyID, employeeID string) ([]EmployeeRoleRow, error)
	// GetRolePermissions lists permissions of the given roles, or of every
	// company role when roleIDs is nil.
	GetRolePermissions(companyID string, roleIDs []string) ([]RolePermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type EmployeeRoleRow struct {
	EmployeeID string
	RoleID     string
}

// RolePermissionRow is one granted permission, e.g. payroll:finalize.
type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}

func (r *repository) GetEmployeeRoles(companyID, employeeID string) ([]EmployeeRoleRow, error) {
	var result []EmployeeRoleRow

	q := r.db.
		Table("employee_roles er").
		Select("er.employee_id, er.role_id").
		Joins("JOIN roles ON roles.id = er.role_id").
		Where("roles.company_id = ?", companyID)
	if employeeID != "" {
		q = q.Where("er.employee_id = ?", employeeID)
	}

	err := q.Scan(&result).Error
	return result, err
}

func (r *repository) GetRolePermissions(companyID string, roleIDs []string) ([]RolePermissionRow, error) {
	var result []RolePermissionRow
	if roleIDs != nil && len(roleIDs) == 0 {
		return result, nil
	}

	q := r.db.
		Table("role_permissions rp").
		Select("rp.role_id, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = rp.role_id").
		Joins("JOIN permissions ON permissions.id = rp.permission_id").
		Where("roles.company_id = ?", companyID)
	if roleIDs != nil {
		q = q.Where("rp.role_id IN ?", roleIDs)
	}

	err := q.Scan(&result).Error
	return result, err
}
