package tenant

import "gorm.io/gorm"

// Scope limits a query to rows owned by companyID.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// ScopeTable is Scope for queries that join other company-owned tables,
// where an unqualified company_id would be ambiguous.
func ScopeTable(table, companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`"`+table+`".company_id = ?`, companyID)
	}
}
