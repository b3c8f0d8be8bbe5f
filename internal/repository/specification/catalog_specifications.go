package specification

import (
	"strings"

	"gorm.io/gorm"
)

// ProblemSearchQuery matches problems by id, name or any description (case-insensitive).
// An exact id match sorts first.
type ProblemSearchQuery struct {
	Query string
}

func (s ProblemSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.
		Where("id ILIKE ? OR name ILIKE ? OR descriptions::text ILIKE ?", pattern, pattern, pattern).
		Order(gorm.Expr("CASE WHEN UPPER(id) = ? THEN 0 ELSE 1 END", strings.ToUpper(s.Query))).
		Order("id ASC")
}

// ByDealership filters rows owned by one dealership
type ByDealership struct {
	DealershipID string
}

func (s ByDealership) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("dealership_id = ?", s.DealershipID)
}

// ByPartIDs filters stock lines or rules by catalog part id
type ByPartIDs struct {
	PartIDs []string
}

func (s ByPartIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("part_id IN ?", s.PartIDs)
}

// ByCustomer filters rows owned by one customer
type ByCustomer struct {
	CustomerID string
}

func (s ByCustomer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerID)
}
