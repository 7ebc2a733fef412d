package specification

import "gorm.io/gorm"

// Specification is a composable query constraint. Repositories apply every
// specification they receive before executing the query.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
