// Package chefdir owns the chef directory table. Chefs have no lifecycle in
// this service; the table backs the availability read model and is populated
// out of band (registration lives in the accounts service).
package chefdir

import (
	"time"

	"github.com/google/uuid"
)

// ChefDTO is one chef directory row.
type ChefDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for chef directory entries.
func (ChefDTO) TableName() string {
	return "chefs"
}
