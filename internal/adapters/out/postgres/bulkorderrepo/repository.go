package bulkorderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBulkOrderRepository implements BulkOrderRepository using GORM.
type GormBulkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBulkOrderRepository creates a new GORM bulk order repository.
func NewGormBulkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormBulkOrderRepository {
	return &GormBulkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bulk order with its line items to the database.
func (r *GormBulkOrderRepository) Add(ctx context.Context, aggregate *bulkorder.BulkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing bulk order with a conditional write: the row is
// touched only while it still carries the version the aggregate was loaded
// with, and a successful write bumps the version. Zero rows affected means
// another writer got there first and surfaces as a state conflict. Line
// items are immutable and never updated.
func (r *GormBulkOrderRepository) Update(ctx context.Context, aggregate *bulkorder.BulkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BulkOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"collaborators":  dto.Collaborators,
			"status":         dto.Status,
			"chef_note":      dto.ChefNote,
			"decline_reason": dto.DeclineReason,
			"cancel_reason":  dto.CancelReason,
			"version":        aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictError(
			fmt.Sprintf("update bulk order at version %d", aggregate.Version()),
			"row missing or version changed")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bulk order by ID, including its line items.
func (r *GormBulkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*bulkorder.BulkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BulkOrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bulk order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingCreatedBefore retrieves pending orders older than the cutoff,
// oldest first. Used by the stale order sweep.
func (r *GormBulkOrderRepository) GetAllPendingCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*bulkorder.BulkOrder, error) {
	var dtos []BulkOrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status = ? AND created_at < ?", bulkorder.Pending.String(), cutoff).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*bulkorder.BulkOrder, 0, len(dtos))
	for _, dto := range dtos {
		order, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, order)
	}

	return orders, nil
}
