package collabrepo

import (
	"context"
	"errors"
	"fmt"

	"catering/internal/core/domain/model/collab"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCollaborationRequestRepository implements CollaborationRequestRepository using GORM.
type GormCollaborationRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCollaborationRequestRepository creates a new GORM collaboration request repository.
func NewGormCollaborationRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormCollaborationRequestRepository {
	return &GormCollaborationRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// EnsurePendingPairIndex creates the partial unique index that enforces at
// most one pending request per (bulk_order_id, to_chef_id) pair. The handler
// checks the pair before inserting, but only this index holds under
// concurrent inserts. Run after AutoMigrate.
func EnsurePendingPairIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_pending_request_per_order_chef
		ON collaboration_requests (bulk_order_id, to_chef_id)
		WHERE status = 'pending'
	`).Error
}

// Add saves a new collaboration request to the database. A unique violation
// on the pending-pair index surfaces as a state conflict: another invitation
// for the same chef and order won the race.
func (r *GormCollaborationRequestRepository) Add(ctx context.Context, aggregate *collab.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStateConflictErrorWithCause(
				"create collaboration request", collab.Pending.String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing request with a conditional write keyed on the
// loaded version. Zero rows affected surfaces as a state conflict. Deletion
// goes through here too: the row stays, only its status changes.
func (r *GormCollaborationRequestRepository) Update(ctx context.Context, aggregate *collab.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CollaborationRequestDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"status":           dto.Status,
			"rejection_reason": dto.RejectionReason,
			"version":          aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictError(
			fmt.Sprintf("update collaboration request at version %d", aggregate.Version()),
			"row missing or version changed")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a request by ID. Deleted requests are reported as not found.
func (r *GormCollaborationRequestRepository) Get(ctx context.Context, id kernel.UUID) (*collab.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CollaborationRequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND status != ?", id.Bytes(), collab.Deleted.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("collaboration request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByOrderAndChef retrieves the pending request for the given
// (bulk order, target chef) pair. Not found means the pair is free for a
// new invitation.
func (r *GormCollaborationRequestRepository) GetPendingByOrderAndChef(
	ctx context.Context,
	bulkOrderID, toChefID kernel.UUID,
) (*collab.Request, error) {
	if err := errors.Join(bulkOrderID.Validate(), toChefID.Validate()); err != nil {
		return nil, err
	}

	var dto CollaborationRequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "bulk_order_id = ? AND to_chef_id = ? AND status = ?",
			bulkOrderID.Bytes(), toChefID.Bytes(), collab.Pending.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pending collaboration request",
				bulkOrderID.String()+"/"+toChefID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
