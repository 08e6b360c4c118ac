// Package collabrepo provides data transfer objects and mapping functions
// for collaboration request persistence.
package collabrepo

import (
	"time"

	"catering/internal/core/domain/model/collab"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CollaborationRequestDTO represents the database structure for persisting
// collaboration request aggregates. Deleted requests keep their row; the
// repository filters them out of every lookup.
type CollaborationRequestDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BulkOrderID uuid.UUID `gorm:"type:uuid;index"`
	FromChefID  uuid.UUID `gorm:"type:uuid;index"`
	ToChefID    uuid.UUID `gorm:"type:uuid;index"`

	Message          string
	WorkDistribution string

	Status          string `gorm:"index"`
	RejectionReason string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Version guards conditional updates. Every successful write bumps it.
	Version int
}

// TableName specifies the database table name for collaboration requests.
func (CollaborationRequestDTO) TableName() string {
	return "collaboration_requests"
}

// fromDomain converts a request aggregate to its database representation.
func fromDomain(request *collab.Request) CollaborationRequestDTO {
	return CollaborationRequestDTO{
		ID:               request.ID().Bytes(),
		BulkOrderID:      request.BulkOrderID().Bytes(),
		FromChefID:       request.FromChefID().Bytes(),
		ToChefID:         request.ToChefID().Bytes(),
		Message:          request.Message(),
		WorkDistribution: request.WorkDistribution(),
		Status:           request.Status().String(),
		RejectionReason:  request.RejectionReason(),
		CreatedAt:        request.CreatedAt(),
		Version:          request.Version(),
	}
}

// toDomain converts a database DTO to a request aggregate using RestoreRequest.
func toDomain(dto CollaborationRequestDTO) (*collab.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	bulkOrderID, err := kernel.UUIDFromBytes(dto.BulkOrderID[:])
	if err != nil {
		return nil, err
	}
	fromChefID, err := kernel.UUIDFromBytes(dto.FromChefID[:])
	if err != nil {
		return nil, err
	}
	toChefID, err := kernel.UUIDFromBytes(dto.ToChefID[:])
	if err != nil {
		return nil, err
	}

	status, err := collab.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return collab.RestoreRequest(
		id,
		bulkOrderID,
		fromChefID,
		toChefID,
		dto.Message,
		dto.WorkDistribution,
		status,
		dto.RejectionReason,
		dto.CreatedAt,
		dto.Version,
	)
}
