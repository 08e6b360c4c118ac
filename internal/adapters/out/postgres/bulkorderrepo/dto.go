// Package bulkorderrepo provides data transfer objects and mapping functions
// for bulk order persistence. It implements the repository pattern for the
// bulk order aggregate, handling the conversion between domain entities and
// database representations.
package bulkorderrepo

import (
	"time"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BulkOrderDTO represents the database structure for persisting bulk order
// aggregates. The status is stored as its vocabulary word, the collaborator
// chef set as a text[] column, and line items in a child table.
type BulkOrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderNumber   string         `gorm:"uniqueIndex"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;index"`
	PrimaryChefID uuid.UUID      `gorm:"type:uuid;index"`
	Collaborators pq.StringArray `gorm:"type:text[]"`

	Status    string `gorm:"index"`
	OrderType string
	EventDate time.Time

	Items            []BulkOrderItemDTO `gorm:"foreignKey:BulkOrderID;constraint:OnDelete:CASCADE"`
	TotalAmountCents int64

	ChefNote      string
	DeclineReason string
	CancelReason  string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Version guards conditional updates. Every successful write bumps it.
	Version int
}

// TableName specifies the database table name for bulk order entities.
func (BulkOrderDTO) TableName() string {
	return "bulk_orders"
}

// BulkOrderItemDTO represents one order line in the child table.
// Lines are immutable after order placement, so updates never touch them.
type BulkOrderItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	BulkOrderID    uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	Quantity       int
	UnitPriceCents int64
}

// TableName specifies the database table name for order line entities.
func (BulkOrderItemDTO) TableName() string {
	return "bulk_order_items"
}

// fromDomain converts a bulk order aggregate to its database representation.
func fromDomain(order *bulkorder.BulkOrder) BulkOrderDTO {
	collaborators := make(pq.StringArray, 0, len(order.Collaborators()))
	for _, chefID := range order.Collaborators() {
		collaborators = append(collaborators, chefID.String())
	}

	items := order.Items()
	itemDTOs := make([]BulkOrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, BulkOrderItemDTO{
			ID:             uuid.New(),
			BulkOrderID:    order.ID().Bytes(),
			Name:           item.Name(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPriceCents(),
		})
	}

	return BulkOrderDTO{
		ID:               order.ID().Bytes(),
		OrderNumber:      order.OrderNumber(),
		CustomerID:       order.CustomerID().Bytes(),
		PrimaryChefID:    order.PrimaryChefID().Bytes(),
		Collaborators:    collaborators,
		Status:           order.Status().String(),
		OrderType:        order.OrderType().String(),
		EventDate:        order.EventDate(),
		Items:            itemDTOs,
		TotalAmountCents: order.TotalAmountCents(),
		ChefNote:         order.ChefNote(),
		DeclineReason:    order.DeclineReason(),
		CancelReason:     order.CancelReason(),
		CreatedAt:        order.CreatedAt(),
		Version:          order.Version(),
	}
}

// toDomain converts a database DTO to a bulk order aggregate using
// RestoreBulkOrder, re-validating the stored state.
func toDomain(dto BulkOrderDTO) (*bulkorder.BulkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	primaryChefID, err := kernel.UUIDFromBytes(dto.PrimaryChefID[:])
	if err != nil {
		return nil, err
	}

	collaborators := make([]kernel.UUID, 0, len(dto.Collaborators))
	for _, raw := range dto.Collaborators {
		chefID, chefErr := kernel.UUIDFromString(raw)
		if chefErr != nil {
			return nil, chefErr
		}
		collaborators = append(collaborators, chefID)
	}

	status, err := bulkorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	orderType, err := bulkorder.OrderTypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	items := make([]bulkorder.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := bulkorder.NewItem(itemDTO.Name, itemDTO.Quantity, itemDTO.UnitPriceCents)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return bulkorder.RestoreBulkOrder(
		id,
		dto.OrderNumber,
		customerID,
		primaryChefID,
		collaborators,
		status,
		orderType,
		dto.EventDate,
		items,
		dto.ChefNote,
		dto.DeclineReason,
		dto.CancelReason,
		dto.CreatedAt,
		dto.Version,
	)
}
