package http

import (
	"time"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/collab"
)

// BulkOrderResponse is the full JSON view of a bulk order, returned by every
// mutation so clients never re-fetch after a state change.
type BulkOrderResponse struct {
	ID               string              `json:"id"`
	OrderNumber      string              `json:"order_number"`
	CustomerID       string              `json:"customer_id"`
	PrimaryChefID    string              `json:"primary_chef_id"`
	Collaborators    []string            `json:"collaborators"`
	Status           string              `json:"status"`
	OrderType        string              `json:"order_type"`
	EventDate        time.Time           `json:"event_date"`
	Items            []BulkOrderItemBody `json:"items"`
	TotalAmountCents int64               `json:"total_amount_cents"`
	ChefNote         string              `json:"chef_note,omitempty"`
	DeclineReason    string              `json:"decline_reason,omitempty"`
	CancelReason     string              `json:"cancel_reason,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	Version          int                 `json:"version"`
}

// BulkOrderItemBody is one line item inside a BulkOrderResponse.
type BulkOrderItemBody struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	TotalCents     int64  `json:"total_cents"`
}

func toBulkOrderResponse(order *bulkorder.BulkOrder) BulkOrderResponse {
	collaborators := make([]string, 0, len(order.Collaborators()))
	for _, id := range order.Collaborators() {
		collaborators = append(collaborators, id.String())
	}

	items := make([]BulkOrderItemBody, 0, len(order.Items()))
	for _, item := range order.Items() {
		items = append(items, BulkOrderItemBody{
			Name:           item.Name(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPriceCents(),
			TotalCents:     item.TotalCents(),
		})
	}

	return BulkOrderResponse{
		ID:               order.ID().String(),
		OrderNumber:      order.OrderNumber(),
		CustomerID:       order.CustomerID().String(),
		PrimaryChefID:    order.PrimaryChefID().String(),
		Collaborators:    collaborators,
		Status:           order.Status().String(),
		OrderType:        order.OrderType().String(),
		EventDate:        order.EventDate(),
		Items:            items,
		TotalAmountCents: order.TotalAmountCents(),
		ChefNote:         order.ChefNote(),
		DeclineReason:    order.DeclineReason(),
		CancelReason:     order.CancelReason(),
		CreatedAt:        order.CreatedAt(),
		Version:          order.Version(),
	}
}

// BulkOrderListItem is one row of the bulk order list view.
type BulkOrderListItem struct {
	ID               string    `json:"id"`
	OrderNumber      string    `json:"order_number"`
	CustomerID       string    `json:"customer_id"`
	PrimaryChefID    string    `json:"primary_chef_id"`
	Status           string    `json:"status"`
	OrderType        string    `json:"order_type"`
	EventDate        time.Time `json:"event_date"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	CreatedAt        time.Time `json:"created_at"`
}

func toBulkOrderListItem(row queries.GetBulkOrdersQueryResponse) BulkOrderListItem {
	return BulkOrderListItem{
		ID:               row.ID.String(),
		OrderNumber:      row.OrderNumber,
		CustomerID:       row.CustomerID.String(),
		PrimaryChefID:    row.PrimaryChefID.String(),
		Status:           row.Status,
		OrderType:        row.OrderType,
		EventDate:        row.EventDate,
		TotalAmountCents: row.TotalAmountCents,
		CreatedAt:        row.CreatedAt,
	}
}

// BulkOrderStatsResponse is the dashboard counters view.
type BulkOrderStatsResponse struct {
	Pending           int   `json:"pending"`
	Accepted          int   `json:"accepted"`
	Collaborating     int   `json:"collaborating"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
}

// CollaborationRequestBody is the full JSON view of a collaboration request.
type CollaborationRequestBody struct {
	ID               string    `json:"id"`
	BulkOrderID      string    `json:"bulk_order_id"`
	FromChefID       string    `json:"from_chef_id"`
	ToChefID         string    `json:"to_chef_id"`
	Message          string    `json:"message"`
	WorkDistribution string    `json:"work_distribution"`
	Status           string    `json:"status"`
	RejectionReason  string    `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	Version          int       `json:"version,omitempty"`
}

func toCollaborationRequestBody(request *collab.Request) CollaborationRequestBody {
	return CollaborationRequestBody{
		ID:               request.ID().String(),
		BulkOrderID:      request.BulkOrderID().String(),
		FromChefID:       request.FromChefID().String(),
		ToChefID:         request.ToChefID().String(),
		Message:          request.Message(),
		WorkDistribution: request.WorkDistribution(),
		Status:           request.Status().String(),
		RejectionReason:  request.RejectionReason(),
		CreatedAt:        request.CreatedAt(),
		Version:          request.Version(),
	}
}

func toCollaborationRequestListItem(row queries.CollaborationRequestResponse) CollaborationRequestBody {
	return CollaborationRequestBody{
		ID:               row.ID.String(),
		BulkOrderID:      row.BulkOrderID.String(),
		FromChefID:       row.FromChefID.String(),
		ToChefID:         row.ToChefID.String(),
		Message:          row.Message,
		WorkDistribution: row.WorkDistribution,
		Status:           row.Status,
		RejectionReason:  row.RejectionReason,
		CreatedAt:        row.CreatedAt,
	}
}

// AvailableChefResponse is one chef directory row with estimated workload.
type AvailableChefResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ActiveOrders int    `json:"active_orders"`
	BusyMinutes  int    `json:"busy_minutes"`
	Availability string `json:"availability"`
}
