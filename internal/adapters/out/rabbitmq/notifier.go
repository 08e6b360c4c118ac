package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/collab"

	amqp "github.com/rabbitmq/amqp091-go"
)

const notificationsExchange = "notifications_fanout"

// Notifier publishes user-facing notifications to a fanout exchange.
// Publishing is best-effort: failures are logged and swallowed so a broker
// outage never fails a committed command.
type Notifier struct {
	conn   *Connection
	logger *slog.Logger
}

// NewNotifier creates a RabbitMQ-backed notifier.
func NewNotifier(conn *Connection, logger *slog.Logger) *Notifier {
	return &Notifier{
		conn:   conn,
		logger: logger,
	}
}

// orderStatusMessage is the wire form of an order status notification.
type orderStatusMessage struct {
	Kind        string    `json:"kind"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	CustomerID  string    `json:"customer_id"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// collaborationMessage is the wire form of a collaboration notification.
type collaborationMessage struct {
	Kind             string    `json:"kind"`
	RequestID        string    `json:"request_id"`
	BulkOrderID      string    `json:"bulk_order_id"`
	FromChefID       string    `json:"from_chef_id"`
	ToChefID         string    `json:"to_chef_id"`
	Status           string    `json:"status"`
	Message          string    `json:"message"`
	WorkDistribution string    `json:"work_distribution"`
	RejectionReason  string    `json:"rejection_reason,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// NotifyOrderStatusChanged publishes the order's new status for the customer.
func (n *Notifier) NotifyOrderStatusChanged(_ context.Context, order *bulkorder.BulkOrder) {
	msg := orderStatusMessage{
		Kind:        "bulk_order.status_changed",
		OrderID:     order.ID().String(),
		OrderNumber: order.OrderNumber(),
		CustomerID:  order.CustomerID().String(),
		Status:      order.Status().String(),
		OccurredAt:  time.Now().UTC(),
	}
	n.publish(msg, "order_id", msg.OrderID)
}

// NotifyCollaborationRequested publishes a new invitation for the invited chef.
func (n *Notifier) NotifyCollaborationRequested(_ context.Context, request *collab.Request) {
	n.publishCollaboration("collaboration_request.created", request)
}

// NotifyCollaborationAnswered publishes the invited chef's answer for the
// inviting chef.
func (n *Notifier) NotifyCollaborationAnswered(_ context.Context, request *collab.Request) {
	n.publishCollaboration("collaboration_request.answered", request)
}

func (n *Notifier) publishCollaboration(kind string, request *collab.Request) {
	msg := collaborationMessage{
		Kind:             kind,
		RequestID:        request.ID().String(),
		BulkOrderID:      request.BulkOrderID().String(),
		FromChefID:       request.FromChefID().String(),
		ToChefID:         request.ToChefID().String(),
		Status:           request.Status().String(),
		Message:          request.Message(),
		WorkDistribution: request.WorkDistribution(),
		RejectionReason:  request.RejectionReason(),
		OccurredAt:       time.Now().UTC(),
	}
	n.publish(msg, "request_id", msg.RequestID)
}

func (n *Notifier) publish(msg any, idKey, idValue string) {
	if err := n.tryPublish(msg); err != nil {
		n.logger.Error("notification publish failed",
			"error", err, idKey, idValue)
	}
}

func (n *Notifier) tryPublish(msg any) error {
	ch, err := n.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(notificationsExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.Publish(notificationsExchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
