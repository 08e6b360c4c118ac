package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catering/internal/core/domain/model/bulkorder"

	amqp "github.com/rabbitmq/amqp091-go"
)

const dispatchExchange = "delivery_dispatch_topic"

// DeliveryDispatch hands ready orders to the delivery subsystem over a topic
// exchange. Unlike notifications, publish failures propagate to the caller.
type DeliveryDispatch struct {
	conn *Connection
}

// NewDeliveryDispatch creates a RabbitMQ-backed dispatch publisher.
func NewDeliveryDispatch(conn *Connection) *DeliveryDispatch {
	return &DeliveryDispatch{conn: conn}
}

// dispatchMessage is the wire form of a dispatch request.
type dispatchMessage struct {
	OrderID          string    `json:"order_id"`
	OrderNumber      string    `json:"order_number"`
	CustomerID       string    `json:"customer_id"`
	PrimaryChefID    string    `json:"primary_chef_id"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	RequestedAt      time.Time `json:"requested_at"`
}

// Dispatch publishes a courier assignment request for the order.
func (d *DeliveryDispatch) Dispatch(_ context.Context, order *bulkorder.BulkOrder) error {
	ch, err := d.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(dispatchExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(dispatchMessage{
		OrderID:          order.ID().String(),
		OrderNumber:      order.OrderNumber(),
		CustomerID:       order.CustomerID().String(),
		PrimaryChefID:    order.PrimaryChefID().String(),
		TotalAmountCents: order.TotalAmountCents(),
		RequestedAt:      time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	routingKey := fmt.Sprintf("dispatch.%s", order.OrderType())

	err = ch.Publish(dispatchExchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
