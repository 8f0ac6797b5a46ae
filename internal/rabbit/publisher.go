package rabbit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// OrderChangedPublisher emite la señal gruesa "algo cambió" a un exchange
// fanout. Los clientes interesados refetchean; el payload no promete más
// que el id y el estado nuevo.
type OrderChangedPublisher struct {
	ch *amqp091.Channel
}

func NewOrderChangedPublisher(ch *amqp091.Channel) (*OrderChangedPublisher, error) {
	err := ch.ExchangeDeclare(
		"order_status_changed",
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &OrderChangedPublisher{ch: ch}, nil
}

type orderChangedMessage struct {
	OrderID   string    `json:"orderId"`
	UserID    string    `json:"userId"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderChanged implementa service.OrderNotifier.
func (p *OrderChangedPublisher) OrderChanged(orderID, userID, newStatus string) {
	body, err := json.Marshal(orderChangedMessage{
		OrderID:   orderID,
		UserID:    userID,
		Status:    newStatus,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.ch.PublishWithContext(ctx,
		"order_status_changed",
		"", // fanout ignora routing key
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Println("❌ Error publicando order_status_changed:", err)
	}
}
