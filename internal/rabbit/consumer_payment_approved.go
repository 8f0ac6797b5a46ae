package rabbit

import (
	"context"
	"encoding/json"
	"log"

	"aventura-gamer-service/internal/service"
)

type PaymentApprovedConsumer struct {
	Service *service.PaymentService
}

func NewPaymentApprovedConsumer(s *service.PaymentService) *PaymentApprovedConsumer {
	return &PaymentApprovedConsumer{Service: s}
}

// El mensaje trae solo el id del pago; el resto se consulta al gateway.
// La entrega es at-least-once: el servicio de pagos es idempotente por id.
type PaymentApprovedMessage struct {
	CorrelationID string `json:"correlation_id"`
	Message       struct {
		PaymentID string `json:"paymentId"`
	} `json:"message"`
}

func (c *PaymentApprovedConsumer) Handle(msg []byte) error {

	log.Println("[Rabbit] Evento recibido: payment_approved")

	var event PaymentApprovedMessage
	if err := json.Unmarshal(msg, &event); err != nil {
		log.Println("Error parseando mensaje:", err)
		return err
	}

	if err := c.Service.HandlePaymentNotification(context.Background(), event.Message.PaymentID); err != nil {
		log.Println("❌ Error procesando pago:", err)
		return err
	}

	log.Println("✔ Pago procesado:", event.Message.PaymentID)
	return nil
}
