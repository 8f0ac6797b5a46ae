// payment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"aventura-gamer-service/internal/dto"
	"aventura-gamer-service/internal/mercadopago"
	"aventura-gamer-service/internal/model"
	"aventura-gamer-service/internal/repository"

	"github.com/google/uuid"
)

// PaymentGateway es la frontera con el proveedor de pagos.
type PaymentGateway interface {
	CreatePreference(ctx context.Context, pref mercadopago.PreferenceRequest, idempotencyKey string) (*mercadopago.Preference, error)
	GetPayment(ctx context.Context, paymentID string) (*mercadopago.Payment, error)
}

type CheckoutRepository interface {
	Save(ctx context.Context, c *model.Checkout) error
	FindByCheckoutID(ctx context.Context, checkoutID string) (*model.Checkout, error)
}

type PaymentRepository interface {
	InsertIfAbsent(ctx context.Context, rec model.PaymentRecord) error
}

type PaymentService struct {
	gateway       PaymentGateway
	checkouts     CheckoutRepository
	payments      PaymentRepository
	orders        *OrderService
	gamification  *GamificationService
	returnURL     string
	xpPerPurchase int
}

func NewPaymentService(gateway PaymentGateway, checkouts CheckoutRepository, payments PaymentRepository, orders *OrderService, gamification *GamificationService, returnURL string, xpPerPurchase int) *PaymentService {
	return &PaymentService{
		gateway:       gateway,
		checkouts:     checkouts,
		payments:      payments,
		orders:        orders,
		gamification:  gamification,
		returnURL:     returnURL,
		xpPerPurchase: xpPerPurchase,
	}
}

// CreateCheckout persiste el carrito pendiente y crea la preferencia en el
// gateway. El external reference es el id del checkout: el webhook lo usa
// para recuperar qué se compró.
func (s *PaymentService) CreateCheckout(ctx context.Context, userID string, req dto.CreateCheckoutRequest) (*dto.CreateCheckoutResponse, error) {
	checkout := &model.Checkout{
		CheckoutID: uuid.NewString(),
		UserID:     userID,
		Amount:     req.Amount,
		CreatedAt:  time.Now().UTC(),
	}
	for _, it := range req.Items {
		checkout.Items = append(checkout.Items, model.CheckoutItem{
			ItemID:   it.ItemID,
			Kind:     it.Kind,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	if req.Shipping.AddressLine1 != "" {
		checkout.Shipping = &model.Shipping{
			AddressLine1: req.Shipping.AddressLine1,
			City:         req.Shipping.City,
			PostalCode:   req.Shipping.PostalCode,
			Province:     req.Shipping.Province,
			Country:      req.Shipping.Country,
			Comments:     req.Shipping.Comments,
		}
	}

	if err := s.checkouts.Save(ctx, checkout); err != nil {
		return nil, err
	}

	pref := mercadopago.PreferenceRequest{
		ExternalReference: checkout.CheckoutID,
		AutoReturn:        "approved",
		BackURLs: mercadopago.BackURLs{
			Success: s.returnURL,
			Failure: s.returnURL,
			Pending: s.returnURL,
		},
	}
	for _, it := range checkout.Items {
		pref.Items = append(pref.Items, mercadopago.PreferenceItem{
			ID:        it.ItemID,
			Title:     it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
		})
	}

	created, err := s.gateway.CreatePreference(ctx, pref, checkout.CheckoutID)
	if err != nil {
		return nil, err
	}

	return &dto.CreateCheckoutResponse{
		PreferenceID: created.ID,
		RedirectURL:  created.InitPoint,
	}, nil
}

// HandlePaymentNotification procesa la notificación del gateway. La entrega
// es at-least-once: el registro del pago con clave única vuelve idempotente
// todo el flujo (una sola orden por pago, XP otorgada una sola vez).
func (s *PaymentService) HandlePaymentNotification(ctx context.Context, paymentID string) error {
	payment, err := s.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment.Status != "approved" {
		log.Printf("[Pagos] pago %s con estado %s, se ignora", paymentID, payment.Status)
		return nil
	}

	checkout, err := s.checkouts.FindByCheckoutID(ctx, payment.ExternalReference)
	if err != nil {
		return fmt.Errorf("checkout %s no encontrado para el pago %s: %w", payment.ExternalReference, paymentID, err)
	}

	// Marca de pago procesado: si ya existía, el webhook es un duplicado
	err = s.payments.InsertIfAbsent(ctx, model.PaymentRecord{
		PaymentID:         paymentID,
		ExternalReference: payment.ExternalReference,
		UserID:            checkout.UserID,
		Amount:            payment.TransactionAmount,
		Status:            payment.Status,
		ProcessedAt:       time.Now().UTC(),
	})
	if errors.Is(err, repository.ErrDuplicate) {
		log.Printf("[Pagos] pago %s ya procesado, entrega duplicada ignorada", paymentID)
		return nil
	}
	if err != nil {
		return err
	}

	for _, it := range checkout.Items {
		if _, err := s.orders.CreateOrder(ctx, checkout.UserID, it.ItemID, it.Kind, it.Name, it.Quantity, it.Price*float64(it.Quantity), checkout.Shipping); err != nil {
			return err
		}
	}

	if _, err := s.gamification.AwardPoints(ctx, checkout.UserID, s.xpPerPurchase, "compra aprobada"); err != nil {
		// La orden ya está creada; el error de XP no debe tirar el webhook
		log.Printf("[Pagos] no se pudo otorgar XP al usuario %s: %v", checkout.UserID, err)
	}

	log.Printf("[Pagos] pago %s aprobado, %d orden(es) creadas para %s", paymentID, len(checkout.Items), checkout.UserID)
	return nil
}
