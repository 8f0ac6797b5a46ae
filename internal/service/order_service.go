// order_service.go
package service

import (
	"context"
	"errors"
	"time"

	"aventura-gamer-service/internal/model"
	"aventura-gamer-service/internal/status"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Interfaz que debe implementar repository
type OrderRepository interface {
	Save(ctx context.Context, o *model.Order) error
	FindByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	UpdateStatus(ctx context.Context, orderID, newStatus string, record model.StatusRecord, extra bson.M) error
	FindAll(ctx context.Context) ([]*model.Order, error)
	FindByStatus(ctx context.Context, st string) ([]*model.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]*model.Order, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
}

// OrderNotifier recibe la señal gruesa "algo cambió en esta orden". La
// implementan el publisher de Rabbit y el hub de websockets; el payload no
// garantiza más que el id y el estado nuevo, el cliente refetchea.
type OrderNotifier interface {
	OrderChanged(orderID, userID, newStatus string)
}

// Errores de negocio exportados (los usa el controller)
var (
	ErrForbidden = errors.New("forbidden")
)

type OrderService struct {
	repo      OrderRepository
	notifiers []OrderNotifier
}

func NewOrderService(r OrderRepository, notifiers ...OrderNotifier) *OrderService {
	return &OrderService{repo: r, notifiers: notifiers}
}

func (s *OrderService) notify(orderID, userID, newStatus string) {
	for _, n := range s.notifiers {
		n.OrderChanged(orderID, userID, newStatus)
	}
}

// CreateOrder registra una orden nueva en pending. La invoca el flujo de
// pagos cuando el gateway aprueba; quantity y total ya vienen validados.
func (s *OrderService) CreateOrder(ctx context.Context, userID, itemID, itemKind, itemName string, quantity int, total float64, shipping *model.Shipping) (*model.Order, error) {
	o := &model.Order{
		OrderID:         uuid.NewString(),
		UserID:          userID,
		ItemID:          itemID,
		ItemKind:        itemKind,
		ItemName:        itemName,
		Quantity:        quantity,
		Total:           total,
		ShippingStatus:  status.StatusPending,
		ShippingAddress: shipping,
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	s.notify(o.OrderID, o.UserID, o.ShippingStatus)
	return o, nil
}

// Getters
func (s *OrderService) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

func (s *OrderService) GetAll(ctx context.Context) ([]*model.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *OrderService) GetByStatus(ctx context.Context, st string) ([]*model.Order, error) {
	return s.repo.FindByStatus(ctx, st)
}

func (s *OrderService) GetByUserID(ctx context.Context, userID string) ([]*model.Order, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// GetMinePartitioned devuelve las órdenes del usuario separadas en activas
// y completadas, preservando el orden más-reciente-primero del repo.
func (s *OrderService) GetMinePartitioned(ctx context.Context, userID string) (active, completed []*model.Order, err error) {
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	active, completed = status.Partition(orders, func(o *model.Order) string { return o.ShippingStatus })
	return active, completed, nil
}

// UpdateStatus valida y realiza la transición entre estados según las reglas
// de negocio:
//   - el staff puede avanzar la orden por la secuencia canónica o cancelarla
//   - el dueño solo puede cancelar mientras no fue despachada
//   - de un estado final no se sale
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, newStatus, reason, actorID string, isStaff bool, trackingNumber string, estimatedDelivery *time.Time) error {
	ord, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	current := ord.ShippingStatus

	// Mismo estado: no hacemos nada
	if current == newStatus {
		return nil
	}

	if err := status.ValidateTransition(current, newStatus); err != nil {
		return err
	}

	isOwner := ord.UserID == actorID
	if !isStaff && !isOwner {
		return ErrForbidden
	}
	if !isStaff {
		// El dueño solo cancela, y solo antes del despacho
		if newStatus != status.StatusCancelled {
			return ErrForbidden
		}
		if current != status.StatusPending && current != status.StatusProcessing {
			return ErrForbidden
		}
	}

	now := time.Now().UTC()
	extra := bson.M{}
	if trackingNumber != "" {
		extra["tracking_number"] = trackingNumber
	}
	if estimatedDelivery != nil {
		extra["estimated_delivery"] = *estimatedDelivery
	}
	// shipped_at se estampa al entrar a shipped o posterior; delivered_at
	// solo con delivered (invariantes del modelo)
	if ord.ShippedAt == nil && status.ComputeProgress(newStatus).StepIndex >= 2 {
		extra["shipped_at"] = now
	}
	if newStatus == status.StatusDelivered {
		extra["delivered_at"] = now
	}

	record := model.StatusRecord{
		Status:    newStatus,
		Reason:    reason,
		UserID:    actorID,
		Timestamp: now,
	}

	if err := s.repo.UpdateStatus(ctx, orderID, newStatus, record, extra); err != nil {
		return err
	}

	s.notify(orderID, ord.UserID, newStatus)
	return nil
}
