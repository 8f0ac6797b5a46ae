// dto.go
package dto

import "time"

// ShippingDTO para la dirección de envío y comentario
type ShippingDTO struct {
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Province     string `json:"province"`
	Country      string `json:"country"`
	Comments     string `json:"comments"`
}

// UpdateOrderStatusRequest lo usa el staff desde el panel de seguimiento.
type UpdateOrderStatusRequest struct {
	Status            string     `json:"status" binding:"required"`
	Reason            string     `json:"reason"`
	TrackingNumber    string     `json:"trackingNumber"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
}

// CreateTicketRequest: el staff registra un equipo que entra al taller.
type CreateTicketRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateTicketStatusRequest: cambio de estado con presupuesto/notas opcionales.
type UpdateTicketStatusRequest struct {
	Estado      string   `json:"estado" binding:"required"`
	Quote       *float64 `json:"quote"`
	AdminNotes  string   `json:"adminNotes"`
	AdminImages []string `json:"adminImages"`
}

type AppendCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CheckoutItemDTO es una línea del carrito que va al gateway de pago.
type CheckoutItemDTO struct {
	ItemID   string  `json:"itemId" validate:"required"`
	Kind     string  `json:"kind" validate:"required,oneof=product service course"`
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
	Price    float64 `json:"price" validate:"required,gte=0"`
}

// CreateCheckoutRequest inicia un pago: la validación estructural verifica
// que Amount coincida con la suma de los ítems.
type CreateCheckoutRequest struct {
	Items    []CheckoutItemDTO `json:"items" validate:"required,min=1,dive"`
	Amount   float64           `json:"amount" validate:"required,gte=0"`
	Shipping ShippingDTO       `json:"shipping"`
}

type CreateCheckoutResponse struct {
	PreferenceID string `json:"preferenceId"`
	RedirectURL  string `json:"redirectUrl"`
}

// AchievementRequest para el CRUD de definiciones (solo admin).
type AchievementRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	ConditionType  string `json:"conditionType" binding:"required"`
	ConditionValue int    `json:"conditionValue" binding:"required,min=1"`
	XPReward       int    `json:"xpReward" binding:"required,min=1"`
	Active         bool   `json:"active"`
}

type ClaimAchievementRequest struct {
	AchievementID string `json:"achievementId" binding:"required"`
}
