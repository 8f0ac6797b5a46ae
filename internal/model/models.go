// models.go
package model

import "time"

// Order es un ítem comprado (producto, servicio o curso) en seguimiento
// de envío. Documento de la colección "orders".
type Order struct {
	OrderID           string         `bson:"order_id" json:"orderId"`
	UserID            string         `bson:"user_id" json:"userId"`
	ItemID            string         `bson:"item_id" json:"itemId"`
	ItemKind          string         `bson:"item_kind" json:"itemKind"` // product | service | course
	ItemName          string         `bson:"item_name" json:"itemName"`
	Quantity          int            `bson:"quantity" json:"quantity"`
	Total             float64        `bson:"total" json:"total"`
	ShippingStatus    string         `bson:"shipping_status" json:"shippingStatus"`
	ShippingAddress   *Shipping      `bson:"shipping_address,omitempty" json:"shippingAddress,omitempty"`
	TrackingNumber    string         `bson:"tracking_number,omitempty" json:"trackingNumber,omitempty"`
	EstimatedDelivery *time.Time     `bson:"estimated_delivery,omitempty" json:"estimatedDelivery,omitempty"`
	ShippedAt         *time.Time     `bson:"shipped_at,omitempty" json:"shippedAt,omitempty"`
	DeliveredAt       *time.Time     `bson:"delivered_at,omitempty" json:"deliveredAt,omitempty"`
	History           []StatusRecord `bson:"history" json:"history"`
	CreatedAt         time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time      `bson:"updated_at" json:"updatedAt"`
}

type Shipping struct {
	AddressLine1 string `bson:"address_line1" json:"addressLine1"`
	City         string `bson:"city" json:"city"`
	PostalCode   string `bson:"postal_code" json:"postalCode"`
	Province     string `bson:"province" json:"province"`
	Country      string `bson:"country" json:"country"`
	Comments     string `bson:"comments" json:"comments"`
}

// StatusRecord es una entrada del historial de estados embebido en la orden.
type StatusRecord struct {
	Status    string    `bson:"status" json:"status"`
	Reason    string    `bson:"reason" json:"reason"`
	UserID    string    `bson:"user" json:"userId"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ServiceTicket es una orden de servicio: un equipo en el taller siguiendo
// la secuencia de reparación manejada por el staff.
type ServiceTicket struct {
	TicketID    string          `bson:"ticket_id" json:"ticketId"`
	UserID      string          `bson:"user_id" json:"userId"`
	Estado      string          `bson:"estado" json:"estado"`
	Description string          `bson:"description" json:"description"`
	Quote       *float64        `bson:"quote,omitempty" json:"quote,omitempty"`
	AdminNotes  string          `bson:"admin_notes,omitempty" json:"adminNotes,omitempty"`
	AdminImages []string        `bson:"admin_images,omitempty" json:"adminImages,omitempty"`
	Comments    []TicketComment `bson:"comments" json:"comments"`
	CreatedAt   time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updatedAt"`
}

// TicketComment es un mensaje del hilo cliente/staff de un ticket.
type TicketComment struct {
	AuthorID   string    `bson:"author_id" json:"authorId"`
	AuthorRole string    `bson:"author_role" json:"authorRole"` // customer | staff
	Text       string    `bson:"text" json:"text"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// UserProfile es el perfil de gamificación, fuente única de verdad para
// puntos y nivel. El nivel se recalcula siempre desde los puntos.
type UserProfile struct {
	UserID      string    `bson:"user_id" json:"userId"`
	DisplayName string    `bson:"display_name" json:"displayName"`
	Role        string    `bson:"role" json:"role"` // customer | staff | admin | superadmin
	Points      int       `bson:"points" json:"points"`
	Level       int       `bson:"level" json:"level"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// Achievement es una definición de logro administrada por el staff.
type Achievement struct {
	AchievementID  string    `bson:"achievement_id" json:"achievementId"`
	Title          string    `bson:"title" json:"title"`
	Description    string    `bson:"description" json:"description"`
	Icon           string    `bson:"icon" json:"icon"`
	ConditionType  string    `bson:"condition_type" json:"conditionType"`
	ConditionValue int       `bson:"condition_value" json:"conditionValue"`
	XPReward       int       `bson:"xp_reward" json:"xpReward"`
	Active         bool      `bson:"active" json:"active"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// AchievementClaim registra un reclamo (user, achievement). La clave única
// compuesta en Mongo garantiza que el reclamo no se duplique.
type AchievementClaim struct {
	UserID        string    `bson:"user_id" json:"userId"`
	AchievementID string    `bson:"achievement_id" json:"achievementId"`
	Reward        int       `bson:"reward" json:"reward"`
	ClaimedAt     time.Time `bson:"claimed_at" json:"claimedAt"`
}

// PaymentRecord marca un pago externo ya procesado. El _id es el id del
// pago en el gateway: el insert falla con clave duplicada si el webhook
// llega dos veces, y eso vuelve idempotente la creación de la orden.
type PaymentRecord struct {
	PaymentID         string    `bson:"_id" json:"paymentId"`
	ExternalReference string    `bson:"external_reference" json:"externalReference"`
	UserID            string    `bson:"user_id" json:"userId"`
	Amount            float64   `bson:"amount" json:"amount"`
	Status            string    `bson:"status" json:"status"`
	ProcessedAt       time.Time `bson:"processed_at" json:"processedAt"`
}

// Checkout es el carrito pendiente de pago, guardado al crear la
// preferencia. El webhook lo recupera por external reference para saber
// qué órdenes crear cuando el pago se aprueba.
type Checkout struct {
	CheckoutID string         `bson:"checkout_id" json:"checkoutId"`
	UserID     string         `bson:"user_id" json:"userId"`
	Items      []CheckoutItem `bson:"items" json:"items"`
	Amount     float64        `bson:"amount" json:"amount"`
	Shipping   *Shipping      `bson:"shipping,omitempty" json:"shipping,omitempty"`
	CreatedAt  time.Time      `bson:"created_at" json:"createdAt"`
}

type CheckoutItem struct {
	ItemID   string  `bson:"item_id" json:"itemId"`
	Kind     string  `bson:"kind" json:"kind"`
	Name     string  `bson:"name" json:"name"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"`
}
