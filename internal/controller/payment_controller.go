package controller

import (
	"net/http"

	"aventura-gamer-service/internal/dto"
	"aventura-gamer-service/internal/service"
	"aventura-gamer-service/internal/validation"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

type PaymentController struct {
	Service   *service.PaymentService
	validator *validatorv10.Validate
}

func NewPaymentController(s *service.PaymentService) *PaymentController {
	return &PaymentController{Service: s, validator: validation.New()}
}

// POST /checkout — crea la preferencia y devuelve la URL de redirección
func (ctl *PaymentController) CreateCheckout(c *gin.Context) {
	var req dto.CreateCheckoutRequest
	if err := validation.BindAndValidate(c, &req, ctl.validator); err != nil {
		return
	}

	res, err := ctl.Service.CreateCheckout(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// POST /payments/webhook — notificación del gateway. Puede llegar repetida:
// el servicio es idempotente por id de pago, así que siempre respondemos 200
// para que el gateway no reintente eternamente.
func (ctl *PaymentController) Webhook(c *gin.Context) {
	var notif struct {
		Type string `json:"type"`
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := c.ShouldBindJSON(&notif); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if notif.Type != "payment" || notif.Data.ID == "" {
		c.JSON(http.StatusOK, gin.H{"message": "ignored"})
		return
	}

	if err := ctl.Service.HandlePaymentNotification(c.Request.Context(), notif.Data.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "processed"})
}
