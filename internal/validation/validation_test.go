package validation

import (
	"testing"

	"aventura-gamer-service/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutFixture(amount float64) dto.CreateCheckoutRequest {
	return dto.CreateCheckoutRequest{
		Items: []dto.CheckoutItemDTO{
			{ItemID: "joy-ps5", Kind: "product", Name: "Joystick PS5", Quantity: 2, Price: 45000},
			{ItemID: "limpieza", Kind: "service", Name: "Limpieza de Consola", Quantity: 1, Price: 15000},
		},
		Amount: amount,
	}
}

func TestCheckoutAmountMatchesItems(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(checkoutFixture(105000)))
}

func TestCheckoutAmountMismatch(t *testing.T) {
	v := New()
	err := v.Struct(checkoutFixture(100000))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount_match_items")
}

func TestCheckoutRejectsBadItems(t *testing.T) {
	v := New()

	req := checkoutFixture(105000)
	req.Items[0].Quantity = 0
	assert.Error(t, v.Struct(req), "cantidad cero")

	empty := dto.CreateCheckoutRequest{Amount: 10}
	assert.Error(t, v.Struct(empty), "sin ítems")

	req = checkoutFixture(105000)
	req.Items[1].Kind = "suscripcion"
	assert.Error(t, v.Struct(req), "kind fuera del enum")
}

// El redondeo de floats no debe dar falsos negativos al comparar centavos.
func TestCheckoutAmountFloatRounding(t *testing.T) {
	v := New()
	req := dto.CreateCheckoutRequest{
		Items: []dto.CheckoutItemDTO{
			{ItemID: "a", Kind: "product", Name: "A", Quantity: 3, Price: 0.1},
		},
		Amount: 0.3,
	}
	assert.NoError(t, v.Struct(req))
}
