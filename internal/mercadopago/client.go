// client.go
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client habla con la API REST de Mercado Pago. Solo cubre lo que el
// checkout necesita: crear una preferencia y consultar un pago.
type Client struct {
	baseURL     string
	accessToken string
	http        *http.Client
}

func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type PreferenceItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type PreferenceRequest struct {
	Items             []PreferenceItem `json:"items"`
	ExternalReference string           `json:"external_reference"`
	BackURLs          BackURLs         `json:"back_urls"`
	AutoReturn        string           `json:"auto_return"`
}

type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

type Payment struct {
	ID                int64   `json:"id"`
	Status            string  `json:"status"` // approved | pending | rejected | ...
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
}

// CreatePreference crea la preferencia de checkout y devuelve la URL de
// redirección. idempotencyKey viaja en el header X-Idempotency-Key.
func (c *Client) CreatePreference(ctx context.Context, pref PreferenceRequest, idempotencyKey string) (*Preference, error) {
	body, err := json.Marshal(pref)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/preferences", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("X-Idempotency-Key", idempotencyKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("mercadopago error (%d): %s", resp.StatusCode, string(raw))
	}

	var out Preference
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("respuesta de mercadopago inválida: %w", err)
	}
	if out.InitPoint == "" {
		return nil, fmt.Errorf("mercadopago devolvió una URL de pago vacía")
	}
	return &out, nil
}

// GetPayment consulta un pago por id (lo usa el handler del webhook, que
// recibe solo el id y debe buscar el resto).
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payments/"+paymentID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mercadopago error (%d): %s", resp.StatusCode, string(raw))
	}

	var out Payment
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("respuesta de mercadopago inválida: %w", err)
	}
	return &out, nil
}
