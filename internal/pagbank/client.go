package pagbank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls the PagBank orders API. Non-2xx answers become *APIError
// carrying the HTTP status.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pagbank API error: %d", e.Status)
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	TaxID string `json:"tax_id"`
}

type Item struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
}

type Amount struct {
	Value int64 `json:"value"`
}

type QRCode struct {
	ID     string `json:"id,omitempty"`
	Amount Amount `json:"amount"`
	Text   string `json:"text,omitempty"`
	Links  []Link `json:"links,omitempty"`
}

type Link struct {
	Rel   string `json:"rel"`
	Href  string `json:"href"`
	Media string `json:"media,omitempty"`
}

type Charge struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount Amount `json:"amount"`
}

type OrderRequest struct {
	ReferenceID      string   `json:"reference_id"`
	Customer         Customer `json:"customer"`
	Items            []Item   `json:"items"`
	QRCodes          []QRCode `json:"qr_codes"`
	NotificationURLs []string `json:"notification_urls"`
}

type Order struct {
	ID          string   `json:"id"`
	ReferenceID string   `json:"reference_id"`
	Customer    Customer `json:"customer"`
	QRCodes     []QRCode `json:"qr_codes"`
	Charges     []Charge `json:"charges"`
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	return c.decodeOrder(httpReq)
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders/"+orderID, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	return c.decodeOrder(httpReq)
}

func (c *Client) decodeOrder(req *http.Request) (*Order, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}
