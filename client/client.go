// Package client is the Go consumer of the cafeteria REST API: a thin
// HTTP client plus the cart and session logic the app builds on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the cafeteria backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the backend at baseURL, e.g.
// "http://192.168.15.200:3000".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// envelope is the response wrapper every endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do performs one request and decodes the enveloped response into out.
// A 204 response carries no body and leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response from %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode data from %s %s: %w", method, path, err)
		}
	}
	return nil
}

// GetMenu fetches the catalog grouped by category.
func (c *Client) GetMenu(ctx context.Context) ([]MenuCategory, error) {
	var menu []MenuCategory
	if err := c.do(ctx, http.MethodGet, "/cardapio", nil, &menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// GetWaiters fetches the staff registry.
func (c *Client) GetWaiters(ctx context.Context) ([]Waiter, error) {
	var waiters []Waiter
	if err := c.do(ctx, http.MethodGet, "/garcons", nil, &waiters); err != nil {
		return nil, err
	}
	return waiters, nil
}

// GetTables fetches every table with its occupancy status.
func (c *Client) GetTables(ctx context.Context) ([]Table, error) {
	var tables []Table
	if err := c.do(ctx, http.MethodGet, "/mesas", nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// GetHistory fetches all past orders, newest first.
func (c *Client) GetHistory(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/historico", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Login authenticates against POST /login.
func (c *Client) Login(ctx context.Context, name, password, kind string) (*LoginResult, error) {
	body := map[string]string{"nome": name, "senha": password, "tipo": kind}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// OccupyTable assigns a waiter (and optionally a customer) to a free table.
func (c *Client) OccupyTable(ctx context.Context, tableID, waiterName, customerName string) (*Table, error) {
	body := map[string]string{"garcomNome": waiterName}
	if customerName != "" {
		body["clienteNome"] = customerName
	}
	var table Table
	if err := c.do(ctx, http.MethodPut, "/mesas/"+tableID+"/ocupar", body, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// ReleaseTable frees an occupied table.
func (c *Client) ReleaseTable(ctx context.Context, tableID string) error {
	return c.do(ctx, http.MethodPut, "/mesas/"+tableID+"/liberar", nil, nil)
}

// AddStock restocks a menu item by a positive quantity and returns the
// updated item.
func (c *Client) AddStock(ctx context.Context, itemID string, quantity int) (*MenuItem, error) {
	body := map[string]interface{}{"itemId": itemID, "quantidade": quantity}
	var item MenuItem
	if err := c.do(ctx, http.MethodPost, "/estoque/adicionar", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// orderRequest is the POST /pedidos payload.
type orderRequest struct {
	TableID      string             `json:"mesaId"`
	CustomerName string             `json:"clienteNome"`
	WaiterName   string             `json:"garcomNome"`
	Items        []orderRequestLine `json:"itens"`
}

type orderRequestLine struct {
	ItemID   string `json:"id"`
	Quantity int    `json:"quantidade"`
}

// SubmitCart finalizes the cart for a table. The backend assigns the order
// id, timestamp, unit prices and total. Submitting an empty cart fails
// locally with ErrEmptyCart, before any request is made.
func (c *Client) SubmitCart(ctx context.Context, tableID, customerName, waiterName string, cart *Cart) (*Order, error) {
	if cart.ItemCount() == 0 {
		return nil, ErrEmptyCart
	}

	req := orderRequest{
		TableID:      tableID,
		CustomerName: customerName,
		WaiterName:   waiterName,
	}
	for _, line := range cart.Lines() {
		req.Items = append(req.Items, orderRequestLine{
			ItemID:   line.Item.ID,
			Quantity: line.Quantity,
		})
	}

	var order Order
	if err := c.do(ctx, http.MethodPost, "/pedidos", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
