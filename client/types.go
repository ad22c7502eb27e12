package client

import "time"

// MenuItem is one purchasable menu entry as served by GET /cardapio.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"nome"`
	Price       float64 `json:"preco"`
	PriceText   string  `json:"precoTexto"`
	Description string  `json:"desc"`
	Stock       int     `json:"qtdEstoque"`
}

// MenuCategory groups menu items under a category name.
type MenuCategory struct {
	Category string     `json:"categoria"`
	Items    []MenuItem `json:"itens"`
}

// Waiter is one staff registry entry as served by GET /garcons.
type Waiter struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
	Role string `json:"cargo"`
}

// Table is one table as served by GET /mesas. WaiterName and CustomerName
// are nil while the table is free.
type Table struct {
	ID           string  `json:"id"`
	Name         string  `json:"nome"`
	Status       string  `json:"status"` // "livre" or "ocupada"
	WaiterName   *string `json:"garcom_nome"`
	CustomerName *string `json:"cliente_nome"`
}

// Table occupancy states.
const (
	TableStatusFree     = "livre"
	TableStatusOccupied = "ocupada"
)

// OrderLine is one item line of a persisted order, with the unit price
// captured at order time.
type OrderLine struct {
	ItemID    string  `json:"id"`
	Name      string  `json:"nome"`
	Quantity  int     `json:"quantidade"`
	UnitPrice float64 `json:"preco"`
}

// Order is a persisted order as returned by POST /pedidos and GET /historico.
type Order struct {
	ID           string      `json:"id"`
	TableID      string      `json:"mesaId"`
	CustomerName string      `json:"clienteNome"`
	WaiterName   string      `json:"garcomNome"`
	Total        float64     `json:"total"`
	PlacedAt     time.Time   `json:"data"`
	Lines        []OrderLine `json:"itens"`
}

// LoginResult is the identity record returned by POST /login.
type LoginResult struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
	Kind string `json:"tipo"`
}
