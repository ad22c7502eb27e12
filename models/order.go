package models

import (
	"encoding/json"
	"time"
)

// Order is an immutable record of a finalized purchase against one table.
// Line items are stored in the itens_json column exactly as the history
// table has always kept them; Lines is the decoded form used in responses.
type Order struct {
	ID           string      `gorm:"primaryKey" json:"id"`
	TableID      string      `gorm:"column:mesa_id;index" json:"mesaId"`
	CustomerName string      `gorm:"column:cliente_nome" json:"clienteNome"`
	WaiterName   string      `gorm:"column:garcom_nome" json:"garcomNome"`
	Total        float64     `gorm:"column:total;not null" json:"total"`
	PlacedAt     time.Time   `gorm:"column:data;not null" json:"data"`
	LinesJSON    string      `gorm:"column:itens_json;type:text" json:"-"`
	Lines        []OrderLine `gorm:"-" json:"itens"`
}

// OrderLine is one item line with the unit price captured at order time.
type OrderLine struct {
	ItemID    string  `json:"id"`
	Name      string  `json:"nome"`
	Quantity  int     `json:"quantidade"`
	UnitPrice float64 `json:"preco"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "HistoricoPedidos"
}

// SetLines encodes the given lines into the itens_json column and keeps
// the decoded slice on the struct.
func (o *Order) SetLines(lines []OrderLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	o.LinesJSON = string(data)
	o.Lines = lines
	return nil
}

// DecodeLines populates Lines from the itens_json column.
func (o *Order) DecodeLines() error {
	if o.LinesJSON == "" {
		o.Lines = nil
		return nil
	}
	return json.Unmarshal([]byte(o.LinesJSON), &o.Lines)
}
