package models

// Table occupancy states stored in the status column.
const (
	TableStatusFree     = "livre"
	TableStatusOccupied = "ocupada"
)

// Table represents a physical table tracked by occupancy status.
// WaiterName and CustomerName are set while the table is occupied and
// cleared when it is released.
type Table struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"column:nome;not null" json:"nome"`
	Status       string  `gorm:"column:status;not null;default:'livre'" json:"status"` // "livre" or "ocupada"
	WaiterName   *string `gorm:"column:garcom_nome" json:"garcom_nome"`
	CustomerName *string `gorm:"column:cliente_nome" json:"cliente_nome,omitempty"`
}

// TableName specifies the table name for the Table model
func (Table) TableName() string {
	return "Mesas"
}

// IsFree reports whether the table can be occupied.
func (t *Table) IsFree() bool {
	return t.Status == TableStatusFree
}
