package models

// Staff roles stored in the cargo column.
const (
	RoleWaiter  = "garcom"
	RoleManager = "gerente"
)

// Waiter represents a staff member (waiter or manager)
type Waiter struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:nome;not null" json:"nome"`
	Role string `gorm:"column:cargo;not null;default:'garcom'" json:"cargo"` // "garcom" or "gerente"
}

// TableName specifies the table name for the Waiter model
func (Waiter) TableName() string {
	return "Garcons"
}
