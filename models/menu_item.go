package models

// MenuItem represents a purchasable menu entry with price and stock count
type MenuItem struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Category    string  `gorm:"column:categoria;not null" json:"categoria"`
	Name        string  `gorm:"column:nome;not null" json:"nome"`
	Price       float64 `gorm:"column:preco_val;not null" json:"preco"`
	PriceText   string  `gorm:"column:preco_texto" json:"precoTexto"`
	Description string  `gorm:"column:descricao" json:"desc"`
	Stock       int     `gorm:"column:qtd_estoque;not null;default:0;check:qtd_estoque >= 0" json:"qtdEstoque"`
}

// TableName specifies the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "ItensCardapio"
}
