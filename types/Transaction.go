package types

import "time"

// Transaction is an append-only ledger row. Rows are never updated or
// deleted once written.
type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PortfolioID     uint      `gorm:"not null;index" json:"portfolio_id"`
	Symbol          string    `gorm:"not null" json:"symbol"`
	TransactionType string    `gorm:"not null" json:"transaction_type"`
	Shares          float64   `gorm:"not null" json:"shares"`
	PricePerShare   float64   `gorm:"not null" json:"price_per_share"`
	TotalAmount     float64   `gorm:"not null" json:"total_amount"`
	TransactionDate string    `gorm:"not null;index" json:"transaction_date"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

const (
	TransactionBuy  = "BUY"
	TransactionSell = "SELL"
)
