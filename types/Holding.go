package types

import "time"

// Holding is one position per (portfolio, symbol). PurchasePrice holds the
// weighted average cost across buys; sells reduce shares without touching it.
// A holding row is deleted outright when shares reach zero.
type Holding struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PortfolioID   uint      `gorm:"not null;uniqueIndex:idx_portfolio_symbol" json:"portfolio_id"`
	Symbol        string    `gorm:"not null;uniqueIndex:idx_portfolio_symbol" json:"symbol"`
	Shares        float64   `gorm:"not null" json:"shares"`
	PurchasePrice float64   `gorm:"not null" json:"purchase_price"`
	CurrentPrice  float64   `gorm:"not null;default:0" json:"current_price"`
	PurchaseDate  string    `gorm:"not null" json:"purchase_date"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Holding) TableName() string {
	return "portfolio_assets"
}
