package types

import "time"

// Portfolio is the single portfolio owned by a user. TotalValue caches the
// cost basis of current holdings and is recomputed after every settlement;
// it is never treated as a source of truth.
type Portfolio struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	TotalValue  float64   `gorm:"not null;default:0" json:"total_value"`
	CashBalance float64   `gorm:"not null;default:0" json:"cash_balance"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}
