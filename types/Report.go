package types

import "time"

type Report struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	Title         string    `gorm:"not null" json:"title"`
	FileURL       string    `gorm:"not null" json:"file_url"`
	ReportType    string    `gorm:"not null" json:"report_type"`
	GeneratedDate string    `gorm:"not null" json:"generated_date"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Report) TableName() string {
	return "reports"
}
