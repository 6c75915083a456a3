package db

import (
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"startupfuel.com/controllers/settlement"
	"startupfuel.com/types"
)

// last-known market prices for the demo holdings, used as the current
// price on every replayed order
var seedPrices = map[string]float64{
	"AAPL":  175.30,
	"GOOGL": 2950.75,
	"TSLA":  750.25,
	"MSFT":  335.50,
	"AMZN":  3100.25,
}

type seedOrder struct {
	symbol    string
	direction string
	shares    float64
	price     float64
	daysAgo   int
	notes     string
}

// Seed creates the demo investor with a realistic trading history. Each
// historical order runs through the settlement engine, so the resulting
// holdings, cash balance and ledger are exactly what live trading would
// have produced. Safe to call more than once.
func Seed() {
	var existing types.User
	err := DB.Where("email = ?", "demo@startupfuel.com").First(&existing).Error
	if err == nil {
		log.Println("Demo user already exists, skipping seed")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Seed check failed: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash demo password: %v", err)
		return
	}

	user := types.User{
		Email:        "demo@startupfuel.com",
		PasswordHash: string(hash),
		FirstName:    "Demo",
		LastName:     "Investor",
		Role:         types.RoleInvestor,
	}
	if err := DB.Create(&user).Error; err != nil {
		log.Printf("Failed to create demo user: %v", err)
		return
	}

	portfolio := types.Portfolio{
		UserID:      user.ID,
		Name:        "Primary Investment Portfolio",
		TotalValue:  0,
		CashBalance: 100000.00,
	}
	if err := DB.Create(&portfolio).Error; err != nil {
		log.Printf("Failed to create demo portfolio: %v", err)
		return
	}

	orders := []seedOrder{
		{"AAPL", settlement.DirectionBuy, 50, 150.25, 45, "Initial Apple investment"},
		{"GOOGL", settlement.DirectionBuy, 5, 2800.00, 40, "Google stock purchase"},
		{"TSLA", settlement.DirectionBuy, 20, 800.50, 35, "Tesla investment"},
		{"MSFT", settlement.DirectionBuy, 40, 300.00, 30, "Microsoft shares"},
		{"AMZN", settlement.DirectionBuy, 8, 3200.00, 25, "Amazon investment"},
		{"AAPL", settlement.DirectionBuy, 10, 175.30, 2, "Additional Apple shares"},
		{"GOOGL", settlement.DirectionSell, 1, 2950.75, 5, "Profit taking on Google"},
		{"MSFT", settlement.DirectionBuy, 5, 335.50, 7, "Dollar cost averaging Microsoft"},
		{"TSLA", settlement.DirectionSell, 3, 750.25, 10, "Risk management - partial Tesla sale"},
	}

	for _, o := range orders {
		_, err := settlement.Settle(DB, portfolio.ID, settlement.Order{
			Symbol:        o.symbol,
			Shares:        o.shares,
			PricePerShare: o.price,
			CurrentPrice:  seedPrices[o.symbol],
			Direction:     o.direction,
			Date:          time.Now().AddDate(0, 0, -o.daysAgo).Format("2006-01-02"),
			Notes:         o.notes,
		})
		if err != nil {
			log.Printf("Failed to replay seed order for %s: %v", o.symbol, err)
		}
	}

	reports := []types.Report{
		{
			UserID:        user.ID,
			Title:         "Q4 2024 Performance Report",
			FileURL:       "/reports/q4-2024-performance.pdf",
			ReportType:    "QUARTERLY",
			GeneratedDate: time.Now().AddDate(0, 0, -30).Format("2006-01-02"),
		},
		{
			UserID:        user.ID,
			Title:         "Annual Investment Summary 2024",
			FileURL:       "/reports/annual-2024-summary.pdf",
			ReportType:    "ANNUAL",
			GeneratedDate: time.Now().AddDate(0, 0, -60).Format("2006-01-02"),
		},
		{
			UserID:        user.ID,
			Title:         "Monthly Report - December 2024",
			FileURL:       "/reports/monthly-dec-2024.pdf",
			ReportType:    "MONTHLY",
			GeneratedDate: time.Now().AddDate(0, 0, -15).Format("2006-01-02"),
		},
	}
	for i := range reports {
		if err := DB.Create(&reports[i]).Error; err != nil {
			log.Printf("Failed to create seed report: %v", err)
		}
	}

	log.Printf("Seeded demo portfolio %d for %s", portfolio.ID, user.Email)
}
