package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startupfuel.com/types"
)

func TestSeed_BuildsDemoPortfolio(t *testing.T) {
	InitInMemory()

	Seed()

	var user types.User
	require.NoError(t, DB.Where("email = ?", "demo@startupfuel.com").First(&user).Error)
	assert.Equal(t, "Demo", user.FirstName)
	assert.Equal(t, types.RoleInvestor, user.Role)

	var portfolio types.Portfolio
	require.NoError(t, DB.Where("user_id = ?", user.ID).First(&portfolio).Error)
	assert.Equal(t, "Primary Investment Portfolio", portfolio.Name)

	// the replayed history nets out to these balances
	assert.InDelta(t, 26648.50, portfolio.CashBalance, 1e-6)
	assert.InDelta(t, 73351.50, portfolio.TotalValue, 1e-6)

	var holdings []types.Holding
	require.NoError(t, DB.Where("portfolio_id = ?", portfolio.ID).Find(&holdings).Error)
	require.Len(t, holdings, 5)

	shares := map[string]float64{}
	for _, h := range holdings {
		shares[h.Symbol] = h.Shares
	}
	assert.Equal(t, 60.0, shares["AAPL"])
	assert.Equal(t, 4.0, shares["GOOGL"])
	assert.Equal(t, 17.0, shares["TSLA"])
	assert.Equal(t, 45.0, shares["MSFT"])
	assert.Equal(t, 8.0, shares["AMZN"])

	var transactions int64
	DB.Model(&types.Transaction{}).Where("portfolio_id = ?", portfolio.ID).Count(&transactions)
	assert.Equal(t, int64(9), transactions)

	var reports int64
	DB.Model(&types.Report{}).Where("user_id = ?", user.ID).Count(&reports)
	assert.Equal(t, int64(3), reports)
}

func TestSeed_IsIdempotent(t *testing.T) {
	InitInMemory()

	Seed()
	Seed()

	var users int64
	DB.Model(&types.User{}).Where("email = ?", "demo@startupfuel.com").Count(&users)
	assert.Equal(t, int64(1), users)

	var transactions int64
	DB.Model(&types.Transaction{}).Count(&transactions)
	assert.Equal(t, int64(9), transactions)
}

func TestSeed_AverageCostSurvivesSells(t *testing.T) {
	InitInMemory()
	Seed()

	var holding types.Holding
	require.NoError(t, DB.Where("symbol = ?", "AAPL").First(&holding).Error)

	// (50*150.25 + 10*175.30) / 60
	assert.InDelta(t, 154.425, holding.PurchasePrice, 1e-9)
	assert.Equal(t, 175.30, holding.CurrentPrice)

	// GOOGL was partially sold; its average cost must still be the buy price
	var googl types.Holding
	require.NoError(t, DB.Where("symbol = ?", "GOOGL").First(&googl).Error)
	assert.Equal(t, 2800.00, googl.PurchasePrice)
}
