package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startupfuel.com/db"
	"startupfuel.com/dto"
	"startupfuel.com/types"
)

func TestGetPortfolio_FreshAccount(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app, "fresh@example.com")

	resp := doRequest(t, app, http.MethodGet, "/portfolio", "", token)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var response struct {
		Success bool                  `json:"success"`
		Data    dto.PortfolioResponse `json:"data"`
	}
	parseBody(t, resp, &response)

	assert.Equal(t, "Primary Portfolio", response.Data.Portfolio.Name)
	assert.Equal(t, 100000.00, response.Data.Portfolio.CashBalance)
	assert.Equal(t, 0.0, response.Data.Portfolio.TotalInvestedValue)
	assert.Equal(t, 0, response.Data.Portfolio.TotalAssets)
	assert.Empty(t, response.Data.AssetAllocation)
}

func TestTradeAsset_BuyShowsUpInAssets(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app, "buyer@example.com")

	resp := doRequest(t, app, http.MethodPost, "/portfolio/assets",
		`{"symbol":"AAPL","shares":10,"purchasePrice":150,"currentPrice":155,"type":"buy"}`, token)
	defer resp.Body.Close()
	require.Equal(t, 201, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/portfolio/assets", "", token)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Assets []dto.AssetResponse `json:"assets"`
		} `json:"data"`
	}
	parseBody(t, resp, &response)

	require.Len(t, response.Data.Assets, 1)
	asset := response.Data.Assets[0]
	assert.Equal(t, "AAPL", asset.Symbol)
	assert.Equal(t, 10.0, asset.Shares)
	assert.Equal(t, 150.0, asset.PurchasePrice)
	assert.Equal(t, 155.0, asset.CurrentPrice)
	assert.Equal(t, 50.0, asset.UnrealizedGainLoss)
	assert.Equal(t, 3.33, asset.ReturnPercentage)
}

func TestTradeAsset_UnsupportedSymbol(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app, "picky@example.com")

	resp := doRequest(t, app, http.MethodPost, "/portfolio/assets",
		`{"symbol":"XXXX","shares":1,"purchasePrice":10,"currentPrice":10,"type":"buy"}`, token)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)

	var response types.Response
	parseBody(t, resp, &response)
	assert.Equal(t, "Only these stocks are supported: AAPL, AMZN, GOOGL, MSFT, TSLA", response.Error)
}

func TestTradeAsset_InsufficientFunds(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app, "broke@example.com")

	resp := doRequest(t, app, http.MethodPost, "/portfolio/assets",
		`{"symbol":"AAPL","shares":1000,"purchasePrice":150.25,"currentPrice":155,"type":"buy"}`, token)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)

	var response types.Response
	parseBody(t, resp, &response)
	assert.Equal(t, "You need $150250.00 but only have $100000.00 available", response.Error)
}

func TestTradeAsset_SellMoreThanOwned(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app, "overseller@example.com")

	resp := doRequest(t, app, http.MethodPost, "/portfolio/assets",
		`{"symbol":"TSLA","shares":5,"purchasePrice":800,"currentPrice":800,"type":"buy"}`, token)
	defer resp.Body.Close()
	require.Equal(t, 201, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/portfolio/assets",
		`{"symbol":"TSLA","shares":10,"purchasePrice":900,"currentPrice":900,"type":"sell"}`, token)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)

	var response types.Response
	parseBody(t, resp, &response)
	assert.Equal(t, "You only have 5 shares but trying to sell 10 shares", response.Error)
}

func TestTradeAsset_NonPositiveNumbers(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app, "zero@example.com")

	resp := doRequest(t, app, http.MethodPost, "/portfolio/assets",
		`{"symbol":"AAPL","shares":0,"purchasePrice":150,"currentPrice":155,"type":"buy"}`, token)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)

	var response types.Response
	parseBody(t, resp, &response)
	assert.Equal(t, "shares, purchase price, and current price must be positive numbers", response.Error)
}

func TestTradeAsset_RequiresAuth(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/portfolio/assets",
		`{"symbol":"AAPL","shares":1,"purchasePrice":150,"currentPrice":155,"type":"buy"}`, "")
	defer resp.Body.Close()
	assert.Equal(t, 401, resp.StatusCode)
}

func TestGetAllocations_Empty(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app, "empty@example.com")

	resp := doRequest(t, app, http.MethodGet, "/portfolio/allocations", "", token)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var response struct {
		Success bool                    `json:"success"`
		Data    dto.AllocationsResponse `json:"data"`
	}
	parseBody(t, resp, &response)

	assert.Empty(t, response.Data.Allocations)
	assert.Equal(t, 0.0, response.Data.TotalValue)
	assert.Equal(t, "No assets found in portfolio", response.Data.Message)
}

func TestGetAllocations_PercentagesByMarketValue(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app, "allocator@example.com")

	trades := []string{
		`{"symbol":"AAPL","shares":10,"purchasePrice":100,"currentPrice":100,"type":"buy"}`,
		`{"symbol":"MSFT","shares":10,"purchasePrice":300,"currentPrice":300,"type":"buy"}`,
	}
	for _, trade := range trades {
		resp := doRequest(t, app, http.MethodPost, "/portfolio/assets", trade, token)
		resp.Body.Close()
		require.Equal(t, 201, resp.StatusCode)
	}

	resp := doRequest(t, app, http.MethodGet, "/portfolio/allocations", "", token)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var response struct {
		Success bool                    `json:"success"`
		Data    dto.AllocationsResponse `json:"data"`
	}
	parseBody(t, resp, &response)

	require.Len(t, response.Data.Allocations, 2)
	assert.Equal(t, 4000.00, response.Data.TotalValue)

	// ordered by market value, largest first
	assert.Equal(t, "MSFT", response.Data.Allocations[0].Symbol)
	assert.Equal(t, 75.0, response.Data.Allocations[0].Percentage)
	assert.Equal(t, "AAPL", response.Data.Allocations[1].Symbol)
	assert.Equal(t, 25.0, response.Data.Allocations[1].Percentage)
	assert.Empty(t, response.Data.Message)
}

func TestGetPerformance_SeriesTracksPortfolioValue(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app, "charts@example.com")

	resp := doRequest(t, app, http.MethodGet, "/portfolio/performance?period=1W", "", token)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var response struct {
		Success bool                    `json:"success"`
		Data    dto.PerformanceResponse `json:"data"`
	}
	parseBody(t, resp, &response)

	assert.Equal(t, "1W", response.Data.Period)
	assert.Len(t, response.Data.Performance, 8)
	for _, point := range response.Data.Performance {
		assert.GreaterOrEqual(t, point.Value, 0.0)
	}
}

func TestTradeAsset_RecomputesInvestedValue(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app, "cache@example.com")

	resp := doRequest(t, app, http.MethodPost, "/portfolio/assets",
		`{"symbol":"GOOGL","shares":2,"purchasePrice":2800,"currentPrice":2950,"type":"buy"}`, token)
	defer resp.Body.Close()
	require.Equal(t, 201, resp.StatusCode)

	var portfolio types.Portfolio
	require.NoError(t, db.DB.Where("name = ?", "Primary Portfolio").Last(&portfolio).Error)
	assert.Equal(t, 5600.00, portfolio.TotalValue)
	assert.Equal(t, 94400.00, portfolio.CashBalance)
}
