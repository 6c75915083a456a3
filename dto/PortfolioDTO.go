package dto

// BuySellRequest is an order for the settlement engine. Numeric bounds are
// checked by the engine itself so that every order failure carries a
// machine-readable kind, not just a validator message.
type BuySellRequest struct {
	Symbol        string  `json:"symbol" validate:"required"`
	Shares        float64 `json:"shares"`
	PurchasePrice float64 `json:"purchasePrice"`
	CurrentPrice  float64 `json:"currentPrice"`
	Type          string  `json:"type" validate:"required,oneof=buy sell BUY SELL"`
}

type PortfolioSummary struct {
	ID                    uint    `json:"id"`
	Name                  string  `json:"name"`
	TotalInvestedValue    float64 `json:"totalInvestedValue"`
	CashBalance           float64 `json:"cashBalance"`
	TotalGainLoss         float64 `json:"totalGainLoss"`
	TotalReturnPercentage float64 `json:"totalReturnPercentage"`
	DayChange             float64 `json:"dayChange"`
	DayChangePercentage   float64 `json:"dayChangePercentage"`
	TotalAssets           int     `json:"totalAssets"`
	CreatedAt             string  `json:"createdAt"`
	UpdatedAt             string  `json:"updatedAt"`
}

// AssetAllocation is the compact per-symbol slice shown on the dashboard.
type AssetAllocation struct {
	Symbol     string  `json:"symbol"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

type PortfolioResponse struct {
	Portfolio       PortfolioSummary  `json:"portfolio"`
	AssetAllocation []AssetAllocation `json:"assetAllocation"`
}

type AssetResponse struct {
	ID                 uint    `json:"id"`
	PortfolioID        uint    `json:"portfolio_id"`
	Symbol             string  `json:"symbol"`
	Shares             float64 `json:"shares"`
	PurchasePrice      float64 `json:"purchase_price"`
	CurrentPrice       float64 `json:"current_price"`
	PurchaseDate       string  `json:"purchase_date"`
	UnrealizedGainLoss float64 `json:"unrealized_gain_loss"`
	ReturnPercentage   float64 `json:"return_percentage"`
}

// AllocationDetail is the richer allocation row served by /portfolio/allocations.
type AllocationDetail struct {
	Symbol       string  `json:"symbol"`
	Shares       float64 `json:"shares"`
	CurrentPrice float64 `json:"currentPrice"`
	CurrentValue float64 `json:"currentValue"`
	Percentage   float64 `json:"percentage"`
}

type AllocationsResponse struct {
	Allocations []AllocationDetail `json:"allocations"`
	TotalValue  float64            `json:"totalValue"`
	Message     string             `json:"message,omitempty"`
}

type PerformancePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type PerformanceResponse struct {
	Period      string             `json:"period"`
	Performance []PerformancePoint `json:"performance"`
}
