package services

import (
	"math"

	"gorm.io/gorm"

	"startupfuel.com/dto"
	"startupfuel.com/types"
)

// PortfolioSnapshot is the aggregator's view of a portfolio derived from its
// current holdings. InvestedValue is cost basis and is persisted back onto
// the portfolio row; everything else is reporting-only.
type PortfolioSnapshot struct {
	InvestedValue         float64
	AssetsMarketValue     float64
	TotalGainLoss         float64
	TotalReturnPercentage float64
	TotalAssets           int
	Allocations           []dto.AssetAllocation
}

// RecomputeSnapshot reads all holdings of the portfolio, recomputes the
// derived metrics and persists the invested value. Callers inside a
// settlement pass their transaction handle so the write commits atomically
// with the rest of the order.
func RecomputeSnapshot(tx *gorm.DB, portfolioID uint) (*PortfolioSnapshot, error) {
	var holdings []types.Holding
	if err := tx.Where("portfolio_id = ?", portfolioID).Find(&holdings).Error; err != nil {
		return nil, err
	}

	snapshot := buildSnapshot(holdings)

	err := tx.Model(&types.Portfolio{}).
		Where("id = ?", portfolioID).
		Update("total_value", snapshot.InvestedValue).Error
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// Snapshot is the read-only variant used by GET handlers; nothing is
// persisted.
func Snapshot(tx *gorm.DB, portfolioID uint) (*PortfolioSnapshot, error) {
	var holdings []types.Holding
	if err := tx.Where("portfolio_id = ?", portfolioID).Find(&holdings).Error; err != nil {
		return nil, err
	}
	return buildSnapshot(holdings), nil
}

func buildSnapshot(holdings []types.Holding) *PortfolioSnapshot {
	snapshot := &PortfolioSnapshot{
		TotalAssets: len(holdings),
		Allocations: make([]dto.AssetAllocation, 0, len(holdings)),
	}

	for _, h := range holdings {
		snapshot.InvestedValue += h.Shares * h.PurchasePrice
		snapshot.AssetsMarketValue += h.Shares * h.CurrentPrice
		snapshot.TotalGainLoss += (h.CurrentPrice - h.PurchasePrice) * h.Shares
	}

	if snapshot.InvestedValue > 0 {
		snapshot.TotalReturnPercentage = Round2(snapshot.TotalGainLoss / snapshot.InvestedValue * 100)
	}

	for _, h := range holdings {
		value := h.Shares * h.CurrentPrice
		percentage := 0.0
		if snapshot.AssetsMarketValue > 0 {
			percentage = Round2(value / snapshot.AssetsMarketValue * 100)
		}
		snapshot.Allocations = append(snapshot.Allocations, dto.AssetAllocation{
			Symbol:     h.Symbol,
			Value:      Round2(value),
			Percentage: percentage,
		})
	}

	return snapshot
}

// BuildAllocations produces the detailed allocation rows for the allocations
// endpoint, ordered by the caller's query. Returns an empty slice and zero
// total when the portfolio holds nothing.
func BuildAllocations(holdings []types.Holding) ([]dto.AllocationDetail, float64) {
	allocations := make([]dto.AllocationDetail, 0, len(holdings))

	var totalValue float64
	for _, h := range holdings {
		totalValue += h.Shares * h.CurrentPrice
	}

	for _, h := range holdings {
		value := h.Shares * h.CurrentPrice
		percentage := 0.0
		if totalValue > 0 {
			percentage = Round2(value / totalValue * 100)
		}
		allocations = append(allocations, dto.AllocationDetail{
			Symbol:       h.Symbol,
			Shares:       h.Shares,
			CurrentPrice: h.CurrentPrice,
			CurrentValue: Round2(value),
			Percentage:   percentage,
		})
	}

	return allocations, Round2(totalValue)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
