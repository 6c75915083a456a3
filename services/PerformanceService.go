package services

import (
	"math"
	"math/rand"
	"time"

	"startupfuel.com/dto"
)

// GeneratePerformanceSeries fabricates a daily value series for the charts.
// The numbers are synthetic (steady growth plus noise around the portfolio's
// invested value + cash); a real analytics provider would replace this.
func GeneratePerformanceSeries(period string, baseValue float64) []dto.PerformancePoint {
	days := daysForPeriod(period)
	points := make([]dto.PerformancePoint, 0, days+1)

	for i := days; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i)

		growthFactor := 1 + (float64(days-i)/float64(days))*0.15
		volatility := (rand.Float64() - 0.5) * 0.1
		value := math.Round(baseValue * growthFactor * (1 + volatility))

		points = append(points, dto.PerformancePoint{
			Date:  date.Format("2006-01-02"),
			Value: math.Max(value, 0),
		})
	}

	return points
}

func daysForPeriod(period string) int {
	switch period {
	case "1W":
		return 7
	case "1M":
		return 30
	case "3M":
		return 90
	case "6M":
		return 180
	case "1Y":
		return 365
	case "ALL":
		return 365 * 2
	default:
		return 30
	}
}
