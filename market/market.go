package market

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
	"gorm.io/gorm"

	"startupfuel.com/shared"
	"startupfuel.com/types"
)

// SupportedStocks is the fixed allow-list of tradable tickers. Orders for
// anything outside this map are rejected before any state changes.
var SupportedStocks = map[string]string{
	"GOOGL": "Alphabet Inc",
	"AMZN":  "Amazon.com Inc",
	"TSLA":  "Tesla Inc",
	"MSFT":  "Microsoft Corp",
	"AAPL":  "Apple Inc",
}

func IsSupported(symbol string) bool {
	_, ok := SupportedStocks[strings.ToUpper(symbol)]
	return ok
}

// CompanyName returns the display name for a supported ticker.
func CompanyName(symbol string) string {
	return SupportedStocks[strings.ToUpper(symbol)]
}

// SupportedList returns the allow-list tickers in a stable order, for error
// messages and the market endpoint.
func SupportedList() []string {
	symbols := make([]string, 0, len(SupportedStocks))
	for symbol := range SupportedStocks {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func newFinnhubClient() *finnhub.DefaultApiService {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", os.Getenv("FINNHUB_API_KEY"))
	cfg.HTTPClient = shared.HttpClient()
	return finnhub.NewAPIClient(cfg).DefaultApi
}

// RefreshPrices pulls the latest quote for every supported ticker and writes
// it onto all holdings of that symbol. Skipped entirely when no API key is
// configured; the current price supplied with each order still wins at
// settlement time.
func RefreshPrices(database *gorm.DB) error {
	if os.Getenv("FINNHUB_API_KEY") == "" {
		return nil
	}

	client := newFinnhubClient()

	var failed []string
	for _, symbol := range SupportedList() {
		quote, _, err := client.Quote(context.Background()).Symbol(symbol).Execute()
		if err != nil {
			log.Printf("Failed to fetch quote for %s: %v", symbol, err)
			failed = append(failed, symbol)
			continue
		}

		price := float64(quote.GetC())
		if price <= 0 {
			continue
		}

		err = database.Model(&types.Holding{}).
			Where("symbol = ?", symbol).
			Update("current_price", price).Error
		if err != nil {
			log.Printf("Failed to update holdings for %s: %v", symbol, err)
			failed = append(failed, symbol)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("price refresh incomplete for: %s", strings.Join(failed, ", "))
	}
	return nil
}
