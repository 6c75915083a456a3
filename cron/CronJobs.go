package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"startupfuel.com/db"
	"startupfuel.com/market"
)

// StartScheduler refreshes holding prices once on boot and then hourly.
// Without a FINNHUB_API_KEY the refresh is a no-op and prices stay whatever
// the last order supplied.
func StartScheduler() {
	refreshPrices()

	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 * * * *", refreshPrices)
	if err != nil {
		log.Printf("Failed to schedule price refresh: %v", err)
		return
	}

	c.Start()
}

func refreshPrices() {
	if err := market.RefreshPrices(db.DB); err != nil {
		log.Printf("Price refresh: %v", err)
	}
}
