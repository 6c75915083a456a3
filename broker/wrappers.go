package broker

import (
	"os"

	"github.com/google/uuid"

	"startupfuel.com/dto"
	"startupfuel.com/types"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// SendTransactionSettled publishes a settled buy/sell to downstream
// consumers (statements, notifications). Fire-and-forget: settlement has
// already committed by the time this is called.
func SendTransactionSettled(txn *types.Transaction) error {
	event := dto.TransactionSettledDTO{
		Uid:             uuid.NewString(),
		PortfolioID:     txn.PortfolioID,
		Symbol:          txn.Symbol,
		TransactionType: txn.TransactionType,
		Shares:          txn.Shares,
		PricePerShare:   txn.PricePerShare,
		TotalAmount:     txn.TotalAmount,
		TransactionDate: txn.TransactionDate,
	}
	return sendReliable("transaction-settled", &event)
}
