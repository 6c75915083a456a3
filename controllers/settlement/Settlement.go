package settlement

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"startupfuel.com/broker"
	"startupfuel.com/market"
	"startupfuel.com/services"
	"startupfuel.com/types"
)

// Order is a buy or sell to apply against a portfolio. Date is optional and
// defaults to today; it exists so seeding can replay historical orders.
type Order struct {
	Symbol        string
	Shares        float64
	PricePerShare float64
	CurrentPrice  float64
	Direction     string
	Date          string
	Notes         string
}

const (
	DirectionBuy  = "buy"
	DirectionSell = "sell"
)

// One mutex per portfolio. Orders against the same portfolio are serialized
// so the read-validate-write sequence can't interleave; the database
// transaction below covers crash consistency.
var (
	portfolioLocks = make(map[uint]*sync.Mutex)
	locksMu        sync.Mutex
)

func getLock(portfolioID uint) *sync.Mutex {
	locksMu.Lock()
	defer locksMu.Unlock()

	if _, exists := portfolioLocks[portfolioID]; !exists {
		portfolioLocks[portfolioID] = &sync.Mutex{}
	}
	return portfolioLocks[portfolioID]
}

// Settle validates the order, applies it to the portfolio's holdings and
// cash, appends the ledger row and recomputes the portfolio's invested
// value, all in one database transaction. Any validation or business-rule
// failure aborts with no state change.
func Settle(database *gorm.DB, portfolioID uint, order Order) (*types.Transaction, error) {
	symbol := strings.ToUpper(order.Symbol)
	direction := strings.ToLower(order.Direction)

	if direction != DirectionBuy && direction != DirectionSell {
		return nil, &types.InvalidOrderError{Message: "type must be either 'buy' or 'sell'"}
	}
	if !market.IsSupported(symbol) {
		return nil, &types.UnsupportedAssetError{Symbol: symbol}
	}
	if order.Shares <= 0 || order.PricePerShare <= 0 || order.CurrentPrice <= 0 {
		return nil, &types.InvalidOrderError{
			Message: "shares, purchase price, and current price must be positive numbers",
		}
	}

	lock := getLock(portfolioID)
	lock.Lock()
	defer lock.Unlock()

	var created *types.Transaction
	err := database.Transaction(func(tx *gorm.DB) error {
		var portfolio types.Portfolio
		if err := tx.First(&portfolio, portfolioID).Error; err != nil {
			return err
		}

		var holding types.Holding
		err := tx.Where("portfolio_id = ? AND symbol = ?", portfolioID, symbol).First(&holding).Error
		holdingExists := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		totalAmount := order.Shares * order.PricePerShare

		if direction == DirectionBuy {
			if err := applyBuy(tx, &portfolio, &holding, holdingExists, symbol, order, totalAmount); err != nil {
				return err
			}
		} else {
			if err := applySell(tx, &portfolio, &holding, holdingExists, symbol, order, totalAmount); err != nil {
				return err
			}
		}

		if err := tx.Model(&types.Portfolio{}).
			Where("id = ?", portfolioID).
			Update("cash_balance", portfolio.CashBalance).Error; err != nil {
			return err
		}

		txn := types.Transaction{
			PortfolioID:     portfolioID,
			Symbol:          symbol,
			TransactionType: strings.ToUpper(direction),
			Shares:          order.Shares,
			PricePerShare:   order.PricePerShare,
			TotalAmount:     totalAmount,
			TransactionDate: transactionDate(order),
			Notes:           orderNotes(direction, symbol, order),
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		if _, err := services.RecomputeSnapshot(tx, portfolioID); err != nil {
			return err
		}

		created = &txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := broker.SendTransactionSettled(created); err != nil {
		log.Printf("Failed to publish settled transaction %d: %v", created.ID, err)
	}

	return created, nil
}

func applyBuy(tx *gorm.DB, portfolio *types.Portfolio, holding *types.Holding, holdingExists bool, symbol string, order Order, totalAmount float64) error {
	if totalAmount > portfolio.CashBalance {
		return &types.InsufficientFundsError{
			Required:  totalAmount,
			Available: portfolio.CashBalance,
		}
	}

	if holdingExists {
		newShares := holding.Shares + order.Shares
		newAverage := (holding.Shares*holding.PurchasePrice + order.Shares*order.PricePerShare) / newShares

		err := tx.Model(holding).Updates(map[string]interface{}{
			"shares":         newShares,
			"purchase_price": newAverage,
			"current_price":  order.CurrentPrice,
		}).Error
		if err != nil {
			return err
		}
	} else {
		err := tx.Create(&types.Holding{
			PortfolioID:   portfolio.ID,
			Symbol:        symbol,
			Shares:        order.Shares,
			PurchasePrice: order.PricePerShare,
			CurrentPrice:  order.CurrentPrice,
			PurchaseDate:  transactionDate(order),
		}).Error
		if err != nil {
			return err
		}
	}

	portfolio.CashBalance -= totalAmount
	return nil
}

func applySell(tx *gorm.DB, portfolio *types.Portfolio, holding *types.Holding, holdingExists bool, symbol string, order Order, totalAmount float64) error {
	if !holdingExists {
		return &types.AssetNotOwnedError{Symbol: symbol}
	}
	if order.Shares > holding.Shares {
		return &types.InsufficientSharesError{
			Available: holding.Shares,
			Requested: order.Shares,
		}
	}

	remaining := holding.Shares - order.Shares
	if remaining == 0 {
		if err := tx.Delete(holding).Error; err != nil {
			return err
		}
	} else {
		// average cost is untouched on a partial sell
		err := tx.Model(holding).Updates(map[string]interface{}{
			"shares":        remaining,
			"current_price": order.CurrentPrice,
		}).Error
		if err != nil {
			return err
		}
	}

	portfolio.CashBalance += totalAmount
	return nil
}

func transactionDate(order Order) string {
	if order.Date != "" {
		return order.Date
	}
	return time.Now().Format("2006-01-02")
}

func orderNotes(direction, symbol string, order Order) string {
	if order.Notes != "" {
		return order.Notes
	}
	verb := "Bought"
	if direction == DirectionSell {
		verb = "Sold"
	}
	return fmt.Sprintf("%s %g shares of %s", verb, order.Shares, market.CompanyName(symbol))
}
