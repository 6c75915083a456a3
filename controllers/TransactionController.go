package controllers

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"startupfuel.com/db"
	"startupfuel.com/dto"
	"startupfuel.com/middlewares"
	"startupfuel.com/types"
)

type TransactionController struct {
	validator *validator.Validate
}

func NewTransactionController() *TransactionController {
	return &TransactionController{
		validator: validator.New(),
	}
}

var usd = message.NewPrinter(language.AmericanEnglish)

func formatUSD(v float64) string {
	return usd.Sprintf("%.2f", v)
}

// ListTransactions godoc
//
//	@Summary		Transaction history
//	@Description	Filtered, ordered ledger rows plus aggregate summary. Symbol filter is a case-insensitive substring match; type is exact BUY/SELL.
//	@Tags			Transactions
//	@Produce		json
//	@Param			symbol	query		string	false	"Substring symbol filter"
//	@Param			type	query		string	false	"BUY or SELL"
//	@Param			limit	query		int		false	"Max rows after ordering"
//	@Success		200		{object}	types.Response{data=dto.TransactionsResponse}
//	@Failure		404		{object}	types.Response
//	@Security		BearerAuth
//	@Router			/transactions [get]
func (tc *TransactionController) ListTransactions(c *fiber.Ctx) error {
	userID, _ := middlewares.UserID(c)

	symbol := c.Query("symbol")
	txType := strings.ToUpper(c.Query("type"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	portfolio, err := findPortfolio(userID)
	if err != nil {
		return c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "No portfolio found for this user",
		})
	}

	query := db.DB.Where("portfolio_id = ?", portfolio.ID)
	if symbol != "" {
		query = query.Where("UPPER(symbol) LIKE ?", "%"+strings.ToUpper(symbol)+"%")
	}
	if txType != "" {
		query = query.Where("transaction_type = ?", txType)
	}
	query = query.Order("transaction_date DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var transactions []types.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		log.Printf("Transactions fetch error: %v", err)
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "An error occurred while fetching transaction data",
		})
	}

	formatted := make([]dto.FormattedTransaction, 0, len(transactions))
	for _, txn := range transactions {
		formatted = append(formatted, formatTransaction(&txn, portfolio))
	}

	var totalBuy, totalSell float64
	var buyOrders, sellOrders int
	for _, txn := range transactions {
		if txn.TransactionType == types.TransactionBuy {
			totalBuy += txn.TotalAmount
			buyOrders++
		} else if txn.TransactionType == types.TransactionSell {
			totalSell += txn.TotalAmount
			sellOrders++
		}
	}

	return c.JSON(types.Response{
		Success: true,
		Data: dto.TransactionsResponse{
			Summary: dto.TransactionsSummary{
				TotalTransactions: len(transactions),
				NetInvestment:     "$" + formatUSD(totalBuy-totalSell),
				BuyOrders:         buyOrders,
				SellOrders:        sellOrders,
			},
			Transactions: formatted,
			Filters: dto.TransactionFilters{
				Symbol: symbol,
				Type:   txType,
				Limit:  limit,
			},
		},
	})
}

// CreateTransaction godoc
//
//	@Summary		Insert a raw ledger row
//	@Description	Appends a transaction directly, without running settlement. Cash balance and holdings are intentionally untouched.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.CreateTransactionRequest	true	"Transaction"
//	@Success		201		{object}	types.Response{data=dto.FormattedTransaction}
//	@Failure		400		{object}	types.Response
//	@Failure		404		{object}	types.Response
//	@Security		BearerAuth
//	@Router			/transactions [post]
func (tc *TransactionController) CreateTransaction(c *fiber.Ctx) error {
	userID, _ := middlewares.UserID(c)

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := tc.validator.Struct(req); err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Symbol, transaction type, shares, and price per share are required",
		})
	}

	txType := strings.ToUpper(req.TransactionType)
	if txType != types.TransactionBuy && txType != types.TransactionSell {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Transaction type must be BUY or SELL",
		})
	}

	portfolio, err := findPortfolio(userID)
	if err != nil {
		return c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "No portfolio found for this user",
		})
	}

	date := req.TransactionDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	txn := types.Transaction{
		PortfolioID:     portfolio.ID,
		Symbol:          strings.ToUpper(req.Symbol),
		TransactionType: txType,
		Shares:          req.Shares,
		PricePerShare:   req.PricePerShare,
		TotalAmount:     req.Shares * req.PricePerShare,
		TransactionDate: date,
		Notes:           req.Notes,
	}
	if err := db.DB.Create(&txn).Error; err != nil {
		log.Printf("Transaction insert error: %v", err)
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "An error occurred while creating the transaction",
		})
	}

	return c.Status(201).JSON(types.Response{
		Success: true,
		Data:    formatTransaction(&txn, portfolio),
	})
}

// formatTransaction renders one ledger row the way the history table shows
// it. The "amount" column applies this row's impact to the portfolio's LIVE
// cash balance, recomputed independently per row; it is not a chronological
// running balance.
func formatTransaction(txn *types.Transaction, portfolio *types.Portfolio) dto.FormattedTransaction {
	isNegative := txn.TransactionType == types.TransactionBuy

	sign := "+"
	impact := txn.TotalAmount
	if isNegative {
		sign = "-"
		impact = -txn.TotalAmount
	}

	typeDisplay := "S"
	if isNegative {
		typeDisplay = "B"
	}

	formattedDate := txn.TransactionDate
	if parsed, err := time.Parse("2006-01-02", txn.TransactionDate); err == nil {
		formattedDate = parsed.Format("01/02/2006")
	}

	return dto.FormattedTransaction{
		ID:              txn.ID,
		Date:            txn.TransactionDate,
		FormattedDate:   formattedDate,
		Type:            txn.TransactionType,
		TypeDisplay:     typeDisplay,
		Symbol:          txn.Symbol,
		Quantity:        txn.Shares,
		Price:           txn.PricePerShare,
		FormattedPrice:  "$" + formatUSD(txn.PricePerShare),
		Amount:          "$" + formatUSD(portfolio.CashBalance+impact),
		FormattedAmount: sign + "$" + formatUSD(txn.TotalAmount),
		Status:          "Completed",
		PortfolioName:   portfolio.Name,
	}
}

func InitTransactionRoutes(app *fiber.App) {
	transactionController := NewTransactionController()

	app.Get("/transactions", middlewares.Auth, transactionController.ListTransactions)
	app.Post("/transactions", middlewares.Auth, transactionController.CreateTransaction)
}
