package dto

// CreateTransactionRequest is the raw ledger insert. It deliberately
// bypasses the settlement engine: cash and holdings are left untouched.
type CreateTransactionRequest struct {
	Symbol          string  `json:"symbol" validate:"required"`
	TransactionType string  `json:"transaction_type" validate:"required"`
	Shares          float64 `json:"shares" validate:"required"`
	PricePerShare   float64 `json:"price_per_share" validate:"required"`
	TransactionDate string  `json:"transaction_date"`
	Notes           string  `json:"notes"`
}

// FormattedTransaction mirrors what the transaction history table renders.
// Amount is the live cash balance with this row's impact applied on top; it
// is not a historical running balance (see the transactions controller).
type FormattedTransaction struct {
	ID              uint    `json:"id"`
	Date            string  `json:"date"`
	FormattedDate   string  `json:"formatted_date"`
	Type            string  `json:"type"`
	TypeDisplay     string  `json:"type_display"`
	Symbol          string  `json:"symbol"`
	Quantity        float64 `json:"quantity"`
	Price           float64 `json:"price"`
	FormattedPrice  string  `json:"formatted_price"`
	Amount          string  `json:"amount"`
	FormattedAmount string  `json:"formatted_amount"`
	Status          string  `json:"status"`
	PortfolioName   string  `json:"portfolio_name"`
}

type TransactionsSummary struct {
	TotalTransactions int    `json:"totalTransactions"`
	NetInvestment     string `json:"netInvestment"`
	BuyOrders         int    `json:"buyOrders"`
	SellOrders        int    `json:"sellOrders"`
}

type TransactionFilters struct {
	Symbol string `json:"symbol"`
	Type   string `json:"type"`
	Limit  int    `json:"limit"`
}

type TransactionsResponse struct {
	Summary      TransactionsSummary    `json:"summary"`
	Transactions []FormattedTransaction `json:"transactions"`
	Filters      TransactionFilters     `json:"filters"`
}
