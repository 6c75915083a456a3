package dto

type TransactionSettledDTO struct {
	Uid             string  `json:"uid"`
	PortfolioID     uint    `json:"portfolioId"`
	Symbol          string  `json:"symbol"`
	TransactionType string  `json:"transactionType"`
	Shares          float64 `json:"shares"`
	PricePerShare   float64 `json:"pricePerShare"`
	TotalAmount     float64 `json:"totalAmount"`
	TransactionDate string  `json:"transactionDate"`
}
