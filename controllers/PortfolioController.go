package controllers

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"startupfuel.com/controllers/settlement"
	"startupfuel.com/db"
	"startupfuel.com/dto"
	"startupfuel.com/market"
	"startupfuel.com/middlewares"
	"startupfuel.com/services"
	"startupfuel.com/types"
)

type PortfolioController struct {
	validator *validator.Validate
}

func NewPortfolioController() *PortfolioController {
	return &PortfolioController{
		validator: validator.New(),
	}
}

func findPortfolio(userID uint) (*types.Portfolio, error) {
	var portfolio types.Portfolio
	err := db.DB.Where("user_id = ?", userID).First(&portfolio).Error
	if err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// GetPortfolio godoc
//
//	@Summary		Portfolio summary
//	@Description	Returns the portfolio's derived metrics and the per-symbol market-value allocation.
//	@Tags			Portfolio
//	@Produce		json
//	@Success		200	{object}	types.Response{data=dto.PortfolioResponse}
//	@Failure		404	{object}	types.Response	"No portfolio for this user"
//	@Security		BearerAuth
//	@Router			/portfolio [get]
func (pc *PortfolioController) GetPortfolio(c *fiber.Ctx) error {
	userID, _ := middlewares.UserID(c)

	portfolio, err := findPortfolio(userID)
	if err != nil {
		return c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "No portfolio found for this user",
		})
	}

	snapshot, err := services.Snapshot(db.DB, portfolio.ID)
	if err != nil {
		log.Printf("Portfolio snapshot error: %v", err)
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "An error occurred while fetching portfolio data",
		})
	}

	// day change is a placeholder until a price-history provider exists
	dayChange := services.Round2(rand.Float64()*2000 - 1000)

	return c.JSON(types.Response{
		Success: true,
		Data: dto.PortfolioResponse{
			Portfolio: dto.PortfolioSummary{
				ID:                    portfolio.ID,
				Name:                  portfolio.Name,
				TotalInvestedValue:    services.Round2(snapshot.InvestedValue),
				CashBalance:           portfolio.CashBalance,
				TotalGainLoss:         services.Round2(snapshot.TotalGainLoss),
				TotalReturnPercentage: snapshot.TotalReturnPercentage,
				DayChange:             dayChange,
				DayChangePercentage:   0,
				TotalAssets:           snapshot.TotalAssets,
				CreatedAt:             portfolio.CreatedAt.Format("2006-01-02 15:04:05"),
				UpdatedAt:             portfolio.UpdatedAt.Format("2006-01-02 15:04:05"),
			},
			AssetAllocation: snapshot.Allocations,
		},
	})
}

// GetAssets godoc
//
//	@Summary	Holdings with unrealized gain/loss
//	@Tags		Portfolio
//	@Produce	json
//	@Success	200	{object}	types.Response{data=[]dto.AssetResponse}
//	@Failure	404	{object}	types.Response
//	@Security	BearerAuth
//	@Router		/portfolio/assets [get]
func (pc *PortfolioController) GetAssets(c *fiber.Ctx) error {
	userID, _ := middlewares.UserID(c)

	portfolio, err := findPortfolio(userID)
	if err != nil {
		return c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "No portfolio found for this user",
		})
	}

	var holdings []types.Holding
	err = db.DB.Where("portfolio_id = ?", portfolio.ID).
		Order("current_price * shares DESC").
		Find(&holdings).Error
	if err != nil {
		log.Printf("Assets fetch error: %v", err)
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "An error occurred while fetching asset data",
		})
	}

	assets := make([]dto.AssetResponse, 0, len(holdings))
	for _, h := range holdings {
		returnPct := 0.0
		if h.PurchasePrice > 0 {
			returnPct = services.Round2((h.CurrentPrice - h.PurchasePrice) / h.PurchasePrice * 100)
		}
		assets = append(assets, dto.AssetResponse{
			ID:                 h.ID,
			PortfolioID:        h.PortfolioID,
			Symbol:             h.Symbol,
			Shares:             h.Shares,
			PurchasePrice:      h.PurchasePrice,
			CurrentPrice:       h.CurrentPrice,
			PurchaseDate:       h.PurchaseDate,
			UnrealizedGainLoss: services.Round2((h.CurrentPrice - h.PurchasePrice) * h.Shares),
			ReturnPercentage:   returnPct,
		})
	}

	return c.JSON(types.Response{
		Success: true,
		Data:    fiber.Map{"assets": assets},
	})
}

// GetPerformance godoc
//
//	@Summary		Portfolio value time series
//	@Description	Synthetic series for the dashboard chart; not a historical reconstruction.
//	@Tags			Portfolio
//	@Produce		json
//	@Param			period	query		string	false	"1W|1M|3M|6M|1Y|ALL"	default(1M)
//	@Success		200		{object}	types.Response{data=dto.PerformanceResponse}
//	@Failure		404		{object}	types.Response
//	@Security		BearerAuth
//	@Router			/portfolio/performance [get]
func (pc *PortfolioController) GetPerformance(c *fiber.Ctx) error {
	userID, _ := middlewares.UserID(c)
	period := c.Query("period", "1M")

	portfolio, err := findPortfolio(userID)
	if err != nil {
		return c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "No portfolio found for this user",
		})
	}

	snapshot, err := services.Snapshot(db.DB, portfolio.ID)
	if err != nil {
		log.Printf("Performance snapshot error: %v", err)
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "An error occurred while fetching performance metrics",
		})
	}

	baseValue := snapshot.InvestedValue + portfolio.CashBalance

	return c.JSON(types.Response{
		Success: true,
		Data: dto.PerformanceResponse{
			Period:      period,
			Performance: services.GeneratePerformanceSeries(period, baseValue),
		},
	})
}

// TradeAsset godoc
//
//	@Summary		Buy or sell a supported stock
//	@Description	Runs the settlement engine: validates the order, adjusts the holding and cash balance, appends the ledger row and recomputes the invested value.
//	@Tags			Portfolio
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.BuySellRequest	true	"Order"
//	@Success		201		{object}	types.Response
//	@Failure		400		{object}	types.Response	"Validation or business-rule failure"
//	@Failure		404		{object}	types.Response	"No portfolio for this user"
//	@Security		BearerAuth
//	@Router			/portfolio/assets [post]
func (pc *PortfolioController) TradeAsset(c *fiber.Ctx) error {
	userID, _ := middlewares.UserID(c)

	var req dto.BuySellRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := pc.validator.Struct(req); err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Symbol, shares, purchase price, current price, and type are required",
		})
	}

	portfolio, err := findPortfolio(userID)
	if err != nil {
		return c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "No portfolio found for this user",
		})
	}

	_, err = settlement.Settle(db.DB, portfolio.ID, settlement.Order{
		Symbol:        req.Symbol,
		Shares:        req.Shares,
		PricePerShare: req.PurchasePrice,
		CurrentPrice:  req.CurrentPrice,
		Direction:     req.Type,
	})
	if err != nil {
		return tradeError(c, err)
	}

	return c.Status(201).JSON(types.Response{
		Success: true,
		Data:    "Asset added/removed successfully",
	})
}

// tradeError maps settlement failures onto HTTP statuses. Every business
// error means nothing was mutated.
func tradeError(c *fiber.Ctx, err error) error {
	var (
		unsupported *types.UnsupportedAssetError
		invalid     *types.InvalidOrderError
		noFunds     *types.InsufficientFundsError
		noShares    *types.InsufficientSharesError
		notOwned    *types.AssetNotOwnedError
	)

	switch {
	case errors.As(err, &unsupported):
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error: fmt.Sprintf("Only these stocks are supported: %s",
				strings.Join(market.SupportedList(), ", ")),
		})
	case errors.As(err, &invalid):
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   invalid.Message,
		})
	case errors.As(err, &noFunds):
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error: fmt.Sprintf("You need $%.2f but only have $%.2f available",
				noFunds.Required, noFunds.Available),
		})
	case errors.As(err, &noShares):
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error: fmt.Sprintf("You only have %g shares but trying to sell %g shares",
				noShares.Available, noShares.Requested),
		})
	case errors.As(err, &notOwned):
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "You don't own any shares of " + notOwned.Symbol,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "No portfolio found for this user",
		})
	default:
		log.Printf("Settlement error: %v", err)
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "An error occurred while processing the buy/sell transaction",
		})
	}
}

// GetAllocations godoc
//
//	@Summary	Market-value allocation percentages
//	@Tags		Portfolio
//	@Produce	json
//	@Success	200	{object}	types.Response{data=dto.AllocationsResponse}
//	@Security	BearerAuth
//	@Router		/portfolio/allocations [get]
func (pc *PortfolioController) GetAllocations(c *fiber.Ctx) error {
	userID, _ := middlewares.UserID(c)

	portfolio, err := findPortfolio(userID)
	if err != nil {
		return c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "No portfolio found for this user",
		})
	}

	var holdings []types.Holding
	err = db.DB.Where("portfolio_id = ?", portfolio.ID).
		Order("current_price * shares DESC").
		Find(&holdings).Error
	if err != nil {
		log.Printf("Allocations fetch error: %v", err)
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "An error occurred while calculating asset allocations",
		})
	}

	allocations, totalValue := services.BuildAllocations(holdings)

	resp := dto.AllocationsResponse{
		Allocations: allocations,
		TotalValue:  totalValue,
	}
	if len(allocations) == 0 {
		resp.Message = "No assets found in portfolio"
	}

	return c.JSON(types.Response{
		Success: true,
		Data:    resp,
	})
}

func InitPortfolioRoutes(app *fiber.App) {
	portfolioController := NewPortfolioController()

	app.Get("/portfolio", middlewares.Auth, portfolioController.GetPortfolio)
	app.Get("/portfolio/assets", middlewares.Auth, portfolioController.GetAssets)
	app.Get("/portfolio/performance", middlewares.Auth, portfolioController.GetPerformance)
	app.Post("/portfolio/assets", middlewares.Auth, portfolioController.TradeAsset)
	app.Get("/portfolio/allocations", middlewares.Auth, portfolioController.GetAllocations)
}
