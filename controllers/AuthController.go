package controllers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"startupfuel.com/db"
	"startupfuel.com/dto"
	"startupfuel.com/middlewares"
	"startupfuel.com/types"
)

const initialCashBalance = 100000.00

type AuthController struct {
	validator *validator.Validate
}

func NewAuthController() *AuthController {
	return &AuthController{
		validator: validator.New(),
	}
}

// Register godoc
//
//	@Summary		Register a new investor
//	@Description	Creates the account, its primary portfolio with $100,000 starting cash, and returns a signed token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RegisterRequest	true	"Registration data"
//	@Success		201		{object}	types.Response{data=dto.AuthResponse}
//	@Failure		400		{object}	types.Response	"Missing or malformed fields"
//	@Failure		409		{object}	types.Response	"Email already registered"
//	@Router			/auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := ac.validator.Struct(req); err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Email, password, first name, and last name are required: " + err.Error(),
		})
	}

	var existing types.User
	err := db.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.Status(409).JSON(types.Response{
			Success: false,
			Error:   "An account with this email already exists",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Registration lookup error: %v", err)
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "An error occurred during registration",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Password hash error: %v", err)
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "An error occurred during registration",
		})
	}

	role := req.Role
	if role == "" {
		role = types.RoleInvestor
	}

	user := types.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
	}
	portfolio := types.Portfolio{
		Name:        "Primary Portfolio",
		TotalValue:  0,
		CashBalance: initialCashBalance,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		portfolio.UserID = user.ID
		return tx.Create(&portfolio).Error
	})
	if err != nil {
		log.Printf("Registration error: %v", err)
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "An error occurred during registration",
		})
	}

	token, err := middlewares.GenerateToken(&user)
	if err != nil {
		log.Printf("Token generation error: %v", err)
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "An error occurred during registration",
		})
	}

	return c.Status(201).JSON(types.Response{
		Success: true,
		Data: dto.AuthResponse{
			Message: "User registered successfully",
			Token:   token,
			User:    userResponse(&user),
			Portfolio: &dto.PortfolioBrief{
				ID:                 portfolio.ID,
				Name:               portfolio.Name,
				TotalInvestedValue: portfolio.TotalValue,
				CashBalance:        portfolio.CashBalance,
				TotalValue:         portfolio.TotalValue + portfolio.CashBalance,
			},
		},
	})
}

// Login godoc
//
//	@Summary		Log in
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.LoginRequest	true	"Credentials"
//	@Success		200		{object}	types.Response{data=dto.AuthResponse}
//	@Failure		401		{object}	types.Response	"Bad credentials"
//	@Router			/auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := ac.validator.Struct(req); err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Email and password are required",
		})
	}

	var user types.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(401).JSON(types.Response{
			Success: false,
			Error:   "Email or password is incorrect",
		})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return c.Status(401).JSON(types.Response{
			Success: false,
			Error:   "Email or password is incorrect",
		})
	}

	token, err := middlewares.GenerateToken(&user)
	if err != nil {
		log.Printf("Token generation error: %v", err)
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "An error occurred during login",
		})
	}

	return c.JSON(types.Response{
		Success: true,
		Data: dto.AuthResponse{
			Message: "Login successful",
			Token:   token,
			User:    userResponse(&user),
		},
	})
}

// Me godoc
//
//	@Summary	Current user
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	types.Response{data=dto.UserResponse}
//	@Security	BearerAuth
//	@Router		/auth/me [get]
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(401).JSON(types.Response{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	var user types.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "User not found",
		})
	}

	resp := userResponse(&user)
	resp.CreatedAt = user.CreatedAt.Format("2006-01-02 15:04:05")
	return c.JSON(types.Response{
		Success: true,
		Data:    resp,
	})
}

// Logout is client-side token removal; the endpoint exists so the UI has
// something to call.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return c.JSON(types.Response{
		Success: true,
		Data:    "Logout successful, please remove the token from client storage",
	})
}

func userResponse(user *types.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}
}

func InitAuthRoutes(app *fiber.App) {
	authController := NewAuthController()

	app.Post("/auth/register", authController.Register)
	app.Post("/auth/login", authController.Login)
	app.Get("/auth/me", middlewares.Auth, authController.Me)
	app.Post("/auth/logout", middlewares.Auth, authController.Logout)
}
