package dto

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=investor admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type PortfolioBrief struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	TotalInvestedValue float64 `json:"totalInvestedValue"`
	CashBalance        float64 `json:"cashBalance"`
	TotalValue         float64 `json:"totalValue"`
}

type AuthResponse struct {
	Message   string          `json:"message"`
	Token     string          `json:"token"`
	User      UserResponse    `json:"user"`
	Portfolio *PortfolioBrief `json:"portfolio,omitempty"`
}
