package middlewares

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"startupfuel.com/types"
)

// JWTMiddleware validates the Authorization bearer token against the local
// HS256 signing key and stores the claims in the request context.
func JWTMiddleware(c *fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:     getSigningKeyOrPanic(),
		SuccessHandler: jwtSuccessHandler,
		ErrorHandler:   jwtErrorHandler,
	})(c)
}

// jwtSuccessHandler copies claims into Locals for use in protected routes
func jwtSuccessHandler(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)

	c.Locals("token", token.Raw)
	c.Locals("claims", claims)
	c.Locals("user_id", claims["id"])
	c.Locals("email", claims["email"])
	c.Locals("role", claims["role"])

	return c.Next()
}

func jwtErrorHandler(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.Response{
		Success: false,
		Error:   "Unauthorized - " + err.Error(),
	})
}

// GenerateToken issues a signed token for the user, valid for 24 hours.
func GenerateToken(user *types.User) (string, error) {
	key, err := getSigningKey()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// getSigningKeyOrPanic retrieves the JWT signing key or panics
func getSigningKeyOrPanic() jwtware.SigningKey {
	key, err := getSigningKey()
	if err != nil {
		panic(err)
	}
	return jwtware.SigningKey{Key: key, JWTAlg: "HS256"}
}

// getSigningKey retrieves the JWT signing key from the environment
func getSigningKey() ([]byte, error) {
	encodedSecret := os.Getenv("JWT_SECRET")
	if encodedSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	decodedSecret, err := base64.StdEncoding.DecodeString(encodedSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT_SECRET: %w", err)
	}

	return decodedSecret, nil
}
