package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"startupfuel.com/db"
	"startupfuel.com/dto"
)

// base64 of a throwaway signing secret
const testJWTSecret = "dGVzdC1zaWduaW5nLXNlY3JldA=="

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	t.Setenv("JWT_SECRET", testJWTSecret)
	db.InitInMemory()

	app := fiber.New()
	InitAuthRoutes(app)
	InitPortfolioRoutes(app)
	InitTransactionRoutes(app)
	InitReportRoutes(app)
	return app
}

func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":"secret123","firstName":"Test","lastName":"Investor"}`, email)
	resp := doRequest(t, app, http.MethodPost, "/auth/register", body, "")
	defer resp.Body.Close()
	require.Equal(t, 201, resp.StatusCode)

	var response struct {
		Success bool             `json:"success"`
		Data    dto.AuthResponse `json:"data"`
	}
	parseBody(t, resp, &response)
	require.NotEmpty(t, response.Data.Token)
	return response.Data.Token
}

func doRequest(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func parseBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
