package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startupfuel.com/db"
	"startupfuel.com/dto"
	"startupfuel.com/types"
)

func TestRegister_CreatesUserAndPortfolio(t *testing.T) {
	app := setupTestApp(t)

	body := `{"email":"new@example.com","password":"secret123","firstName":"Ada","lastName":"Investor"}`
	resp := doRequest(t, app, http.MethodPost, "/auth/register", body, "")
	defer resp.Body.Close()
	require.Equal(t, 201, resp.StatusCode)

	var response struct {
		Success bool             `json:"success"`
		Data    dto.AuthResponse `json:"data"`
	}
	parseBody(t, resp, &response)

	assert.True(t, response.Success)
	assert.NotEmpty(t, response.Data.Token)
	assert.Equal(t, "new@example.com", response.Data.User.Email)
	assert.Equal(t, types.RoleInvestor, response.Data.User.Role)

	require.NotNil(t, response.Data.Portfolio)
	assert.Equal(t, "Primary Portfolio", response.Data.Portfolio.Name)
	assert.Equal(t, 100000.00, response.Data.Portfolio.CashBalance)
	assert.Equal(t, 0.0, response.Data.Portfolio.TotalInvestedValue)

	var portfolio types.Portfolio
	require.NoError(t, db.DB.Where("user_id = ?", response.Data.User.ID).First(&portfolio).Error)
	assert.Equal(t, 100000.00, portfolio.CashBalance)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app := setupTestApp(t)
	registerTestUser(t, app, "taken@example.com")

	body := `{"email":"taken@example.com","password":"secret123","firstName":"Other","lastName":"Person"}`
	resp := doRequest(t, app, http.MethodPost, "/auth/register", body, "")
	defer resp.Body.Close()

	assert.Equal(t, 409, resp.StatusCode)

	var response types.Response
	parseBody(t, resp, &response)
	assert.False(t, response.Success)
	assert.Equal(t, "An account with this email already exists", response.Error)
}

func TestRegister_MissingFields(t *testing.T) {
	app := setupTestApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"no email", `{"password":"secret123","firstName":"A","lastName":"B"}`},
		{"bad email", `{"email":"not-an-email","password":"secret123","firstName":"A","lastName":"B"}`},
		{"short password", `{"email":"a@b.com","password":"123","firstName":"A","lastName":"B"}`},
		{"no name", `{"email":"a@b.com","password":"secret123"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodPost, "/auth/register", tc.body, "")
			defer resp.Body.Close()
			assert.Equal(t, 400, resp.StatusCode)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	app := setupTestApp(t)
	registerTestUser(t, app, "login@example.com")

	resp := doRequest(t, app, http.MethodPost, "/auth/login",
		`{"email":"login@example.com","password":"secret123"}`, "")
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var response struct {
		Success bool             `json:"success"`
		Data    dto.AuthResponse `json:"data"`
	}
	parseBody(t, resp, &response)

	assert.True(t, response.Success)
	assert.NotEmpty(t, response.Data.Token)
	assert.Equal(t, "Login successful", response.Data.Message)
}

func TestLogin_BadCredentials(t *testing.T) {
	app := setupTestApp(t)
	registerTestUser(t, app, "victim@example.com")

	cases := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"victim@example.com","password":"wrong-pass"}`},
		{"unknown email", `{"email":"nobody@example.com","password":"secret123"}`},
	}

	// both cases must be indistinguishable to the caller
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodPost, "/auth/login", tc.body, "")
			defer resp.Body.Close()

			assert.Equal(t, 401, resp.StatusCode)

			var response types.Response
			parseBody(t, resp, &response)
			assert.Equal(t, "Email or password is incorrect", response.Error)
		})
	}
}

func TestMe_ReturnsCurrentUser(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app, "me@example.com")

	resp := doRequest(t, app, http.MethodGet, "/auth/me", "", token)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var response struct {
		Success bool             `json:"success"`
		Data    dto.UserResponse `json:"data"`
	}
	parseBody(t, resp, &response)

	assert.Equal(t, "me@example.com", response.Data.Email)
	assert.NotEmpty(t, response.Data.CreatedAt)
}

func TestMe_RejectsMissingToken(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/auth/me", "", "")
	defer resp.Body.Close()
	assert.Equal(t, 401, resp.StatusCode)
}

func TestMe_RejectsGarbageToken(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/auth/me", "", "not.a.token")
	defer resp.Body.Close()
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app, "bye@example.com")

	resp := doRequest(t, app, http.MethodPost, "/auth/logout", "", token)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
}
