package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startupfuel.com/dto"
)

func TestListReports_CatalogWithoutBucket(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app, "reader@example.com")

	resp := doRequest(t, app, http.MethodGet, "/reports", "", token)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var response struct {
		Success bool                `json:"success"`
		Data    dto.ReportsResponse `json:"data"`
	}
	parseBody(t, resp, &response)

	require.Len(t, response.Data.Reports, 3)

	first := response.Data.Reports[0]
	assert.Equal(t, "Financial Performance Report 2024", first.Name)
	assert.Equal(t, "ANNUAL", first.Type)
	assert.Equal(t, "December 31, 2024", first.FormattedDate)
	assert.Equal(t, "ready", first.Status)
	// without a bucket the download link degrades to the object key
	assert.Equal(t, "reports/financial-performance-2024.pdf", first.DownloadURL)

	kinds := []string{}
	for _, report := range response.Data.Reports {
		kinds = append(kinds, report.Type)
	}
	assert.Equal(t, []string{"ANNUAL", "QUARTERLY", "MONTHLY"}, kinds)
}

func TestListReports_RequiresAuth(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/reports", "", "")
	defer resp.Body.Close()
	assert.Equal(t, 401, resp.StatusCode)
}
