package dashboard

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDashboardApp(t *testing.T) (*fiber.App, *Service) {
	svc := setupDashboardTest(t)
	h := &Handlers{Service: svc}
	app := fiber.New()
	app.Get("/api/dashboard/metrics", h.GetMetrics)
	app.Get("/api/dashboard/visitors", h.GetVisitors)
	app.Get("/api/dashboard/portfolio-summary", h.GetPortfolioSummary)
	app.Get("/api/dashboard/user-activity", h.GetUserActivity)
	return app, svc
}

func TestGetMetrics_ResponseShape(t *testing.T) {
	app, svc := setupDashboardApp(t)
	u := createUser(t, svc.DB, "John Doe", "john@example.com")
	createTransaction(t, svc.DB, u.ID, "1500.00", "Deposit", time.Now())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1500.00", body["totalRevenue"])
	assert.Equal(t, float64(1), body["newCustomers"])
	assert.Equal(t, 4.5, body["growthRate"])

	trending, ok := body["trendingUp"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "+12.5%", trending["revenue"])
	assert.Equal(t, "+4.5%", trending["growth"])
}

func TestGetVisitors_EmptyDataIsArrayNotError(t *testing.T) {
	app, _ := setupDashboardApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/visitors", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Period string                   `json:"period"`
		Data   []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Last 3 months", body.Period)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
}

func TestGetUserActivity_OK(t *testing.T) {
	app, svc := setupDashboardApp(t)
	createUser(t, svc.DB, "John Doe", "john@example.com")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/user-activity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var rows []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "John Doe", rows[0]["userName"])
}
