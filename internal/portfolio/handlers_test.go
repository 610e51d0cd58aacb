package portfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"finboard-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPortfolioTest(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Asset{}, &domain.PortfolioHolding{}))

	h := &Handlers{Service: &Service{DB: db}}
	app := fiber.New()
	app.Get("/api/portfolio", h.List)
	app.Get("/api/portfolio/user/:userId", h.ListByUser)
	app.Get("/api/portfolio/:id", h.GetByID)
	app.Post("/api/portfolio", h.Create)
	app.Put("/api/portfolio/:id", h.Update)
	app.Delete("/api/portfolio/:id", h.Delete)
	return app, db
}

type fixtures struct {
	user  *domain.User
	asset *domain.Asset
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()
	u := &domain.User{FullName: "John Doe", Email: "john@example.com", AccountType: "Personal"}
	require.NoError(t, db.Create(u).Error)
	a := &domain.Asset{Symbol: "AAPL", Name: "Apple Inc.", Category: "Technology", CurrentPrice: decimal.RequireFromString("150.25")}
	require.NoError(t, db.Create(a).Error)
	return fixtures{user: u, asset: a}
}

func seedHolding(t *testing.T, db *gorm.DB, f fixtures, quantity, avgPrice string) *domain.PortfolioHolding {
	t.Helper()
	h := &domain.PortfolioHolding{
		UserID:   f.user.ID,
		AssetID:  f.asset.ID,
		Quantity: decimal.RequireFromString(quantity),
		AvgPrice: decimal.RequireFromString(avgPrice),
	}
	require.NoError(t, db.Create(h).Error)
	return h
}

func TestListPortfolio_JoinsAssetFields(t *testing.T) {
	app, db := setupPortfolioTest(t)
	f := seedFixtures(t, db)
	seedHolding(t, db, f, "10.5", "120.00")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/portfolio", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	row := out[0]
	assert.Equal(t, "Apple Inc.", row["asset_name"])
	assert.Equal(t, "AAPL", row["asset_symbol"])
	assert.Equal(t, "150.25", row["current_price"])
	assert.Equal(t, "120", row["avg_price"])
	assert.Equal(t, float64(f.user.ID), row["user_id"])
}

func TestGetHolding_ByID(t *testing.T) {
	app, db := setupPortfolioTest(t)
	f := seedFixtures(t, db)
	h := seedHolding(t, db, f, "10", "120.00")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/portfolio/"+h.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var row map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&row))
	assert.Equal(t, h.ID.String(), row["id"])
	assert.Equal(t, "AAPL", row["asset_symbol"])
}

func TestGetHolding_NotFound(t *testing.T) {
	app, _ := setupPortfolioTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/portfolio/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "Portfolio holding not found", errBody["error"])
}

func TestGetHolding_InvalidID(t *testing.T) {
	app, _ := setupPortfolioTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/portfolio/123", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestListPortfolioByUser(t *testing.T) {
	app, db := setupPortfolioTest(t)
	f := seedFixtures(t, db)
	other := &domain.User{FullName: "Jane Smith", Email: "jane@example.com", AccountType: "Personal"}
	require.NoError(t, db.Create(other).Error)
	seedHolding(t, db, f, "10", "120.00")
	seedHolding(t, db, fixtures{user: other, asset: f.asset}, "5", "90.00")

	resp, err := app.Test(httptest.NewRequest("GET", fmt.Sprintf("/api/portfolio/user/%d", f.user.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, float64(f.user.ID), out[0]["user_id"])
}

func TestCreateHolding_AllowsDuplicateLots(t *testing.T) {
	app, db := setupPortfolioTest(t)
	f := seedFixtures(t, db)

	for i := 0; i < 2; i++ {
		body, _ := json.Marshal(map[string]interface{}{
			"user_id":   f.user.ID,
			"asset_id":  f.asset.ID,
			"quantity":  "10",
			"avg_price": "120.00",
		})
		req := httptest.NewRequest("POST", "/api/portfolio", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&domain.PortfolioHolding{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestCreateHolding_Validation(t *testing.T) {
	app, db := setupPortfolioTest(t)
	f := seedFixtures(t, db)

	cases := []map[string]interface{}{
		{"user_id": 0, "asset_id": f.asset.ID, "quantity": "10", "avg_price": "120.00"},
		{"user_id": f.user.ID, "asset_id": 0, "quantity": "10", "avg_price": "120.00"},
		{"user_id": f.user.ID, "asset_id": f.asset.ID, "quantity": "0", "avg_price": "120.00"},
		{"user_id": f.user.ID, "asset_id": f.asset.ID, "quantity": "10", "avg_price": "-1"},
	}
	for _, payload := range cases {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/portfolio", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	}
}

func TestUpdateHolding_StampsLastUpdated(t *testing.T) {
	app, db := setupPortfolioTest(t)
	f := seedFixtures(t, db)
	h := seedHolding(t, db, f, "10", "120.00")

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Model(&domain.PortfolioHolding{}).
		Where("id = ?", h.ID).
		Update("last_updated", stale).Error)

	body, _ := json.Marshal(map[string]interface{}{"quantity": "12.5"})
	req := httptest.NewRequest("PUT", "/api/portfolio/"+h.ID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var updated domain.PortfolioHolding
	require.NoError(t, db.Where("id = ?", h.ID).First(&updated).Error)
	assert.True(t, updated.Quantity.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, updated.LastUpdated.After(stale.Add(time.Hour)), "update refreshes the last_updated stamp")
}

func TestDeleteHolding(t *testing.T) {
	app, db := setupPortfolioTest(t)
	f := seedFixtures(t, db)
	h := seedHolding(t, db, f, "10", "120.00")

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/portfolio/"+h.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var msg map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Equal(t, "Portfolio holding deleted successfully", msg["message"])

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/portfolio/"+h.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
