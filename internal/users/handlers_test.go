package users

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"finboard-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUsersTest(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Asset{}, &domain.Transaction{}, &domain.PortfolioHolding{},
	))

	h := &Handlers{Service: &Service{DB: db}}
	app := fiber.New()
	app.Get("/api/users", h.List)
	app.Get("/api/users/:id", h.GetByID)
	app.Post("/api/users", h.Create)
	app.Put("/api/users/:id", h.Update)
	app.Delete("/api/users/:id", h.Delete)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) int {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp.StatusCode
}

func TestCreateUser_EchoesPersistedRecord(t *testing.T) {
	app, _ := setupUsersTest(t)

	body, _ := json.Marshal(map[string]interface{}{
		"full_name": "John Doe",
		"email":     "john@example.com",
	})
	req := httptest.NewRequest("POST", "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var created map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "John Doe", created["fullName"])
	assert.Equal(t, "john@example.com", created["email"])
	assert.Equal(t, "Personal", created["accountType"], "account type defaults when omitted")
	assert.NotEmpty(t, created["createdAt"])
}

func TestCreateUser_DuplicateEmailConflicts(t *testing.T) {
	app, _ := setupUsersTest(t)

	payload := map[string]interface{}{"full_name": "John Doe", "email": "john@example.com"}
	assert.Equal(t, 201, postJSON(t, app, "/api/users", payload))

	body, _ := json.Marshal(map[string]interface{}{"full_name": "Other Name", "email": "john@example.com"})
	req := httptest.NewRequest("POST", "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "Email already exists", errBody["error"])
}

func TestCreateUser_Validation(t *testing.T) {
	app, _ := setupUsersTest(t)

	cases := []map[string]interface{}{
		{"full_name": "J", "email": "john@example.com"},
		{"full_name": "John Doe", "email": "not-an-email"},
		{"full_name": "John Doe", "email": "john@example.com", "account_type": "Corporate"},
	}
	for _, payload := range cases {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/users", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		var errBody map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
		assert.NotEmpty(t, errBody["error"])
	}
}

func TestGetUser_NotFound(t *testing.T) {
	app, _ := setupUsersTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/users/999", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "User not found", errBody["error"])
}

func TestUpdateUser_StampsLastActive(t *testing.T) {
	app, db := setupUsersTest(t)

	u := &domain.User{FullName: "John Doe", Email: "john@example.com", AccountType: "Personal"}
	require.NoError(t, db.Create(u).Error)
	require.Nil(t, u.LastActive)

	body, _ := json.Marshal(map[string]interface{}{"full_name": "John Updated"})
	req := httptest.NewRequest("PUT", fmt.Sprintf("/api/users/%d", u.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var updated map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "John Updated", updated["fullName"])
	assert.NotNil(t, updated["lastActive"])
}

func TestUpdateUser_NotFound(t *testing.T) {
	app, _ := setupUsersTest(t)

	body, _ := json.Marshal(map[string]interface{}{"full_name": "Nobody Here"})
	req := httptest.NewRequest("PUT", "/api/users/42", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestDeleteUser_CascadesToTransactionsAndHoldings(t *testing.T) {
	app, db := setupUsersTest(t)

	u := &domain.User{FullName: "John Doe", Email: "john@example.com", AccountType: "Personal"}
	require.NoError(t, db.Create(u).Error)
	a := &domain.Asset{Symbol: "AAPL", Name: "Apple Inc.", Category: "Technology", CurrentPrice: decimal.RequireFromString("150.25")}
	require.NoError(t, db.Create(a).Error)
	require.NoError(t, db.Create(&domain.Transaction{
		UserID: u.ID, Amount: decimal.RequireFromString("100.00"), Currency: "USD", Type: "deposit", Status: "completed",
	}).Error)
	require.NoError(t, db.Create(&domain.PortfolioHolding{
		UserID: u.ID, AssetID: a.ID, Quantity: decimal.RequireFromString("10"), AvgPrice: decimal.RequireFromString("80.00"),
	}).Error)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/users/%d", u.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var msg map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Equal(t, "User deleted successfully", msg["message"])

	var txCount, holdingCount int64
	require.NoError(t, db.Model(&domain.Transaction{}).Where("user_id = ?", u.ID).Count(&txCount).Error)
	require.NoError(t, db.Model(&domain.PortfolioHolding{}).Where("user_id = ?", u.ID).Count(&holdingCount).Error)
	assert.Equal(t, int64(0), txCount)
	assert.Equal(t, int64(0), holdingCount)
}

func TestDeleteUser_NotFound(t *testing.T) {
	app, _ := setupUsersTest(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/users/77", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestListUsers(t *testing.T) {
	app, db := setupUsersTest(t)
	require.NoError(t, db.Create(&domain.User{FullName: "John Doe", Email: "john@example.com"}).Error)
	require.NoError(t, db.Create(&domain.User{FullName: "Jane Smith", Email: "jane@example.com"}).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/users", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out, 2)
}
