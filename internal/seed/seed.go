package seed

import (
	"context"
	"math/rand"
	"time"

	"finboard-backend/internal/domain"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run wipes the four tables and loads the demo dataset: 8 assets, 10 users,
// 7 holdings and 2-5 transactions per day over the trailing 90 days.
func Run(ctx context.Context, db *gorm.DB) error {
	log.Info().Msg("Clearing existing data")
	for _, m := range []interface{}{
		&domain.PortfolioHolding{}, &domain.Transaction{}, &domain.User{}, &domain.Asset{},
	} {
		if err := db.WithContext(ctx).Where("1 = 1").Delete(m).Error; err != nil {
			return err
		}
	}

	assets := demoAssets()
	if err := db.WithContext(ctx).Create(&assets).Error; err != nil {
		return err
	}
	log.Info().Int("count", len(assets)).Msg("Created assets")

	users := demoUsers()
	if err := db.WithContext(ctx).Create(&users).Error; err != nil {
		return err
	}
	log.Info().Int("count", len(users)).Msg("Created users")

	holdings := demoHoldings(users, assets)
	if err := db.WithContext(ctx).Create(&holdings).Error; err != nil {
		return err
	}
	log.Info().Int("count", len(holdings)).Msg("Created portfolio holdings")

	txs := demoTransactions(users)
	if err := db.WithContext(ctx).CreateInBatches(&txs, 50).Error; err != nil {
		return err
	}
	log.Info().Int("count", len(txs)).Msg("Created transactions")

	return nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func demoAssets() []domain.Asset {
	return []domain.Asset{
		{Symbol: "AAPL", Name: "Apple Inc.", Category: "Technology", CurrentPrice: price("150.25")},
		{Symbol: "GOOGL", Name: "Alphabet Inc.", Category: "Technology", CurrentPrice: price("140.50")},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Category: "Technology", CurrentPrice: price("380.75")},
		{Symbol: "TSLA", Name: "Tesla Inc.", Category: "Automotive", CurrentPrice: price("242.35")},
		{Symbol: "AMZN", Name: "Amazon.com Inc.", Category: "E-commerce", CurrentPrice: price("175.90")},
		{Symbol: "META", Name: "Meta Platforms Inc.", Category: "Technology", CurrentPrice: price("485.50")},
		{Symbol: "NVDA", Name: "NVIDIA Corporation", Category: "Semiconductors", CurrentPrice: price("875.25")},
		{Symbol: "BRK.B", Name: "Berkshire Hathaway Inc.", Category: "Finance", CurrentPrice: price("385.40")},
	}
}

func demoUsers() []domain.User {
	names := []struct {
		name, email, accountType string
	}{
		{"John Doe", "john@example.com", "Personal"},
		{"Jane Smith", "jane@example.com", "Business"},
		{"Robert Johnson", "robert@example.com", "Personal"},
		{"Emily Davis", "emily@example.com", "Personal"},
		{"Michael Wilson", "michael@example.com", "Business"},
		{"Sarah Brown", "sarah@example.com", "Personal"},
		{"David Miller", "david@example.com", "Personal"},
		{"Lisa Anderson", "lisa@example.com", "Business"},
		{"James Taylor", "james@example.com", "Personal"},
		{"Patricia Martinez", "patricia@example.com", "Personal"},
	}
	out := make([]domain.User, len(names))
	for i, n := range names {
		out[i] = domain.User{FullName: n.name, Email: n.email, AccountType: n.accountType}
	}
	return out
}

func demoHoldings(users []domain.User, assets []domain.Asset) []domain.PortfolioHolding {
	lots := []struct {
		user, asset   int
		qty, avgPrice string
	}{
		{0, 0, "50", "145.00"},
		{0, 1, "25", "135.00"},
		{1, 2, "100", "370.00"},
		{1, 3, "30", "230.00"},
		{2, 4, "40", "170.00"},
		{3, 5, "15", "470.00"},
		{4, 6, "10", "850.00"},
	}
	out := make([]domain.PortfolioHolding, len(lots))
	for i, l := range lots {
		out[i] = domain.PortfolioHolding{
			UserID:   users[l.user].ID,
			AssetID:  assets[l.asset].ID,
			Quantity: price(l.qty),
			AvgPrice: price(l.avgPrice),
		}
	}
	return out
}

func demoTransactions(users []domain.User) []domain.Transaction {
	var out []domain.Transaction
	today := time.Now()
	for i := 0; i < 90; i++ {
		day := today.AddDate(0, 0, -i)
		txCount := rand.Intn(4) + 2
		for j := 0; j < txCount; j++ {
			user := users[rand.Intn(len(users))]
			amount := decimal.NewFromInt(int64(rand.Intn(50000) + 1000))
			txType := "deposit"
			if rand.Float64() > 0.7 {
				txType = "withdrawal"
			}
			out = append(out, domain.Transaction{
				UserID:    user.ID,
				Amount:    amount,
				Currency:  "USD",
				Type:      txType,
				Status:    "completed",
				CreatedAt: day,
			})
		}
	}
	return out
}
