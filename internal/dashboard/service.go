package dashboard

import (
	"context"
	"time"

	"finboard-backend/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service computes the read-only dashboard aggregations. It is also the single
// source for entity counts so other modules (documents) never duplicate the
// queries.
type Service struct {
	DB *gorm.DB
}

// growthRate is not derived from data; a period-over-period computation was
// never defined, so the dashboard ships this constant and the UI renders it
// as-is.
const growthRate = 4.5

// Metrics is the /dashboard/metrics response shape.
type Metrics struct {
	TotalRevenue   string  `json:"totalRevenue"`
	NewCustomers   int64   `json:"newCustomers"`
	ActiveAccounts int64   `json:"activeAccounts"`
	GrowthRate     float64 `json:"growthRate"`
	TrendingUp     Trends  `json:"trendingUp"`
}

// Trends holds the static trend indicator strings shown next to each metric.
type Trends struct {
	Revenue   string `json:"revenue"`
	Customers string `json:"customers"`
	Accounts  string `json:"accounts"`
	Growth    string `json:"growth"`
}

// Metrics computes the four summary metrics. Revenue counts only transactions
// whose type is exactly "Deposit" (case-sensitive).
func (s *Service) Metrics(ctx context.Context) (*Metrics, error) {
	var total decimal.Decimal
	row := s.DB.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("type = ?", "Deposit").
		Select("COALESCE(SUM(amount), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return nil, err
	}

	newCustomers, err := s.UserCount(ctx)
	if err != nil {
		return nil, err
	}
	activeAccounts, err := s.ActiveAccountCount(ctx)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		TotalRevenue:   total.StringFixed(2),
		NewCustomers:   newCustomers,
		ActiveAccounts: activeAccounts,
		GrowthRate:     growthRate,
		TrendingUp: Trends{
			Revenue:   "+12.5%",
			Customers: "-20%",
			Accounts:  "+12.5%",
			Growth:    "+4.5%",
		},
	}, nil
}

// VisitorPoint is one daily bucket of the visitors chart. Date is the
// already-formatted short label ("Jan 2"), not a machine-sortable date.
type VisitorPoint struct {
	Date         string `json:"date"`
	Visitors     int64  `json:"visitors"`
	Transactions int64  `json:"transactions"`
}

// VisitorSeries is the /dashboard/visitors response shape.
type VisitorSeries struct {
	Period string         `json:"period"`
	Data   []VisitorPoint `json:"data"`
}

const visitorWindowDays = 90

type dayBucket struct {
	Day          string
	Visitors     int64
	Transactions int64
}

// Visitors buckets transactions by calendar day over the trailing 90-day
// window: distinct user ids per day as visitors, row counts as transactions.
// Rows are ordered by day before the labels are formatted; days with no
// transactions are simply absent.
func (s *Service) Visitors(ctx context.Context) (*VisitorSeries, error) {
	cutoff := time.Now().AddDate(0, 0, -visitorWindowDays)

	var rows []dayBucket
	if err := s.DB.WithContext(ctx).
		Model(&domain.Transaction{}).
		Select("DATE(created_at) AS day, COUNT(DISTINCT user_id) AS visitors, COUNT(*) AS transactions").
		Where("created_at >= ?", cutoff).
		Group("DATE(created_at)").
		Order("DATE(created_at)").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	data := make([]VisitorPoint, len(rows))
	for i, r := range rows {
		data[i] = VisitorPoint{
			Date:         formatDayLabel(r.Day),
			Visitors:     r.Visitors,
			Transactions: r.Transactions,
		}
	}

	return &VisitorSeries{Period: "Last 3 months", Data: data}, nil
}

// formatDayLabel renders a DATE() result as the short chart label ("Jan 2").
// Both drivers return dates in text form ("2006-01-02"); anything unparsable
// passes through untouched.
func formatDayLabel(day string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, day); err == nil {
			return t.Format("Jan 2")
		}
	}
	return day
}

// HoldingSummary is one per-holding valuation row of /dashboard/portfolio-summary.
type HoldingSummary struct {
	UserID       uint            `json:"userId"`
	AssetName    string          `json:"assetName"`
	AssetSymbol  string          `json:"assetSymbol"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgPrice     decimal.Decimal `json:"avgPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	TotalValue   string          `json:"totalValue"`
	GainLoss     string          `json:"gainLoss"`
}

type holdingRow struct {
	UserID       uint
	AssetName    string
	AssetSymbol  string
	Quantity     decimal.Decimal
	AvgPrice     decimal.Decimal
	CurrentPrice decimal.Decimal
}

// PortfolioSummary joins holdings to assets and values each holding row:
// totalValue = quantity x currentPrice, gainLoss = (currentPrice - avgPrice)
// x quantity, both rounded to two decimals. One row per holding, ordered by
// user id; no server-side grouping or totals.
func (s *Service) PortfolioSummary(ctx context.Context) ([]HoldingSummary, error) {
	var rows []holdingRow
	if err := s.DB.WithContext(ctx).
		Table("portfolio_holdings").
		Select("portfolio_holdings.user_id, assets.name AS asset_name, assets.symbol AS asset_symbol, portfolio_holdings.quantity, portfolio_holdings.avg_price, assets.current_price").
		Joins("INNER JOIN assets ON portfolio_holdings.asset_id = assets.id").
		Order("portfolio_holdings.user_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]HoldingSummary, len(rows))
	for i, r := range rows {
		out[i] = HoldingSummary{
			UserID:       r.UserID,
			AssetName:    r.AssetName,
			AssetSymbol:  r.AssetSymbol,
			Quantity:     r.Quantity,
			AvgPrice:     r.AvgPrice,
			CurrentPrice: r.CurrentPrice,
			TotalValue:   r.Quantity.Mul(r.CurrentPrice).StringFixed(2),
			GainLoss:     r.CurrentPrice.Sub(r.AvgPrice).Mul(r.Quantity).StringFixed(2),
		}
	}
	return out, nil
}

// UserActivity is one per-user transaction rollup row.
type UserActivity struct {
	UserID            uint       `json:"userId"`
	UserName          string     `json:"userName"`
	TotalTransactions int64      `json:"totalTransactions"`
	TotalSpent        string     `json:"totalSpent"`
	TotalDeposited    string     `json:"totalDeposited"`
	LastActive        *time.Time `json:"lastActive"`
}

type activityRow struct {
	UserID            uint
	UserName          string
	TotalTransactions int64
	TotalSpent        decimal.Decimal
	TotalDeposited    decimal.Decimal
	LastActive        *time.Time
}

// UserActivityRollup left-joins users to transactions and sums lowercase
// "withdrawal" spending and "deposit" income per user. Note the lowercase
// buckets here versus the metrics aggregator's "Deposit" filter; both are
// deliberate.
func (s *Service) UserActivityRollup(ctx context.Context) ([]UserActivity, error) {
	var rows []activityRow
	if err := s.DB.WithContext(ctx).
		Table("users").
		Select("users.id AS user_id, users.full_name AS user_name, COUNT(transactions.id) AS total_transactions, COALESCE(SUM(CASE WHEN transactions.type = 'withdrawal' THEN transactions.amount ELSE 0 END), 0) AS total_spent, COALESCE(SUM(CASE WHEN transactions.type = 'deposit' THEN transactions.amount ELSE 0 END), 0) AS total_deposited, users.last_active").
		Joins("LEFT JOIN transactions ON users.id = transactions.user_id").
		Group("users.id, users.full_name, users.last_active").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]UserActivity, len(rows))
	for i, r := range rows {
		out[i] = UserActivity{
			UserID:            r.UserID,
			UserName:          r.UserName,
			TotalTransactions: r.TotalTransactions,
			TotalSpent:        r.TotalSpent.StringFixed(2),
			TotalDeposited:    r.TotalDeposited.StringFixed(2),
			LastActive:        r.LastActive,
		}
	}
	return out, nil
}

// UserCount counts all user rows ("new customers" is not filtered by
// recency).
func (s *Service) UserCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&domain.User{}).Count(&n).Error
	return n, err
}

// TransactionCount counts all transaction rows.
func (s *Service) TransactionCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&domain.Transaction{}).Count(&n).Error
	return n, err
}

// AssetCount counts all asset rows.
func (s *Service) AssetCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&domain.Asset{}).Count(&n).Error
	return n, err
}

// ActiveAccountCount counts distinct user ids present in portfolio holdings.
func (s *Service) ActiveAccountCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&domain.PortfolioHolding{}).Distinct("user_id").Count(&n).Error
	return n, err
}

// UserTransactionCount counts transactions belonging to one user.
func (s *Service) UserTransactionCount(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&domain.Transaction{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
