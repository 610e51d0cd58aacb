package portfolio

import (
	"context"
	"time"

	"finboard-backend/internal/domain"
	"finboard-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// HoldingView is a holding row joined with its asset, the shape the listing
// endpoints return.
type HoldingView struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uint            `json:"user_id"`
	AssetID      uint            `json:"asset_id"`
	AssetName    string          `json:"asset_name"`
	AssetSymbol  string          `json:"asset_symbol"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgPrice     decimal.Decimal `json:"avg_price"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	LastUpdated  time.Time       `json:"last_updated"`
}

// CreateHoldingInput is the accepted create payload.
type CreateHoldingInput struct {
	UserID   uint            `json:"user_id"`
	AssetID  uint            `json:"asset_id"`
	Quantity decimal.Decimal `json:"quantity"`
	AvgPrice decimal.Decimal `json:"avg_price"`
}

// UpdateHoldingInput is the partial field set accepted by PUT.
type UpdateHoldingInput struct {
	Quantity *decimal.Decimal `json:"quantity"`
	AvgPrice *decimal.Decimal `json:"avg_price"`
}

const holdingSelect = "portfolio_holdings.id, portfolio_holdings.user_id, portfolio_holdings.asset_id, assets.name AS asset_name, assets.symbol AS asset_symbol, portfolio_holdings.quantity, portfolio_holdings.avg_price, assets.current_price, portfolio_holdings.last_updated"

func (s *Service) joined(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Table("portfolio_holdings").
		Select(holdingSelect).
		Joins("INNER JOIN assets ON portfolio_holdings.asset_id = assets.id")
}

func (s *Service) List(ctx context.Context) ([]HoldingView, error) {
	var out []HoldingView
	err := s.joined(ctx).Scan(&out).Error
	return out, err
}

func (s *Service) ListByUser(ctx context.Context, userID uint) ([]HoldingView, error) {
	var out []HoldingView
	err := s.joined(ctx).Where("portfolio_holdings.user_id = ?", userID).Scan(&out).Error
	return out, err
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*HoldingView, error) {
	var out []HoldingView
	if err := s.joined(ctx).Where("portfolio_holdings.id = ?", id).Limit(1).Scan(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &out[0], nil
}

func (s *Service) Create(ctx context.Context, in CreateHoldingInput) (*domain.PortfolioHolding, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	h := &domain.PortfolioHolding{
		UserID:   in.UserID,
		AssetID:  in.AssetID,
		Quantity: in.Quantity,
		AvgPrice: in.AvgPrice,
	}
	if err := s.DB.WithContext(ctx).Create(h).Error; err != nil {
		return nil, err
	}
	return h, nil
}

// Update applies the provided fields and stamps last_updated server-side.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateHoldingInput) (*domain.PortfolioHolding, error) {
	if err := validateUpdate(in); err != nil {
		return nil, err
	}

	upd := map[string]interface{}{"last_updated": time.Now()}
	if in.Quantity != nil {
		upd["quantity"] = *in.Quantity
	}
	if in.AvgPrice != nil {
		upd["avg_price"] = *in.AvgPrice
	}

	res := s.DB.WithContext(ctx).Model(&domain.PortfolioHolding{}).Where("id = ?", id).Updates(upd)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var h domain.PortfolioHolding
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.PortfolioHolding{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func validateCreate(in CreateHoldingInput) error {
	if in.UserID == 0 {
		return validation.Errorf("User ID must be a positive integer")
	}
	if in.AssetID == 0 {
		return validation.Errorf("Asset ID must be a positive integer")
	}
	if !in.Quantity.IsPositive() {
		return validation.Errorf("Quantity must be positive")
	}
	if !in.AvgPrice.IsPositive() {
		return validation.Errorf("Average price must be positive")
	}
	return nil
}

func validateUpdate(in UpdateHoldingInput) error {
	if in.Quantity != nil && !in.Quantity.IsPositive() {
		return validation.Errorf("Quantity must be positive")
	}
	if in.AvgPrice != nil && !in.AvgPrice.IsPositive() {
		return validation.Errorf("Average price must be positive")
	}
	return nil
}
