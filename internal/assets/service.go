package assets

import (
	"context"
	"strings"

	"finboard-backend/internal/domain"
	"finboard-backend/internal/pkg/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// CreateAssetInput is the accepted create payload. Symbols are stored
// uppercased.
type CreateAssetInput struct {
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
}

// UpdateAssetInput is the partial field set accepted by PUT.
type UpdateAssetInput struct {
	Symbol       *string          `json:"symbol"`
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	CurrentPrice *decimal.Decimal `json:"currentPrice"`
}

func (s *Service) List(ctx context.Context) ([]domain.Asset, error) {
	var out []domain.Asset
	err := s.DB.WithContext(ctx).Find(&out).Error
	return out, err
}

func (s *Service) GetByID(ctx context.Context, id uint) (*domain.Asset, error) {
	var a domain.Asset
	if err := s.DB.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetBySymbol looks up by the uppercased ticker symbol.
func (s *Service) GetBySymbol(ctx context.Context, symbol string) (*domain.Asset, error) {
	var a domain.Asset
	if err := s.DB.WithContext(ctx).Where("symbol = ?", strings.ToUpper(symbol)).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Service) Create(ctx context.Context, in CreateAssetInput) (*domain.Asset, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	a := &domain.Asset{
		Symbol:       strings.ToUpper(in.Symbol),
		Name:         in.Name,
		Category:     in.Category,
		CurrentPrice: in.CurrentPrice,
	}
	if err := s.DB.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id uint, in UpdateAssetInput) (*domain.Asset, error) {
	if err := validateUpdate(in); err != nil {
		return nil, err
	}

	upd := map[string]interface{}{}
	if in.Symbol != nil {
		upd["symbol"] = strings.ToUpper(*in.Symbol)
	}
	if in.Name != nil {
		upd["name"] = *in.Name
	}
	if in.Category != nil {
		upd["category"] = *in.Category
	}
	if in.CurrentPrice != nil {
		upd["current_price"] = *in.CurrentPrice
	}
	if len(upd) == 0 {
		return s.mustExist(ctx, id)
	}

	res := s.DB.WithContext(ctx).Model(&domain.Asset{}).Where("id = ?", id).Updates(upd)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&domain.Asset{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// mustExist covers the empty-update case: no fields to write, but a missing
// target still has to 404.
func (s *Service) mustExist(ctx context.Context, id uint) (*domain.Asset, error) {
	return s.GetByID(ctx, id)
}

func validateCreate(in CreateAssetInput) error {
	if in.Symbol == "" || len(in.Symbol) > 10 {
		return validation.Errorf("Symbol must be between 1 and 10 characters")
	}
	if in.Name == "" || len(in.Name) > 50 {
		return validation.Errorf("Name must be between 1 and 50 characters")
	}
	if in.Category == "" || len(in.Category) > 30 {
		return validation.Errorf("Category must be between 1 and 30 characters")
	}
	if !in.CurrentPrice.IsPositive() {
		return validation.Errorf("Current price must be positive")
	}
	return nil
}

func validateUpdate(in UpdateAssetInput) error {
	if in.Symbol != nil && (*in.Symbol == "" || len(*in.Symbol) > 10) {
		return validation.Errorf("Symbol must be between 1 and 10 characters")
	}
	if in.Name != nil && (*in.Name == "" || len(*in.Name) > 50) {
		return validation.Errorf("Name must be between 1 and 50 characters")
	}
	if in.Category != nil && (*in.Category == "" || len(*in.Category) > 30) {
		return validation.Errorf("Category must be between 1 and 30 characters")
	}
	if in.CurrentPrice != nil && !in.CurrentPrice.IsPositive() {
		return validation.Errorf("Current price must be positive")
	}
	return nil
}
