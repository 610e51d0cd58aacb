package transactions

import (
	"context"

	"finboard-backend/internal/domain"
	"finboard-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// CreateTransactionInput is the accepted create payload. Currency and status
// fall back to their column defaults when omitted.
type CreateTransactionInput struct {
	UserID   uint            `json:"user_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Type     string          `json:"type"`
	Status   string          `json:"status"`
}

// UpdateTransactionInput is the partial field set accepted by PUT.
type UpdateTransactionInput struct {
	Amount   *decimal.Decimal `json:"amount"`
	Currency *string          `json:"currency"`
	Type     *string          `json:"type"`
	Status   *string          `json:"status"`
}

func (s *Service) List(ctx context.Context) ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := s.DB.WithContext(ctx).Find(&out).Error
	return out, err
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByUser returns the user's transactions; an unknown user yields an empty
// slice, not an error.
func (s *Service) ListByUser(ctx context.Context, userID uint) ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&out).Error
	return out, err
}

func (s *Service) Create(ctx context.Context, in CreateTransactionInput) (*domain.Transaction, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	status := in.Status
	if status == "" {
		status = "completed"
	}
	t := &domain.Transaction{
		UserID:   in.UserID,
		Amount:   in.Amount,
		Currency: currency,
		Type:     in.Type,
		Status:   status,
	}
	if err := s.DB.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateTransactionInput) (*domain.Transaction, error) {
	if err := validateUpdate(in); err != nil {
		return nil, err
	}

	upd := map[string]interface{}{}
	if in.Amount != nil {
		upd["amount"] = *in.Amount
	}
	if in.Currency != nil {
		upd["currency"] = *in.Currency
	}
	if in.Type != nil {
		upd["type"] = *in.Type
	}
	if in.Status != nil {
		upd["status"] = *in.Status
	}
	if len(upd) == 0 {
		return s.GetByID(ctx, id)
	}

	res := s.DB.WithContext(ctx).Model(&domain.Transaction{}).Where("id = ?", id).Updates(upd)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func validateCreate(in CreateTransactionInput) error {
	if in.UserID == 0 {
		return validation.Errorf("User ID must be a positive integer")
	}
	if !in.Amount.IsPositive() {
		return validation.Errorf("Amount must be positive")
	}
	if !validation.OneOf(in.Type, "deposit", "withdrawal", "trade") {
		return validation.Errorf("Type must be one of: deposit, withdrawal, trade")
	}
	if len(in.Currency) > 10 {
		return validation.Errorf("Currency must be at most 10 characters")
	}
	if in.Status != "" && !validation.OneOf(in.Status, "pending", "completed", "failed") {
		return validation.Errorf("Status must be one of: pending, completed, failed")
	}
	return nil
}

func validateUpdate(in UpdateTransactionInput) error {
	if in.Amount != nil && !in.Amount.IsPositive() {
		return validation.Errorf("Amount must be positive")
	}
	if in.Currency != nil && len(*in.Currency) > 10 {
		return validation.Errorf("Currency must be at most 10 characters")
	}
	if in.Type != nil && !validation.OneOf(*in.Type, "deposit", "withdrawal", "trade") {
		return validation.Errorf("Type must be one of: deposit, withdrawal, trade")
	}
	if in.Status != nil && !validation.OneOf(*in.Status, "pending", "completed", "failed") {
		return validation.Errorf("Status must be one of: pending, completed, failed")
	}
	return nil
}
