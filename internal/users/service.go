package users

import (
	"context"
	"time"

	"finboard-backend/internal/domain"
	"finboard-backend/internal/pkg/validation"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// CreateUserInput is the accepted create payload; account_type is optional
// and defaults to Personal.
type CreateUserInput struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
}

// UpdateUserInput is the partial field set accepted by PUT. Nil fields are
// left untouched.
type UpdateUserInput struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	AccountType *string `json:"account_type"`
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := s.DB.WithContext(ctx).Find(&out).Error
	return out, err
}

func (s *Service) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	if err := s.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Create validates and inserts a user. A duplicate email surfaces as
// gorm.ErrDuplicatedKey for the handler to map to 409.
func (s *Service) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	accountType := in.AccountType
	if accountType == "" {
		accountType = "Personal"
	}
	u := &domain.User{
		FullName:    in.FullName,
		Email:       in.Email,
		AccountType: accountType,
	}
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// Update applies the provided fields and stamps last_active server-side.
func (s *Service) Update(ctx context.Context, id uint, in UpdateUserInput) (*domain.User, error) {
	if err := validateUpdate(in); err != nil {
		return nil, err
	}

	upd := map[string]interface{}{"last_active": time.Now()}
	if in.FullName != nil {
		upd["full_name"] = *in.FullName
	}
	if in.Email != nil {
		upd["email"] = *in.Email
	}
	if in.AccountType != nil {
		upd["account_type"] = *in.AccountType
	}

	res := s.DB.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(upd)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete hard-deletes the user; transactions and holdings cascade at the
// store level.
func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&domain.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func validateCreate(in CreateUserInput) error {
	if len(in.FullName) < 2 {
		return validation.Errorf("Name must be at least 2 characters")
	}
	if !validation.IsValidEmail(in.Email) {
		return validation.Errorf("Invalid email")
	}
	if in.AccountType != "" && !validation.OneOf(in.AccountType, "Personal", "Business") {
		return validation.Errorf("Invalid account type")
	}
	return nil
}

func validateUpdate(in UpdateUserInput) error {
	if in.FullName != nil && len(*in.FullName) < 2 {
		return validation.Errorf("Name must be at least 2 characters")
	}
	if in.Email != nil && !validation.IsValidEmail(*in.Email) {
		return validation.Errorf("Invalid email")
	}
	if in.AccountType != nil && !validation.OneOf(*in.AccountType, "Personal", "Business") {
		return validation.Errorf("Invalid account type")
	}
	return nil
}
