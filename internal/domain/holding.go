package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PortfolioHolding is a user's recorded position (quantity + average cost) in
// one asset. (user_id, asset_id) is intentionally not unique; a user may hold
// several lots of the same asset.
type PortfolioHolding struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID      uint            `gorm:"column:user_id;not null" json:"userId"`
	User        *User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	AssetID     uint            `gorm:"column:asset_id;not null" json:"assetId"`
	Asset       *Asset          `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE" json:"-"`
	Quantity    decimal.Decimal `gorm:"column:quantity;type:decimal(12,4);not null" json:"quantity"`
	AvgPrice    decimal.Decimal `gorm:"column:avg_price;type:decimal(10,2);not null" json:"avgPrice"`
	LastUpdated time.Time       `gorm:"column:last_updated;not null" json:"lastUpdated"`
}

func (PortfolioHolding) TableName() string {
	return "portfolio_holdings"
}

func (h *PortfolioHolding) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.LastUpdated.IsZero() {
		h.LastUpdated = time.Now()
	}
	return nil
}
