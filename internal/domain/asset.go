package domain

import "github.com/shopspring/decimal"

// Asset is a tradable instrument with a unique ticker symbol.
type Asset struct {
	ID           uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Symbol       string          `gorm:"column:symbol;type:varchar(10);not null;uniqueIndex" json:"symbol"`
	Name         string          `gorm:"column:name;type:varchar(50);not null" json:"name"`
	Category     string          `gorm:"column:category;type:varchar(30);not null" json:"category"`
	CurrentPrice decimal.Decimal `gorm:"column:current_price;type:decimal(10,2);not null" json:"currentPrice"`
}

func (Asset) TableName() string {
	return "assets"
}
