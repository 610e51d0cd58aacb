package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single money movement on a user's account. Type is a
// free-form string by convention (deposit / withdrawal / trade), not enforced
// at the store level; the amount's sign convention is caller-determined.
type Transaction struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    uint            `gorm:"column:user_id;not null" json:"userId"`
	User      *User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	Currency  string          `gorm:"column:currency;type:varchar(10);default:USD;not null" json:"currency"`
	Type      string          `gorm:"column:type;type:varchar(30);not null" json:"type"`
	Status    string          `gorm:"column:status;type:varchar(20);default:completed" json:"status"`
	CreatedAt time.Time       `gorm:"column:created_at;not null" json:"createdAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
