package domain

import "time"

// User is an account holder. Email is unique; deleting a user cascades to its
// transactions and portfolio holdings via the FK constraints on those tables.
type User struct {
	ID          uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FullName    string     `gorm:"column:full_name;type:varchar(100);not null" json:"fullName"`
	Email       string     `gorm:"column:email;type:varchar(100);not null;uniqueIndex" json:"email"`
	AccountType string     `gorm:"column:account_type;type:varchar(30);default:Personal" json:"accountType"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null" json:"createdAt"`
	LastActive  *time.Time `gorm:"column:last_active" json:"lastActive"`
}

func (User) TableName() string {
	return "users"
}
