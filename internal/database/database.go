package database

import (
	"finboard-backend/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from DSN. PreferSimpleProtocol disables prepared
// statement caching to avoid 42P05 ("prepared statement already exists") when
// running behind connection poolers (PgBouncer, Supabase, Render).
// TranslateError is on so unique violations and missing rows surface as
// gorm.ErrDuplicatedKey / gorm.ErrRecordNotFound regardless of driver.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
}

// AutoMigrate creates or updates the four core tables. Order matters: users
// and assets first so the cascade FKs on transactions and holdings resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Asset{},
		&domain.Transaction{},
		&domain.PortfolioHolding{},
	)
}
