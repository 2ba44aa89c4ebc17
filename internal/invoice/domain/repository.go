package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// JoinedRow is an invoice joined with its customer, amounts still in cents.
type JoinedRow struct {
	ID          snowflake.ID
	Name        string
	Email       string
	ImageURL    string
	AmountCents int64
}

type Repository interface {
	Latest(ctx context.Context, db *gorm.DB, limit int) ([]JoinedRow, error)
	Search(ctx context.Context, db *gorm.DB, query string, limit, offset int) ([]TableRow, error)
	CountSearch(ctx context.Context, db *gorm.DB, query string) (int64, error)
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Update(ctx context.Context, db *gorm.DB, invoice *Invoice) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	TotalsByStatus(ctx context.Context, db *gorm.DB) (map[string]int64, error)
}
