package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListMinimal(ctx context.Context, db *gorm.DB) ([]Field, error)
	Search(ctx context.Context, db *gorm.DB, query string) ([]WithInvoices, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
