// Package repository reads the revenue reporting rows.
package repository

import (
	"context"

	"github.com/paperledger/paperledger/internal/revenue/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Revenue, error) {
	var rows []domain.Revenue
	err := db.WithContext(ctx).Raw(`SELECT month, revenue FROM revenue`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
