// Package repository reads customers and their invoice summaries.
package repository

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/paperledger/paperledger/internal/customer/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListMinimal(ctx context.Context, db *gorm.DB) ([]domain.Field, error) {
	var fields []domain.Field
	err := db.WithContext(ctx).Raw(
		`SELECT id, name FROM customers ORDER BY name ASC`,
	).Scan(&fields).Error
	if err != nil {
		return nil, err
	}
	return fields, nil
}

type searchRow struct {
	ID            snowflake.ID
	Name          string
	Email         string
	ImageURL      string
	InvoiceStatus *string
	InvoiceAmount *int64
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, query string) ([]domain.WithInvoices, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var rows []searchRow
	err := db.WithContext(ctx).Raw(
		`SELECT customers.id AS id,
		        customers.name AS name,
		        customers.email AS email,
		        customers.image_url AS image_url,
		        invoices.status AS invoice_status,
		        invoices.amount AS invoice_amount
		 FROM customers
		 LEFT JOIN invoices ON invoices.customer_id = customers.id
		 WHERE LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ?
		 ORDER BY customers.name ASC, customers.id ASC`,
		pattern,
		pattern,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var result []domain.WithInvoices
	index := map[snowflake.ID]int{}
	for _, row := range rows {
		pos, ok := index[row.ID]
		if !ok {
			result = append(result, domain.WithInvoices{
				Customer: domain.Customer{
					ID:       row.ID,
					Name:     row.Name,
					Email:    row.Email,
					ImageURL: row.ImageURL,
				},
			})
			pos = len(result) - 1
			index[row.ID] = pos
		}
		if row.InvoiceStatus == nil || row.InvoiceAmount == nil {
			continue
		}
		result[pos].Invoices = append(result[pos].Invoices, domain.InvoiceSummary{
			Status:      *row.InvoiceStatus,
			AmountCents: *row.InvoiceAmount,
		})
	}
	return result, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Customer{}).Count(&count).Error
	return count, err
}
