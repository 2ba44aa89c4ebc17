// Package repository persists invoices and serves the joined table queries.
package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/paperledger/paperledger/internal/invoice/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Latest(ctx context.Context, db *gorm.DB, limit int) ([]domain.JoinedRow, error) {
	var rows []domain.JoinedRow
	err := db.WithContext(ctx).Raw(
		`SELECT invoices.id AS id,
		        customers.name AS name,
		        customers.email AS email,
		        customers.image_url AS image_url,
		        invoices.amount AS amount_cents
		 FROM invoices
		 JOIN customers ON invoices.customer_id = customers.id
		 ORDER BY invoices.date DESC
		 LIMIT ?`,
		limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// searchPredicate builds the OR-filter over the joined tables. Terms that
// do not parse as a number or date simply drop that clause.
func searchPredicate(query string) (string, []any) {
	trimmed := strings.TrimSpace(query)
	pattern := "%" + strings.ToLower(trimmed) + "%"

	clauses := []string{
		"LOWER(customers.name) LIKE ?",
		"LOWER(customers.email) LIKE ?",
		"LOWER(invoices.status) LIKE ?",
	}
	args := []any{pattern, pattern, pattern}

	if amount, err := strconv.ParseFloat(trimmed, 64); err == nil {
		clauses = append(clauses, "invoices.amount = ?")
		args = append(args, amount)
	}
	if date, ok := parseQueryDate(trimmed); ok {
		clauses = append(clauses, "invoices.date >= ?")
		args = append(args, date)
	}

	return "(" + strings.Join(clauses, " OR ") + ")", args
}

func parseQueryDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, query string, limit, offset int) ([]domain.TableRow, error) {
	where, args := searchPredicate(query)
	args = append(args, limit, offset)

	var rows []domain.TableRow
	err := db.WithContext(ctx).Raw(
		`SELECT invoices.id AS id,
		        invoices.customer_id AS customer_id,
		        customers.name AS name,
		        customers.email AS email,
		        customers.image_url AS image_url,
		        invoices.amount AS amount_cents,
		        invoices.status AS status,
		        invoices.date AS date
		 FROM invoices
		 JOIN customers ON invoices.customer_id = customers.id
		 WHERE `+where+`
		 ORDER BY invoices.date DESC
		 LIMIT ? OFFSET ?`,
		args...,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) CountSearch(ctx context.Context, db *gorm.DB, query string) (int64, error) {
	where, args := searchPredicate(query)

	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*)
		 FROM invoices
		 JOIN customers ON invoices.customer_id = customers.id
		 WHERE `+where,
		args...,
	).Scan(&count).Error
	return count, err
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).Raw(
		`SELECT id, customer_id, amount, status, date, created_at, updated_at
		 FROM invoices WHERE id = ?`,
		id,
	).Scan(&invoice).Error
	if err != nil {
		return nil, err
	}
	if invoice.ID == 0 {
		return nil, nil
	}
	return &invoice, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO invoices (id, customer_id, amount, status, date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID,
		invoice.CustomerID,
		invoice.AmountCents,
		invoice.Status,
		invoice.Date,
		invoice.CreatedAt,
		invoice.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) (int64, error) {
	tx := db.WithContext(ctx).Exec(
		`UPDATE invoices SET customer_id = ?, amount = ?, status = ?, updated_at = ? WHERE id = ?`,
		invoice.CustomerID,
		invoice.AmountCents,
		invoice.Status,
		invoice.UpdatedAt,
		invoice.ID,
	)
	return tx.RowsAffected, tx.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	tx := db.WithContext(ctx).Exec(`DELETE FROM invoices WHERE id = ?`, id)
	return tx.RowsAffected, tx.Error
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Invoice{}).Count(&count).Error
	return count, err
}

type statusTotal struct {
	Status string
	Total  int64
}

func (r *repo) TotalsByStatus(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	var rows []statusTotal
	err := db.WithContext(ctx).Raw(
		`SELECT status, SUM(amount) AS total FROM invoices GROUP BY status`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.Status] = row.Total
	}
	return totals, nil
}
