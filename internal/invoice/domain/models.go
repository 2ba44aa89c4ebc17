// Package domain contains core types for the invoice service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Invoice lifecycle states.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// ValidStatus reports whether s is a known invoice status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice represents a customer invoice. Amounts are stored in integer cents.
type Invoice struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerID  snowflake.ID `gorm:"column:customer_id;not null;index" json:"customer_id"`
	AmountCents int64        `gorm:"column:amount;not null" json:"amount"`
	Status      string       `gorm:"type:text;not null;default:'pending'" json:"status"`
	Date        time.Time    `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// LatestRow is one entry of the latest-invoices card, amount preformatted.
type LatestRow struct {
	ID       snowflake.ID `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	ImageURL string       `json:"image_url,omitempty"`
	Amount   string       `json:"amount"`
}

// TableRow is one row of the filtered invoice table.
type TableRow struct {
	ID          snowflake.ID `json:"id"`
	CustomerID  snowflake.ID `json:"customer_id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	ImageURL    string       `json:"image_url,omitempty"`
	AmountCents int64        `json:"amount"`
	Status      string       `json:"status"`
	Date        time.Time    `json:"date"`
}

// Form is the edit-form projection, amount exposed in dollars.
type Form struct {
	ID         snowflake.ID `json:"id"`
	CustomerID snowflake.ID `json:"customer_id"`
	Amount     float64      `json:"amount"`
	Status     string       `json:"status"`
}

// UpsertRequest carries the raw form fields of a create or update.
type UpsertRequest struct {
	CustomerID string `json:"customer_id" form:"customer_id"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}

// MutationResult is the outcome of a mutation. Errors is non-nil exactly
// when validation failed; Invalidate and RedirectTo tell the caller which
// cached paths to refresh and where to navigate.
type MutationResult struct {
	Errors     map[string][]string `json:"errors,omitempty"`
	Message    string              `json:"message,omitempty"`
	Invoice    *Invoice            `json:"data,omitempty"`
	Invalidate []string            `json:"invalidate,omitempty"`
	RedirectTo string              `json:"redirect_to,omitempty"`
}

// Failed reports whether the mutation was rejected by validation.
func (r *MutationResult) Failed() bool {
	return r != nil && len(r.Errors) > 0
}
