// Package domain contains core types for the customer service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Customer struct {
	ID        snowflake.ID      `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"not null" json:"name"`
	Email     string            `gorm:"not null" json:"email"`
	ImageURL  string            `gorm:"column:image_url" json:"image_url,omitempty"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }

// Field is the minimal projection used to populate selection lists.
type Field struct {
	ID   snowflake.ID `json:"id"`
	Name string       `json:"name"`
}

// InvoiceSummary is the slice of invoice data needed for table aggregates.
type InvoiceSummary struct {
	Status      string
	AmountCents int64
}

// WithInvoices pairs a customer with its invoice summaries.
type WithInvoices struct {
	Customer
	Invoices []InvoiceSummary
}

// TableRow is a customer table row with formatted aggregates.
type TableRow struct {
	ID            snowflake.ID `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	ImageURL      string       `json:"image_url,omitempty"`
	TotalInvoices int          `json:"total_invoices"`
	TotalPending  string       `json:"total_pending"`
	TotalPaid     string       `json:"total_paid"`
}
