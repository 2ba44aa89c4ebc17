// Package domain contains the dashboard card summary types.
package domain

import "context"

// CardSummary backs the four dashboard cards. Totals are preformatted
// currency strings.
type CardSummary struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

type Service interface {
	CardSummary(ctx context.Context) (CardSummary, error)
}
