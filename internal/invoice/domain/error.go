package domain

import "errors"

var (
	ErrFetchLatest = errors.New("failed to fetch the latest invoices")
	ErrFetchList   = errors.New("failed to fetch invoices")
	ErrFetchPages  = errors.New("failed to fetch total number of invoices")
	ErrFetch       = errors.New("failed to fetch invoice")
	ErrCreate      = errors.New("failed to create invoice")
	ErrUpdate      = errors.New("failed to update invoice")
	ErrDelete      = errors.New("failed to delete invoice")
)
