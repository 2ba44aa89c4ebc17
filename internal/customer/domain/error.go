package domain

import "errors"

var (
	ErrFetchAll   = errors.New("failed to fetch all customers")
	ErrFetchTable = errors.New("failed to fetch customer table")
)
