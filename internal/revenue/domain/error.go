package domain

import "errors"

var ErrFetchRevenue = errors.New("failed to fetch revenue data")
