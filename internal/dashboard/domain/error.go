package domain

import "errors"

var ErrFetchCardData = errors.New("failed to fetch card data")
