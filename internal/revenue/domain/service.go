package domain

import "context"

type Service interface {
	List(ctx context.Context) ([]Revenue, error)
}
