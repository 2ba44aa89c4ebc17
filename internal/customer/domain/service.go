package domain

import "context"

type Service interface {
	List(ctx context.Context) ([]Field, error)
	Table(ctx context.Context, query string) ([]TableRow, error)
	Count(ctx context.Context) (int64, error)
}
