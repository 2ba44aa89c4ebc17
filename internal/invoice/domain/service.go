package domain

import "context"

type Service interface {
	Latest(ctx context.Context) ([]LatestRow, error)
	ListFiltered(ctx context.Context, query string, page int) ([]TableRow, error)
	PageCount(ctx context.Context, query string) (int, error)
	GetByID(ctx context.Context, id string) (*Form, error)
	Create(ctx context.Context, req UpsertRequest) (*MutationResult, error)
	Update(ctx context.Context, id string, req UpsertRequest) (*MutationResult, error)
	Delete(ctx context.Context, id string) (*MutationResult, error)
	Count(ctx context.Context) (int64, error)
	TotalsByStatus(ctx context.Context) (map[string]int64, error)
}
