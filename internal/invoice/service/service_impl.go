// Package service implements invoice queries and mutations.
package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/paperledger/paperledger/internal/invoice/domain"
	"github.com/paperledger/paperledger/internal/invoice/format"
	"github.com/paperledger/paperledger/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	itemsPerPage = 6
	latestLimit  = 5

	invoicesPath = "/dashboard/invoices"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoice.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Latest(ctx context.Context) ([]domain.LatestRow, error) {
	items, err := s.repo.Latest(ctx, s.db, latestLimit)
	if err != nil {
		s.log.Error("failed to fetch the latest invoices", zap.Error(err))
		return nil, domain.ErrFetchLatest
	}

	rows := make([]domain.LatestRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, domain.LatestRow{
			ID:       item.ID,
			Name:     item.Name,
			Email:    item.Email,
			ImageURL: item.ImageURL,
			Amount:   format.Currency(item.AmountCents),
		})
	}
	return rows, nil
}

func (s *Service) ListFiltered(ctx context.Context, query string, page int) ([]domain.TableRow, error) {
	paging := pagination.Pagination{Page: page, PageSize: itemsPerPage}.Normalize(itemsPerPage)

	rows, err := s.repo.Search(ctx, s.db, query, paging.PageSize, paging.Offset())
	if err != nil {
		s.log.Error("failed to fetch invoices", zap.Error(err))
		return nil, domain.ErrFetchList
	}
	if rows == nil {
		rows = []domain.TableRow{}
	}
	return rows, nil
}

func (s *Service) PageCount(ctx context.Context, query string) (int, error) {
	total, err := s.repo.CountSearch(ctx, s.db, query)
	if err != nil {
		s.log.Error("failed to fetch total number of invoices", zap.Error(err))
		return 0, domain.ErrFetchPages
	}
	return pagination.PageCount(total, itemsPerPage), nil
}

// GetByID returns the edit-form projection, or nil when the id does not
// resolve to an invoice. Unparseable ids behave like absent rows.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Form, error) {
	invoiceID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, nil
	}

	invoice, err := s.repo.FindByID(ctx, s.db, invoiceID)
	if err != nil {
		s.log.Error("failed to fetch invoice", zap.Error(err))
		return nil, domain.ErrFetch
	}
	if invoice == nil {
		return nil, nil
	}

	return &domain.Form{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     float64(invoice.AmountCents) / 100,
		Status:     invoice.Status,
	}, nil
}

func (s *Service) Create(ctx context.Context, req domain.UpsertRequest) (*domain.MutationResult, error) {
	customerID, amount, fieldErrs := validateUpsert(req)
	if len(fieldErrs) > 0 {
		return &domain.MutationResult{
			Errors:  fieldErrs,
			Message: "Missing Fields. Failed to Create Invoice.",
		}, nil
	}

	now := time.Now().UTC()
	invoice := &domain.Invoice{
		ID:          s.genID.Generate(),
		CustomerID:  customerID,
		AmountCents: int64(math.Round(amount * 100)),
		Status:      req.Status,
		Date:        now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, invoice); err != nil {
		s.log.Error("failed to create invoice", zap.Error(err))
		return nil, domain.ErrCreate
	}

	return &domain.MutationResult{
		Invoice:    invoice,
		Invalidate: []string{invoicesPath},
		RedirectTo: invoicesPath,
	}, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpsertRequest) (*domain.MutationResult, error) {
	customerID, amount, fieldErrs := validateUpsert(req)
	if len(fieldErrs) > 0 {
		return &domain.MutationResult{
			Errors:  fieldErrs,
			Message: "Missing Fields. Failed to Update Invoice.",
		}, nil
	}

	invoiceID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrUpdate
	}

	// TODO: unify rounding with Create once product signs off.
	invoice := &domain.Invoice{
		ID:          invoiceID,
		CustomerID:  customerID,
		AmountCents: int64(amount * 100),
		Status:      req.Status,
		UpdatedAt:   time.Now().UTC(),
	}

	affected, err := s.repo.Update(ctx, s.db, invoice)
	if err != nil || affected == 0 {
		if err != nil {
			s.log.Error("failed to update invoice", zap.Error(err))
		}
		return nil, domain.ErrUpdate
	}

	return &domain.MutationResult{
		Invoice:    invoice,
		Invalidate: []string{invoicesPath},
		RedirectTo: invoicesPath,
	}, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*domain.MutationResult, error) {
	invoiceID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrDelete
	}

	affected, err := s.repo.Delete(ctx, s.db, invoiceID)
	if err != nil || affected == 0 {
		if err != nil {
			s.log.Error("failed to delete invoice", zap.Error(err))
		}
		return nil, domain.ErrDelete
	}

	return &domain.MutationResult{
		Invalidate: []string{invoicesPath},
	}, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx, s.db)
	if err != nil {
		s.log.Error("failed to fetch invoice count", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (s *Service) TotalsByStatus(ctx context.Context) (map[string]int64, error) {
	totals, err := s.repo.TotalsByStatus(ctx, s.db)
	if err != nil {
		s.log.Error("failed to fetch invoice totals", zap.Error(err))
		return nil, err
	}
	return totals, nil
}

func validateUpsert(req domain.UpsertRequest) (snowflake.ID, float64, map[string][]string) {
	fieldErrs := map[string][]string{}

	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil || customerID == 0 {
		fieldErrs["customerId"] = append(fieldErrs["customerId"], "Please select a customer.")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(req.Amount), 64)
	if err != nil || amount <= 0 {
		fieldErrs["amount"] = append(fieldErrs["amount"], "Please enter an amount greater than $0.")
	}

	if !domain.ValidStatus(req.Status) {
		fieldErrs["status"] = append(fieldErrs["status"], "Please select an invoice status.")
	}

	return customerID, amount, fieldErrs
}
