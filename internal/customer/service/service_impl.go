// Package service implements customer queries for the dashboard.
package service

import (
	"context"

	"github.com/paperledger/paperledger/internal/customer/domain"
	"github.com/paperledger/paperledger/internal/invoice/format"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("customer.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Field, error) {
	fields, err := s.repo.ListMinimal(ctx, s.db)
	if err != nil {
		s.log.Error("failed to fetch all customers", zap.Error(err))
		return nil, domain.ErrFetchAll
	}
	return fields, nil
}

func (s *Service) Table(ctx context.Context, query string) ([]domain.TableRow, error) {
	customers, err := s.repo.Search(ctx, s.db, query)
	if err != nil {
		s.log.Error("failed to fetch customer table", zap.Error(err))
		return nil, domain.ErrFetchTable
	}

	rows := make([]domain.TableRow, 0, len(customers))
	for _, customer := range customers {
		var pending, paid int64
		for _, inv := range customer.Invoices {
			switch inv.Status {
			case "pending":
				pending += inv.AmountCents
			case "paid":
				paid += inv.AmountCents
			}
		}
		rows = append(rows, domain.TableRow{
			ID:            customer.ID,
			Name:          customer.Name,
			Email:         customer.Email,
			ImageURL:      customer.ImageURL,
			TotalInvoices: len(customer.Invoices),
			TotalPending:  format.Currency(pending),
			TotalPaid:     format.Currency(paid),
		})
	}
	return rows, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx, s.db)
	if err != nil {
		s.log.Error("failed to fetch customer count", zap.Error(err))
		return 0, err
	}
	return count, nil
}
