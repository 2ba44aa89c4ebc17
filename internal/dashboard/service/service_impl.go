// Package service joins the dashboard card sub-queries.
package service

import (
	"context"

	customerdomain "github.com/paperledger/paperledger/internal/customer/domain"
	"github.com/paperledger/paperledger/internal/dashboard/domain"
	invoicedomain "github.com/paperledger/paperledger/internal/invoice/domain"
	"github.com/paperledger/paperledger/internal/invoice/format"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Params struct {
	fx.In

	Log         *zap.Logger
	InvoiceSvc  invoicedomain.Service
	CustomerSvc customerdomain.Service
}

type Service struct {
	log         *zap.Logger
	invoiceSvc  invoicedomain.Service
	customerSvc customerdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		log:         p.Log.Named("dashboard.service"),
		invoiceSvc:  p.InvoiceSvc,
		customerSvc: p.CustomerSvc,
	}
}

// CardSummary fans out the three card sub-queries concurrently. Any
// failing sub-query fails the whole call.
func (s *Service) CardSummary(ctx context.Context) (domain.CardSummary, error) {
	var (
		invoiceCount  int64
		customerCount int64
		totals        map[string]int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.invoiceSvc.Count(ctx)
		if err != nil {
			return err
		}
		invoiceCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.customerSvc.Count(ctx)
		if err != nil {
			return err
		}
		customerCount = count
		return nil
	})
	g.Go(func() error {
		byStatus, err := s.invoiceSvc.TotalsByStatus(ctx)
		if err != nil {
			return err
		}
		totals = byStatus
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error("failed to fetch card data", zap.Error(err))
		return domain.CardSummary{}, domain.ErrFetchCardData
	}

	return domain.CardSummary{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    format.Currency(totals[invoicedomain.StatusPaid]),
		TotalPendingInvoices: format.Currency(totals[invoicedomain.StatusPending]),
	}, nil
}
