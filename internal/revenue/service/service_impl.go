// Package service implements the revenue listing.
package service

import (
	"context"
	"time"

	"github.com/paperledger/paperledger/internal/config"
	"github.com/paperledger/paperledger/internal/revenue/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Cfg  config.Config
	Repo domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	delay time.Duration
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("revenue.service"),
		delay: p.Cfg.RevenueQueryDelay,
		repo:  p.Repo,
	}
}

// List returns all revenue rows. A configurable delay runs before the
// query so slow-path rendering stays demonstrable; zero disables it.
func (s *Service) List(ctx context.Context) ([]domain.Revenue, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	rows, err := s.repo.List(ctx, s.db)
	if err != nil {
		s.log.Error("failed to fetch revenue data", zap.Error(err))
		return nil, domain.ErrFetchRevenue
	}
	return rows, nil
}
