package service

import (
	"context"
	"testing"
	"time"

	"github.com/paperledger/paperledger/internal/config"
	revenuedomain "github.com/paperledger/paperledger/internal/revenue/domain"
	"github.com/paperledger/paperledger/internal/revenue/repository"
	"github.com/paperledger/paperledger/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, delay time.Duration) (revenuedomain.Service, *gorm.DB) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&revenuedomain.Revenue{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc := New(Params{
		DB:   dbConn,
		Log:  zap.NewNop(),
		Cfg:  config.Config{RevenueQueryDelay: delay},
		Repo: repository.Provide(),
	})
	return svc, dbConn
}

func TestListReturnsAllRows(t *testing.T) {
	svc, dbConn := newTestService(t, 0)
	for _, row := range []revenuedomain.Revenue{
		{Month: "Jan", Revenue: 2000},
		{Month: "Feb", Revenue: 1800},
		{Month: "Mar", Revenue: 2200},
	} {
		if err := dbConn.Create(&row).Error; err != nil {
			t.Fatalf("failed to seed revenue: %v", err)
		}
	}

	rows, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("failed to list revenue: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
}

func TestListDelayRespectsContext(t *testing.T) {
	svc, _ := newTestService(t, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := svc.List(ctx)
	if err == nil {
		t.Fatal("expected a context error")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("expected the delay to be cut short, took %v", elapsed)
	}
}
