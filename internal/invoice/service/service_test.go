package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/paperledger/paperledger/internal/customer/domain"
	invoicedomain "github.com/paperledger/paperledger/internal/invoice/domain"
	"github.com/paperledger/paperledger/internal/invoice/repository"
	"github.com/paperledger/paperledger/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc    invoicedomain.Service
	db     *gorm.DB
	node   *snowflake.Node
	anchor customerdomain.Customer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&customerdomain.Customer{}, &invoicedomain.Invoice{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	customer := customerdomain.Customer{
		ID:    node.Generate(),
		Name:  "Acme Corp",
		Email: "billing@acme.test",
	}
	if err := dbConn.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}

	svc := New(Params{
		DB:    dbConn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return &fixture{svc: svc, db: dbConn, node: node, anchor: customer}
}

func (f *fixture) seedInvoice(t *testing.T, cents int64, status string, date time.Time) invoicedomain.Invoice {
	t.Helper()

	invoice := invoicedomain.Invoice{
		ID:          f.node.Generate(),
		CustomerID:  f.anchor.ID,
		AmountCents: cents,
		Status:      status,
		Date:        date,
	}
	if err := f.db.Create(&invoice).Error; err != nil {
		t.Fatalf("failed to seed invoice: %v", err)
	}
	return invoice
}

func (f *fixture) storedAmount(t *testing.T, id snowflake.ID) int64 {
	t.Helper()

	var cents int64
	if err := f.db.Raw(`SELECT amount FROM invoices WHERE id = ?`, id).Scan(&cents).Error; err != nil {
		t.Fatalf("failed to read back invoice: %v", err)
	}
	return cents
}

func TestCreateRoundsToCents(t *testing.T) {
	f := newFixture(t)

	result, err := f.svc.Create(context.Background(), invoicedomain.UpsertRequest{
		CustomerID: f.anchor.ID.String(),
		Amount:     "10.555",
		Status:     "pending",
	})
	if err != nil {
		t.Fatalf("failed to create invoice: %v", err)
	}
	if result.Failed() {
		t.Fatalf("unexpected validation errors: %+v", result.Errors)
	}
	if got := f.storedAmount(t, result.Invoice.ID); got != 1056 {
		t.Fatalf("expected create to round to 1056 cents, got %d", got)
	}
	if result.RedirectTo != "/dashboard/invoices" {
		t.Fatalf("unexpected redirect %q", result.RedirectTo)
	}
	if len(result.Invalidate) != 1 || result.Invalidate[0] != "/dashboard/invoices" {
		t.Fatalf("unexpected invalidate %v", result.Invalidate)
	}
}

func TestUpdateTruncatesToCents(t *testing.T) {
	f := newFixture(t)
	seeded := f.seedInvoice(t, 1000, "pending", time.Now().UTC())

	result, err := f.svc.Update(context.Background(), seeded.ID.String(), invoicedomain.UpsertRequest{
		CustomerID: f.anchor.ID.String(),
		Amount:     "10.555",
		Status:     "paid",
	})
	if err != nil {
		t.Fatalf("failed to update invoice: %v", err)
	}
	if result.Failed() {
		t.Fatalf("unexpected validation errors: %+v", result.Errors)
	}
	if got := f.storedAmount(t, seeded.ID); got != 1055 {
		t.Fatalf("expected update to truncate to 1055 cents, got %d", got)
	}
}

func TestCreateValidationMessages(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name    string
		req     invoicedomain.UpsertRequest
		field   string
		message string
	}{
		{
			name:    "missing customer",
			req:     invoicedomain.UpsertRequest{Amount: "10", Status: "paid"},
			field:   "customerId",
			message: "Please select a customer.",
		},
		{
			name:    "zero amount",
			req:     invoicedomain.UpsertRequest{CustomerID: f.anchor.ID.String(), Amount: "0", Status: "paid"},
			field:   "amount",
			message: "Please enter an amount greater than $0.",
		},
		{
			name:    "negative amount",
			req:     invoicedomain.UpsertRequest{CustomerID: f.anchor.ID.String(), Amount: "-5", Status: "paid"},
			field:   "amount",
			message: "Please enter an amount greater than $0.",
		},
		{
			name:    "bad status",
			req:     invoicedomain.UpsertRequest{CustomerID: f.anchor.ID.String(), Amount: "10", Status: "overdue"},
			field:   "status",
			message: "Please select an invoice status.",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, err := f.svc.Create(context.Background(), c.req)
			if err != nil {
				t.Fatalf("expected structured result, got error %v", err)
			}
			if !result.Failed() {
				t.Fatal("expected validation failure")
			}
			msgs := result.Errors[c.field]
			if len(msgs) != 1 || msgs[0] != c.message {
				t.Fatalf("expected %q on %s, got %v", c.message, c.field, result.Errors)
			}
			if result.Message != "Missing Fields. Failed to Create Invoice." {
				t.Fatalf("unexpected summary %q", result.Message)
			}
		})
	}

	count, err := f.svc.Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count invoices: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rejected submissions to write nothing, found %d rows", count)
	}
}

func TestUpdateValidationMessage(t *testing.T) {
	f := newFixture(t)
	seeded := f.seedInvoice(t, 1000, "pending", time.Now().UTC())

	result, err := f.svc.Update(context.Background(), seeded.ID.String(), invoicedomain.UpsertRequest{
		CustomerID: f.anchor.ID.String(),
		Amount:     "not-a-number",
		Status:     "paid",
	})
	if err != nil {
		t.Fatalf("expected structured result, got error %v", err)
	}
	if !result.Failed() || result.Message != "Missing Fields. Failed to Update Invoice." {
		t.Fatalf("unexpected result %+v", result)
	}
	if got := f.storedAmount(t, seeded.ID); got != 1000 {
		t.Fatalf("expected rejected update to leave the row untouched, got %d", got)
	}
}

func TestListFilteredPaging(t *testing.T) {
	f := newFixture(t)
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 13; i++ {
		f.seedInvoice(t, int64(1000+i), "pending", base.Add(time.Duration(i)*time.Hour))
	}

	page1, err := f.svc.ListFiltered(context.Background(), "", 1)
	if err != nil {
		t.Fatalf("failed to list invoices: %v", err)
	}
	if len(page1) != 6 {
		t.Fatalf("expected 6 rows on page 1, got %d", len(page1))
	}
	// date desc puts the newest invoice first
	if page1[0].AmountCents != 1012 {
		t.Fatalf("expected newest invoice first, got %d", page1[0].AmountCents)
	}

	page3, err := f.svc.ListFiltered(context.Background(), "", 3)
	if err != nil {
		t.Fatalf("failed to list invoices: %v", err)
	}
	if len(page3) != 1 {
		t.Fatalf("expected 1 row on page 3, got %d", len(page3))
	}

	pages, err := f.svc.PageCount(context.Background(), "")
	if err != nil {
		t.Fatalf("failed to count pages: %v", err)
	}
	if pages != 3 {
		t.Fatalf("expected 3 pages, got %d", pages)
	}
}

func TestListFilteredEmptyMatch(t *testing.T) {
	f := newFixture(t)
	f.seedInvoice(t, 1000, "pending", time.Now().UTC())

	rows, err := f.svc.ListFiltered(context.Background(), "zzz-no-such-thing", 1)
	if err != nil {
		t.Fatalf("failed to list invoices: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}

	pages, err := f.svc.PageCount(context.Background(), "zzz-no-such-thing")
	if err != nil {
		t.Fatalf("failed to count pages: %v", err)
	}
	if pages != 0 {
		t.Fatalf("expected 0 pages, got %d", pages)
	}
}

func TestPageCountByStatusTerm(t *testing.T) {
	f := newFixture(t)
	now := time.Now().UTC()
	for i := 0; i < 7; i++ {
		f.seedInvoice(t, 1000, "pending", now.Add(time.Duration(i)*time.Minute))
	}
	f.seedInvoice(t, 1000, "paid", now)

	pages, err := f.svc.PageCount(context.Background(), "pending")
	if err != nil {
		t.Fatalf("failed to count pages: %v", err)
	}
	if pages != 2 {
		t.Fatalf("expected ceil(7/6) = 2 pages, got %d", pages)
	}
}

func TestSearchByCustomerAndAmount(t *testing.T) {
	f := newFixture(t)
	now := time.Now().UTC()
	f.seedInvoice(t, 666, "pending", now)
	f.seedInvoice(t, 1000, "paid", now.Add(time.Minute))

	rows, err := f.svc.ListFiltered(context.Background(), "ACME", 1)
	if err != nil {
		t.Fatalf("failed to list invoices: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected customer-name match on both rows, got %d", len(rows))
	}

	// the numeric term compares against the raw cents column
	rows, err = f.svc.ListFiltered(context.Background(), "666", 1)
	if err != nil {
		t.Fatalf("failed to list invoices: %v", err)
	}
	if len(rows) != 1 || rows[0].AmountCents != 666 {
		t.Fatalf("expected the 666-cent invoice, got %+v", rows)
	}
}

func TestGetByID(t *testing.T) {
	f := newFixture(t)
	seeded := f.seedInvoice(t, 66666, "pending", time.Now().UTC())

	form, err := f.svc.GetByID(context.Background(), seeded.ID.String())
	if err != nil {
		t.Fatalf("failed to fetch invoice: %v", err)
	}
	if form == nil {
		t.Fatal("expected a form")
	}
	if form.Amount != 666.66 {
		t.Fatalf("expected amount in dollars 666.66, got %v", form.Amount)
	}
	if form.CustomerID != f.anchor.ID {
		t.Fatalf("unexpected customer %s", form.CustomerID)
	}
}

func TestGetByIDAbsent(t *testing.T) {
	f := newFixture(t)

	form, err := f.svc.GetByID(context.Background(), fmt.Sprintf("%d", f.node.Generate()))
	if err != nil || form != nil {
		t.Fatalf("expected (nil, nil) for an absent id, got (%v, %v)", form, err)
	}

	form, err = f.svc.GetByID(context.Background(), "not-an-id")
	if err != nil || form != nil {
		t.Fatalf("expected (nil, nil) for an unparseable id, got (%v, %v)", form, err)
	}
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	seeded := f.seedInvoice(t, 1000, "pending", time.Now().UTC())

	result, err := f.svc.Delete(context.Background(), seeded.ID.String())
	if err != nil {
		t.Fatalf("failed to delete invoice: %v", err)
	}
	if result.RedirectTo != "" {
		t.Fatalf("expected no redirect on delete, got %q", result.RedirectTo)
	}
	if len(result.Invalidate) != 1 || result.Invalidate[0] != "/dashboard/invoices" {
		t.Fatalf("unexpected invalidate %v", result.Invalidate)
	}

	_, err = f.svc.Delete(context.Background(), seeded.ID.String())
	if err != invoicedomain.ErrDelete {
		t.Fatalf("expected ErrDelete on a missing row, got %v", err)
	}
}

func TestUpdateMissingRow(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Update(context.Background(), fmt.Sprintf("%d", f.node.Generate()), invoicedomain.UpsertRequest{
		CustomerID: f.anchor.ID.String(),
		Amount:     "10",
		Status:     "paid",
	})
	if err != invoicedomain.ErrUpdate {
		t.Fatalf("expected ErrUpdate, got %v", err)
	}
}

func TestLatestInvoices(t *testing.T) {
	f := newFixture(t)
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		f.seedInvoice(t, int64((i+1)*100), "paid", base.Add(time.Duration(i)*time.Hour))
	}

	rows, err := f.svc.Latest(context.Background())
	if err != nil {
		t.Fatalf("failed to fetch latest invoices: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[0].Amount != "$7.00" {
		t.Fatalf("expected the newest invoice formatted, got %q", rows[0].Amount)
	}
	if rows[0].Name != "Acme Corp" {
		t.Fatalf("expected joined customer name, got %q", rows[0].Name)
	}
}
