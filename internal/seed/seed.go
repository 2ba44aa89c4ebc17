// Package seed bootstraps demo data for local and demo environments.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/paperledger/paperledger/internal/auth/domain"
	"github.com/paperledger/paperledger/internal/auth/password"
	customerdomain "github.com/paperledger/paperledger/internal/customer/domain"
	invoicedomain "github.com/paperledger/paperledger/internal/invoice/domain"
	revenuedomain "github.com/paperledger/paperledger/internal/revenue/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	demoUserName     = "User"
	demoUserEmail    = "user@nextmail.com"
	demoUserPassword = "123456"
)

type demoCustomer struct {
	name     string
	email    string
	imageURL string
}

var demoCustomers = []demoCustomer{
	{"Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{"Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{"Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{"Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{"Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{"Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

type demoInvoice struct {
	customer int
	cents    int64
	status   string
	date     string
}

var demoInvoices = []demoInvoice{
	{0, 15795, invoicedomain.StatusPending, "2022-12-06"},
	{1, 20348, invoicedomain.StatusPending, "2022-11-14"},
	{4, 3040, invoicedomain.StatusPaid, "2022-10-29"},
	{3, 44800, invoicedomain.StatusPaid, "2023-09-10"},
	{5, 34577, invoicedomain.StatusPending, "2023-08-05"},
	{2, 54246, invoicedomain.StatusPending, "2023-07-16"},
	{0, 66666, invoicedomain.StatusPending, "2023-06-27"},
	{3, 32545, invoicedomain.StatusPaid, "2023-06-09"},
	{4, 1250, invoicedomain.StatusPaid, "2023-06-17"},
	{5, 8546, invoicedomain.StatusPaid, "2023-06-07"},
	{1, 500, invoicedomain.StatusPaid, "2023-08-19"},
	{5, 8945, invoicedomain.StatusPaid, "2023-06-03"},
	{2, 1000, invoicedomain.StatusPaid, "2022-06-05"},
}

var demoRevenue = []revenuedomain.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}

// EnsureDemoData seeds the demo user, customers, invoices and revenue.
// It is idempotent keyed on the demo user's email.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&authdomain.User{}).Where("email = ?", demoUserEmail).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		if err := seedUser(tx, node); err != nil {
			return err
		}
		customerIDs, err := seedCustomers(tx, node)
		if err != nil {
			return err
		}
		if err := seedInvoices(tx, node, customerIDs); err != nil {
			return err
		}
		return seedRevenue(tx)
	})
}

func seedUser(tx *gorm.DB, node *snowflake.Node) error {
	hashed, err := password.Hash(demoUserPassword)
	if err != nil {
		return err
	}
	return tx.Create(&authdomain.User{
		ID:           node.Generate(),
		Name:         demoUserName,
		Email:        demoUserEmail,
		PasswordHash: hashed,
	}).Error
}

func seedCustomers(tx *gorm.DB, node *snowflake.Node) ([]snowflake.ID, error) {
	ids := make([]snowflake.ID, 0, len(demoCustomers))
	for _, c := range demoCustomers {
		customer := customerdomain.Customer{
			ID:       node.Generate(),
			Name:     c.name,
			Email:    c.email,
			ImageURL: c.imageURL,
			Metadata: datatypes.JSONMap{},
		}
		if err := tx.Create(&customer).Error; err != nil {
			return nil, err
		}
		ids = append(ids, customer.ID)
	}
	return ids, nil
}

func seedInvoices(tx *gorm.DB, node *snowflake.Node, customerIDs []snowflake.ID) error {
	for _, inv := range demoInvoices {
		date, err := time.Parse("2006-01-02", inv.date)
		if err != nil {
			return err
		}
		invoice := invoicedomain.Invoice{
			ID:          node.Generate(),
			CustomerID:  customerIDs[inv.customer],
			AmountCents: inv.cents,
			Status:      inv.status,
			Date:        date,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedRevenue(tx *gorm.DB) error {
	for _, row := range demoRevenue {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
