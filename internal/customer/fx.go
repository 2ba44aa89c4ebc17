// Package customer wires the customer feature.
package customer

import (
	"github.com/paperledger/paperledger/internal/customer/repository"
	"github.com/paperledger/paperledger/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
