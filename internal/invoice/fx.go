// Package invoice wires the invoice feature.
package invoice

import (
	"github.com/paperledger/paperledger/internal/invoice/repository"
	"github.com/paperledger/paperledger/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
