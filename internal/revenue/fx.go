// Package revenue wires the revenue feature.
package revenue

import (
	"github.com/paperledger/paperledger/internal/revenue/repository"
	"github.com/paperledger/paperledger/internal/revenue/service"
	"go.uber.org/fx"
)

var Module = fx.Module("revenue.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
