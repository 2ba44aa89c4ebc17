// Package dashboard wires the card summary feature.
package dashboard

import (
	"github.com/paperledger/paperledger/internal/dashboard/service"
	"go.uber.org/fx"
)

var Module = fx.Module("dashboard.service",
	fx.Provide(service.New),
)
