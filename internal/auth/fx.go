// Package auth wires the auth feature.
package auth

import (
	"github.com/paperledger/paperledger/internal/auth/repository"
	"github.com/paperledger/paperledger/internal/auth/service"
	"github.com/paperledger/paperledger/internal/auth/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
	fx.Provide(session.NewManager),
)
