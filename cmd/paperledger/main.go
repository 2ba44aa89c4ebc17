package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/paperledger/paperledger/internal/config"
	"github.com/paperledger/paperledger/internal/logger"
	"github.com/paperledger/paperledger/internal/migration"
	"github.com/paperledger/paperledger/internal/server"
	"github.com/paperledger/paperledger/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
