package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/tripveda/tripveda/internal/clock"
	"github.com/tripveda/tripveda/internal/config"
	"github.com/tripveda/tripveda/internal/migration"
	"github.com/tripveda/tripveda/internal/observability"
	"github.com/tripveda/tripveda/internal/server"
	"github.com/tripveda/tripveda/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
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
