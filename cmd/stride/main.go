package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/stride/internal/clock"
	"github.com/smallbiznis/stride/internal/config"
	"github.com/smallbiznis/stride/internal/migration"
	"github.com/smallbiznis/stride/internal/observability"
	"github.com/smallbiznis/stride/internal/server"
	"github.com/smallbiznis/stride/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		// Schema and bootstrap data
		migration.Module,

		// Storefront
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
