// Package main Tea Garden API
//
// Tea Garden is the backend for a tea card collection game. It manages the
// card catalog, player profiles and collections, quests, achievements and
// the weekly event schedule, and applies experience and coin rewards when
// quests or achievements are completed.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/ksoltys/teagarden/docs"
	"github.com/ksoltys/teagarden/internal/app"
)

// @title Tea Garden API Service
// @version 1.0
// @description Tea Garden is the backend for a tea card collection game with quests, achievements and a reward ledger.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
