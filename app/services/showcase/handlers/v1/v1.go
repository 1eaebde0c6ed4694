// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"context"
	"net/http"

	"github.com/ardanlabs/scalability/app/services/showcase/handlers/v1/calcgrp"
	"github.com/ardanlabs/scalability/app/services/showcase/handlers/v1/eventgrp"
	"github.com/ardanlabs/scalability/app/services/showcase/handlers/v1/metricsgrp"
	"github.com/ardanlabs/scalability/business/web/v1/mid"
	"github.com/ardanlabs/scalability/foundation/events"
	"github.com/ardanlabs/scalability/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log        *zap.SugaredLogger
	Evts       *events.Events
	Defaults   calcgrp.Defaults
	CorsOrigin string
}

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {
	cors := mid.Cors(cfg.CorsOrigin)

	// Accept CORS 'OPTIONS' preflight requests alongside every api route.
	preflight := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return nil
	}
	handle := func(method string, path string, handler web.Handler) {
		app.Handle(method, version, path, handler, cors)
		app.Handle(http.MethodOptions, version, path, preflight, cors)
	}

	mgh := metricsgrp.Handlers{}
	handle(http.MethodGet, "/metrics/all", mgh.All)
	handle(http.MethodGet, "/metrics/base", mgh.Base)
	handle(http.MethodGet, "/metrics/layer2", mgh.Layer2)
	handle(http.MethodGet, "/metrics/sharding", mgh.Sharding)
	handle(http.MethodGet, "/metrics/trilemma", mgh.Trilemma)
	handle(http.MethodGet, "/metrics/comparison", mgh.Comparison)
	handle(http.MethodGet, "/metrics/security", mgh.Security)
	handle(http.MethodGet, "/metrics/solution/:id", mgh.Solution)

	cgh := calcgrp.Handlers{
		Log:      cfg.Log,
		Evts:     cfg.Evts,
		Defaults: cfg.Defaults,
	}
	handle(http.MethodPost, "/calculate/layer2", cgh.Layer2)
	handle(http.MethodPost, "/calculate/sharding", cgh.Sharding)
	handle(http.MethodPost, "/calculate/hybrid", cgh.Hybrid)
	handle(http.MethodPost, "/calculate/compare", cgh.Compare)
	handle(http.MethodPost, "/calculate/trilemma", cgh.Trilemma)

	egh := eventgrp.Handlers{
		Log:  cfg.Log,
		Evts: cfg.Evts,
	}
	app.Handle(http.MethodGet, version, "/events", egh.Events)
}
