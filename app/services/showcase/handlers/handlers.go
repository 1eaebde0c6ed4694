// Package handlers manages the different versions of the API.
package handlers

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"

	"github.com/ardanlabs/scalability/app/services/showcase/handlers/debug/checkgrp"
	"github.com/ardanlabs/scalability/app/services/showcase/handlers/pagegrp"
	v1 "github.com/ardanlabs/scalability/app/services/showcase/handlers/v1"
	"github.com/ardanlabs/scalability/app/services/showcase/handlers/v1/calcgrp"
	webv1 "github.com/ardanlabs/scalability/business/web/v1"
	"github.com/ardanlabs/scalability/business/web/v1/mid"
	"github.com/ardanlabs/scalability/foundation/events"
	"github.com/ardanlabs/scalability/foundation/web"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"
)

// APIMuxConfig contains all the mandatory systems required by handlers.
type APIMuxConfig struct {
	Shutdown   chan os.Signal
	Log        *zap.SugaredLogger
	Evts       *events.Events
	Build      string
	Paper      pagegrp.Paper
	Defaults   calcgrp.Defaults
	CorsOrigin string
}

// APIMux constructs a http.Handler with all application routes defined.
func APIMux(cfg APIMuxConfig) (http.Handler, error) {

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(
		cfg.Shutdown,
		mid.Logger(cfg.Log),
		mid.Errors(cfg.Log),
		mid.Metrics(),
		mid.Panics(),
	)

	// Unknown routes get the same JSON error document as every other failure.
	nf := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return webv1.NewRequestError(errors.New("resource not found"), http.StatusNotFound)
	}
	app.NotFound(nf)

	// Load the v1 routes.
	v1.Routes(app, v1.Config{
		Log:        cfg.Log,
		Evts:       cfg.Evts,
		Defaults:   cfg.Defaults,
		CorsOrigin: cfg.CorsOrigin,
	})

	// Register the dashboard pages.
	pgh, err := pagegrp.New(cfg.Build, cfg.Paper)
	if err != nil {
		return nil, fmt.Errorf("loading pages: %w", err)
	}
	app.Handle(http.MethodGet, "", "/", pgh.Index)
	app.Handle(http.MethodGet, "", "/comparison", pgh.Comparison)
	app.Handle(http.MethodGet, "", "/layer2", pgh.Layer2)
	app.Handle(http.MethodGet, "", "/sharding", pgh.Sharding)
	app.Handle(http.MethodGet, "", "/hybrid", pgh.Hybrid)

	return compress(app), nil
}

// compress gzips responses for clients that accept it. Websocket upgrades
// need the raw connection so they bypass the compressor.
func compress(next http.Handler) http.Handler {
	gz := gzhttp.GzipHandler(next)

	h := func(w http.ResponseWriter, r *http.Request) {
		if websocket.IsWebSocketUpgrade(r) {
			next.ServeHTTP(w, r)
			return
		}
		gz.ServeHTTP(w, r)
	}

	return http.HandlerFunc(h)
}

// DebugStandardLibraryMux registers all the debug routes from the standard library
// into a new mux bypassing the use of the DefaultServerMux. Using the
// DefaultServerMux would be a security risk since a dependency could inject a
// handler into our service without us knowing it.
func DebugStandardLibraryMux() *http.ServeMux {
	mux := http.NewServeMux()

	// Register all the standard library debug endpoints.
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/debug/vars", expvar.Handler())

	return mux
}

// DebugMux registers all the debug standard library routes and then custom
// debug application routes for the service. This bypassing the use of the
// DefaultServerMux. Using the DefaultServerMux would be a security risk since
// a dependency could inject a handler into our service without us knowing it.
func DebugMux(build string, log *zap.SugaredLogger) http.Handler {
	mux := DebugStandardLibraryMux()

	// Register debug check endpoints.
	cgh := checkgrp.Handlers{
		Build: build,
		Log:   log,
	}
	mux.HandleFunc("/debug/readiness", cgh.Readiness)
	mux.HandleFunc("/debug/liveness", cgh.Liveness)

	return mux
}
