package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/ardanlabs/scalability/app/services/showcase/handlers"
	"github.com/ardanlabs/scalability/app/services/showcase/handlers/pagegrp"
	"github.com/ardanlabs/scalability/app/services/showcase/handlers/v1/calcgrp"
	"github.com/ardanlabs/scalability/business/core/calculator"
	"github.com/ardanlabs/scalability/foundation/events"
	"github.com/ardanlabs/scalability/foundation/logger"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("SHOWCASE")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	// This is all the configuration for the application and the default values.
	// Configuration values will be passed through the application as individual
	// values.
	cfg := struct {
		conf.Version
		Web struct {
			ReadTimeout     time.Duration `conf:"default:5s"`
			WriteTimeout    time.Duration `conf:"default:10s"`
			IdleTimeout     time.Duration `conf:"default:120s"`
			ShutdownTimeout time.Duration `conf:"default:20s"`
			APIHost         string        `conf:"default:0.0.0.0:5000"`
			DebugHost       string        `conf:"default:0.0.0.0:7080"`
			CorsOrigin      string        `conf:"default:*"`
		}
		Paper struct {
			Title  string `conf:"default:Blockchain Scalability Challenges and Solutions: A Comparative Analysis of Layer 2 Implementations and Sharding"`
			Author string `conf:"default:Neha Sachdeva"`
		}
		Defaults struct {
			TxVolume         float64 `conf:"default:1000000"`
			BatchSize        float64 `conf:"default:100"`
			GasPrice         float64 `conf:"default:20"`
			ShardingShards   int     `conf:"default:64"`
			TPSPerShard      float64 `conf:"default:100"`
			HybridShards     int     `conf:"default:32"`
			Layer2Multiplier float64 `conf:"default:50"`
			TrilemmaScore    float64 `conf:"default:50"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "blockchain scalability showcase",
		},
	}

	// Parse will set the defaults and then look for any overriding values
	// in environment variables and command line flags.
	const prefix = "SHOWCASE"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	// Display the current configuration to the logs.
	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// Configured defaults are checked up front so a bad value fails the
	// startup instead of every request that relies on it.
	defaults := calcgrp.Defaults(cfg.Defaults)
	if _, err := calculator.Layer2(defaults.TxVolume, defaults.BatchSize, defaults.GasPrice); err != nil {
		return fmt.Errorf("checking layer2 defaults: %w", err)
	}
	if _, err := calculator.Sharding(defaults.TxVolume, defaults.ShardingShards, defaults.TPSPerShard); err != nil {
		return fmt.Errorf("checking sharding defaults: %w", err)
	}
	if _, err := calculator.Hybrid(defaults.TxVolume, defaults.HybridShards, defaults.Layer2Multiplier); err != nil {
		return fmt.Errorf("checking hybrid defaults: %w", err)
	}
	if _, err := calculator.Trilemma(defaults.TrilemmaScore, defaults.TrilemmaScore, defaults.TrilemmaScore); err != nil {
		return fmt.Errorf("checking trilemma defaults: %w", err)
	}

	// =========================================================================
	// Start Debug Service

	log.Infow("startup", "status", "debug v1 router started", "host", cfg.Web.DebugHost)

	// The Debug function returns a mux to listen and serve on for all the debug
	// related endpoints. This includes the standard library endpoints.

	// Construct the mux for the debug calls.
	debugMux := handlers.DebugMux(build, log)

	// Start the service listening for debug requests.
	// Not concerned with shutting this down with load shedding.
	go func() {
		if err := http.ListenAndServe(cfg.Web.DebugHost, debugMux); err != nil {
			log.Errorw("shutdown", "status", "debug v1 router closed", "host", cfg.Web.DebugHost, "ERROR", err)
		}
	}()

	// =========================================================================
	// Start API Service

	log.Infow("startup", "status", "initializing V1 API support")

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	// Calculation events are sent to any websocket client that is connected
	// into the system through the events package.
	evts := events.New()

	// Construct the mux for the API calls.
	apiMux, err := handlers.APIMux(handlers.APIMuxConfig{
		Shutdown:   shutdown,
		Log:        log,
		Evts:       evts,
		Build:      build,
		Paper:      pagegrp.Paper(cfg.Paper),
		Defaults:   defaults,
		CorsOrigin: cfg.Web.CorsOrigin,
	})
	if err != nil {
		return fmt.Errorf("constructing api mux: %w", err)
	}

	// Construct a server to service the requests against the mux.
	api := http.Server{
		Addr:         cfg.Web.APIHost,
		Handler:      apiMux,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}

	// Make a channel to listen for errors coming from the listener. Use a
	// buffered channel so the goroutine can exit if we don't collect this error.
	serverErrors := make(chan error, 1)

	// Start the service listening for api requests.
	go func() {
		log.Infow("startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// =========================================================================
	// Shutdown

	// Blocking main and waiting for shutdown.
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		// Release any web sockets that are currently active.
		log.Infow("shutdown", "status", "shutdown web socket channels")
		evts.Shutdown()

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		// Asking listener to shut down and shed load.
		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
