// Package calcgrp maintains the group of handlers that run the performance
// models.
package calcgrp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ardanlabs/scalability/business/core/calculator"
	"github.com/ardanlabs/scalability/business/sys/metrics"
	v1 "github.com/ardanlabs/scalability/business/web/v1"
	"github.com/ardanlabs/scalability/foundation/events"
	"github.com/ardanlabs/scalability/foundation/units"
	"github.com/ardanlabs/scalability/foundation/validate"
	"github.com/ardanlabs/scalability/foundation/web"
	"go.uber.org/zap"
)

// Set of calculation kinds reported to metrics and the event feed.
const (
	KindLayer2   = "layer2"
	KindSharding = "sharding"
	KindHybrid   = "hybrid"
	KindCompare  = "compare"
	KindTrilemma = "trilemma"
)

// Handlers manages the set of calculation endpoints.
type Handlers struct {
	Log      *zap.SugaredLogger
	Evts     *events.Events
	Defaults Defaults
}

// Layer2 compares optimistic and zk rollups for a workload.
func (h Handlers) Layer2(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req layer2Req
	if err := decode(r, &req); err != nil {
		return err
	}

	res, err := calculator.Layer2(
		valueOr(req.TxVolume, h.Defaults.TxVolume),
		valueOr(req.BatchSize, h.Defaults.BatchSize),
		valueOr(req.GasPrice, h.Defaults.GasPrice),
	)
	if err != nil {
		return requestError(err)
	}

	summary := fmt.Sprintf("%s txs: optimistic %s, zk %s",
		units.FormatNumber(valueOr(req.TxVolume, h.Defaults.TxVolume), 1),
		units.FormatCurrency(res.Optimistic.L2CostGwei, units.GWEI),
		units.FormatCurrency(res.ZK.L2CostGwei, units.GWEI),
	)
	h.publish(ctx, KindLayer2, summary)

	return web.Respond(ctx, w, res, http.StatusOK)
}

// Sharding models a workload spread across shards.
func (h Handlers) Sharding(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req shardingReq
	if err := decode(r, &req); err != nil {
		return err
	}

	res, err := calculator.Sharding(
		valueOr(req.TxVolume, h.Defaults.TxVolume),
		valueOr(req.NumShards, h.Defaults.ShardingShards),
		valueOr(req.TPSPerShard, h.Defaults.TPSPerShard),
	)
	if err != nil {
		return requestError(err)
	}

	summary := fmt.Sprintf("%d shards: %s TPS, %.1fx the base layer",
		res.NumShards, units.FormatNumber(res.TotalTPS, 1), res.BaseLayerComparison.ImprovementFactor)
	h.publish(ctx, KindSharding, summary)

	return web.Respond(ctx, w, res, http.StatusOK)
}

// Hybrid models rollups running on every shard.
func (h Handlers) Hybrid(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req hybridReq
	if err := decode(r, &req); err != nil {
		return err
	}

	res, err := calculator.Hybrid(
		valueOr(req.TxVolume, h.Defaults.TxVolume),
		valueOr(req.NumShards, h.Defaults.HybridShards),
		valueOr(req.Layer2Multiplier, h.Defaults.Layer2Multiplier),
	)
	if err != nil {
		return requestError(err)
	}

	summary := fmt.Sprintf("%s: %s TPS", res.BaseLayer, units.FormatNumber(res.TotalHybridTPS, 1))
	h.publish(ctx, KindHybrid, summary)

	return web.Respond(ctx, w, res, http.StatusOK)
}

// Compare runs every model with its reference parameters.
func (h Handlers) Compare(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req compareReq
	if err := decode(r, &req); err != nil {
		return err
	}

	res, err := calculator.CompareAll(valueOr(req.TxVolume, h.Defaults.TxVolume))
	if err != nil {
		return requestError(err)
	}

	summary := fmt.Sprintf("%s txs: base layer %.2f hours, hybrid %.2f seconds",
		units.FormatNumber(res.TransactionVolume, 1),
		res.Solutions.BaseLayer.ProcessingTimeHours,
		res.Solutions.Hybrid.ProcessingTimeSeconds,
	)
	h.publish(ctx, KindCompare, summary)

	return web.Respond(ctx, w, res, http.StatusOK)
}

// Trilemma scores the balance of a design.
func (h Handlers) Trilemma(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req trilemmaReq
	if err := decode(r, &req); err != nil {
		return err
	}

	res, err := calculator.Trilemma(
		valueOr(req.Scalability, h.Defaults.TrilemmaScore),
		valueOr(req.Security, h.Defaults.TrilemmaScore),
		valueOr(req.Decentralization, h.Defaults.TrilemmaScore),
	)
	if err != nil {
		return requestError(err)
	}

	summary := fmt.Sprintf("balanced score %.2f, weakest %s", res.BalancedScore, res.WeakestDimension)
	h.publish(ctx, KindTrilemma, summary)

	return web.Respond(ctx, w, res, http.StatusOK)
}

// =============================================================================

// publish records a completed calculation.
func (h Handlers) publish(ctx context.Context, kind string, summary string) {
	traceID := web.GetTraceID(ctx)

	metrics.AddCalculation(ctx, kind)
	h.Log.Infow("calculate", "traceid", traceID, "kind", kind, "summary", summary)

	h.Evts.Send(events.Event{
		Kind:    kind,
		TraceID: traceID,
		Summary: summary,
		Time:    time.Now().UTC(),
	})
}

// decode reads an optional JSON body into val and validates it. An empty
// body leaves every field at its default.
func decode(r *http.Request, val any) error {
	if err := web.Decode(r, val); err != nil && !errors.Is(err, io.EOF) {
		return v1.NewRequestError(fmt.Errorf("unable to decode payload: %w", err), http.StatusBadRequest)
	}

	if err := validate.Check(val); err != nil {
		return err
	}

	return nil
}

// requestError converts a parameter failure into a client error.
func requestError(err error) error {
	if errors.Is(err, calculator.ErrInvalidParameter) || errors.Is(err, calculator.ErrOutOfRange) {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}
	return err
}
