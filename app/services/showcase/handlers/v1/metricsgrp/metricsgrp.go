// Package metricsgrp maintains the group of handlers for the published
// scalability figures.
package metricsgrp

import (
	"context"
	"errors"
	"net/http"

	"github.com/ardanlabs/scalability/business/core/catalog"
	v1 "github.com/ardanlabs/scalability/business/web/v1"
	"github.com/ardanlabs/scalability/foundation/web"
)

// Handlers manages the set of catalog endpoints.
type Handlers struct{}

// All returns every base layer, layer 2 and sharding record.
func (h Handlers) All(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, catalog.AllSolutions(), http.StatusOK)
}

// Base returns the base layer records.
func (h Handlers) Base(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, catalog.BaseLayers(), http.StatusOK)
}

// Layer2 returns the layer 2 records.
func (h Handlers) Layer2(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, catalog.Layer2Solutions(), http.StatusOK)
}

// Sharding returns the sharding records.
func (h Handlers) Sharding(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, catalog.ShardingSolutions(), http.StatusOK)
}

// Trilemma returns the trilemma profile of every design.
func (h Handlers) Trilemma(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, catalog.Trilemma(), http.StatusOK)
}

// Comparison returns the qualitative comparison table.
func (h Handlers) Comparison(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, catalog.Comparison(), http.StatusOK)
}

// Security returns the attack vectors of each category.
func (h Handlers) Security(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, catalog.SecurityVectors(), http.StatusOK)
}

// Solution returns a single record by id from any category.
func (h Handlers) Solution(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id := web.Param(r, "id")

	entry, err := catalog.Lookup(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return v1.NewRequestError(err, http.StatusNotFound)
		}
		return err
	}

	return web.Respond(ctx, w, entry, http.StatusOK)
}
