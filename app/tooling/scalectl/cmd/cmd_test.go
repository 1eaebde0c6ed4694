package cmd_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/ardanlabs/scalability/app/services/showcase/handlers"
	"github.com/ardanlabs/scalability/app/services/showcase/handlers/pagegrp"
	"github.com/ardanlabs/scalability/app/services/showcase/handlers/v1/calcgrp"
	"github.com/ardanlabs/scalability/app/tooling/scalectl/cmd"
	"github.com/ardanlabs/scalability/business/core/calculator"
	"github.com/ardanlabs/scalability/business/core/catalog"
	"github.com/ardanlabs/scalability/foundation/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestLayer2JSON(t *testing.T) {
	out, err := execute(t, "layer2", "--tx-volume", "5000", "--batch-size", "250", "--gas-price", "30", "-o", "json")
	require.NoError(t, err)

	exp, err := calculator.Layer2(5000, 250, 30)
	require.NoError(t, err)

	var got calculator.Layer2Result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, exp, got)
}

func TestLayer2Text(t *testing.T) {
	out, err := execute(t, "layer2")
	require.NoError(t, err)

	assert.Contains(t, out, "Optimistic Rollup")
	assert.Contains(t, out, "ZK Rollup")
	assert.Contains(t, out, "10.0K")
	assert.Contains(t, out, "Gwei")
}

func TestShardingYAML(t *testing.T) {
	out, err := execute(t, "sharding", "-o", "yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 64, got["num_shards"])
	assert.Equal(t, 6400, got["total_tps"])
	assert.Equal(t, 156.25, got["processing_time_seconds"])
}

func TestHybridText(t *testing.T) {
	out, err := execute(t, "hybrid", "--shards", "16", "--multiplier", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "Sharded (16 shards)")
	assert.Contains(t, out, "16.0K")
}

func TestCompareText(t *testing.T) {
	out, err := execute(t, "compare")
	require.NoError(t, err)

	assert.Contains(t, out, "Ethereum Base Layer")
	assert.Contains(t, out, "18.52h")
	assert.Contains(t, out, "Hybrid Model")
}

func TestTrilemmaJSON(t *testing.T) {
	out, err := execute(t, "trilemma", "--scalability", "10", "--security", "90", "--decentralization", "90", "-o", "json")
	require.NoError(t, err)

	var got calculator.TrilemmaScore
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, calculator.DimScalability, got.WeakestDimension)
	assert.Equal(t, calculator.DimSecurity, got.StrongestDimension)
	assert.False(t, got.IsBalanced)
}

func TestMetrics(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		out, err := execute(t, "metrics")
		require.NoError(t, err)
		assert.Contains(t, out, "Bitcoin")
		assert.Contains(t, out, "Arbitrum")
		assert.Contains(t, out, "Zilliqa")
	})

	t.Run("layer2 json", func(t *testing.T) {
		out, err := execute(t, "metrics", "layer2", "-o", "json")
		require.NoError(t, err)

		var got map[string]catalog.Layer2
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, catalog.Layer2Solutions(), got)
	})

	t.Run("security", func(t *testing.T) {
		out, err := execute(t, "metrics", "security")
		require.NoError(t, err)
		assert.Contains(t, out, "LIKELIHOOD")
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := execute(t, "metrics", "mining")
		require.Error(t, err)
	})
}

func TestSolution(t *testing.T) {
	out, err := execute(t, "solution", "near")
	require.NoError(t, err)
	assert.Contains(t, out, catalog.CategorySharding)

	_, err = execute(t, "solution", "dogecoin")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestInvalid(t *testing.T) {
	_, err := execute(t, "layer2", "--batch-size", "0")
	require.ErrorIs(t, err, calculator.ErrInvalidParameter)

	_, err = execute(t, "trilemma", "--security", "101")
	require.ErrorIs(t, err, calculator.ErrOutOfRange)

	_, err = execute(t, "compare", "-o", "xml")
	require.Error(t, err)
}

func TestRemote(t *testing.T) {
	evts := events.New()
	defer evts.Shutdown()

	mux, err := handlers.APIMux(handlers.APIMuxConfig{
		Shutdown:   make(chan os.Signal, 1),
		Log:        zap.NewNop().Sugar(),
		Evts:       evts,
		Build:      "test",
		Paper:      pagegrp.Paper{Title: "Paper", Author: "Author"},
		Defaults:   calcgrp.StandardDefaults(),
		CorsOrigin: "*",
	})
	require.NoError(t, err)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	t.Run("hybrid", func(t *testing.T) {
		out, err := execute(t, "hybrid", "--url", srv.URL, "-o", "json")
		require.NoError(t, err)

		exp, err := calculator.Hybrid(calculator.DefaultTxVolume, calculator.DefaultHybridShards, calculator.DefaultLayer2Multiplier)
		require.NoError(t, err)

		var got calculator.HybridResult
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, exp, got)
	})

	t.Run("metrics", func(t *testing.T) {
		out, err := execute(t, "metrics", "sharding", "--url", srv.URL)
		require.NoError(t, err)
		assert.Contains(t, out, "Ethereum 2.0")
	})

	t.Run("rejected", func(t *testing.T) {
		_, err := execute(t, "sharding", "--url", srv.URL, "--shards", "0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "num_shards")
	})
}
