package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ardanlabs/scalability/app/services/showcase/handlers"
	"github.com/ardanlabs/scalability/app/services/showcase/handlers/pagegrp"
	"github.com/ardanlabs/scalability/app/services/showcase/handlers/v1/calcgrp"
	"github.com/ardanlabs/scalability/business/core/calculator"
	"github.com/ardanlabs/scalability/business/core/catalog"
	v1 "github.com/ardanlabs/scalability/business/web/v1"
	"github.com/ardanlabs/scalability/foundation/events"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMux(t *testing.T) (http.Handler, *events.Events) {
	t.Helper()

	evts := events.New()
	t.Cleanup(evts.Shutdown)

	mux, err := handlers.APIMux(handlers.APIMuxConfig{
		Shutdown:   make(chan os.Signal, 1),
		Log:        zap.NewNop().Sugar(),
		Evts:       evts,
		Build:      "test",
		Paper:      pagegrp.Paper{Title: "Scalability Paper", Author: "Test Author"},
		Defaults:   calcgrp.StandardDefaults(),
		CorsOrigin: "*",
	})
	require.NoError(t, err)

	return mux, evts
}

func serve(t *testing.T, mux http.Handler, method string, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	return w
}

// --- Catalog ---

func TestMetricsRoutes(t *testing.T) {
	mux, _ := newMux(t)

	paths := []string{
		"/v1/metrics/all",
		"/v1/metrics/base",
		"/v1/metrics/layer2",
		"/v1/metrics/sharding",
		"/v1/metrics/trilemma",
		"/v1/metrics/comparison",
		"/v1/metrics/security",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := serve(t, mux, http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

			var doc map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
			assert.NotEmpty(t, doc)
		})
	}
}

func TestMetricsLayer2(t *testing.T) {
	mux, _ := newMux(t)

	w := serve(t, mux, http.MethodGet, "/v1/metrics/layer2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]catalog.Layer2
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, catalog.Layer2Solutions(), got)
}

func TestMetricsSolution(t *testing.T) {
	mux, _ := newMux(t)

	w := serve(t, mux, http.MethodGet, "/v1/metrics/solution/zksync", "")
	require.Equal(t, http.StatusOK, w.Code)

	var entry struct {
		ID       string         `json:"id"`
		Category string         `json:"category"`
		Record   catalog.Layer2 `json:"record"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, "zksync", entry.ID)
	assert.Equal(t, catalog.CategoryLayer2, entry.Category)
	assert.Equal(t, "zkSync", entry.Record.Name)
}

func TestMetricsSolutionUnknown(t *testing.T) {
	mux, _ := newMux(t)

	w := serve(t, mux, http.MethodGet, "/v1/metrics/solution/dogecoin", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var er v1.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &er))
	assert.Equal(t, catalog.ErrNotFound.Error(), er.Error)
}

// --- Calculators ---

func TestCalculateDefaults(t *testing.T) {
	mux, _ := newMux(t)

	t.Run("layer2", func(t *testing.T) {
		w := serve(t, mux, http.MethodPost, "/v1/calculate/layer2", "")
		require.Equal(t, http.StatusOK, w.Code)

		exp, err := calculator.Layer2(calculator.DefaultTxVolume, calculator.DefaultBatchSize, calculator.DefaultGasPrice)
		require.NoError(t, err)

		var got calculator.Layer2Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, exp, got)
	})

	t.Run("sharding", func(t *testing.T) {
		w := serve(t, mux, http.MethodPost, "/v1/calculate/sharding", "{}")
		require.Equal(t, http.StatusOK, w.Code)

		var got calculator.ShardingResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 64, got.NumShards)
		assert.Equal(t, 6400.0, got.TotalTPS)
	})

	t.Run("hybrid", func(t *testing.T) {
		w := serve(t, mux, http.MethodPost, "/v1/calculate/hybrid", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got calculator.HybridResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 160_000.0, got.TotalHybridTPS)
		assert.Equal(t, 6.25, got.ProcessingTimeSeconds)
	})

	t.Run("compare", func(t *testing.T) {
		w := serve(t, mux, http.MethodPost, "/v1/calculate/compare", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got calculator.Comparison
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 66666.67, got.Solutions.BaseLayer.ProcessingTimeSeconds)
		assert.Equal(t, "Hybrid Model", got.Rankings.Fastest)
	})

	t.Run("trilemma", func(t *testing.T) {
		w := serve(t, mux, http.MethodPost, "/v1/calculate/trilemma", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got calculator.TrilemmaScore
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 50.0, got.BalancedScore)
		assert.True(t, got.IsBalanced)
	})
}

func TestCalculateParameters(t *testing.T) {
	mux, _ := newMux(t)

	w := serve(t, mux, http.MethodPost, "/v1/calculate/sharding", `{"tx_volume": 1000, "num_shards": 8, "tps_per_shard": 250}`)
	require.Equal(t, http.StatusOK, w.Code)

	exp, err := calculator.Sharding(1000, 8, 250)
	require.NoError(t, err)

	var got calculator.ShardingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, exp, got)

	w = serve(t, mux, http.MethodPost, "/v1/calculate/trilemma", `{"scalability": 10, "security": 90, "decentralization": 90}`)
	require.Equal(t, http.StatusOK, w.Code)

	var ts calculator.TrilemmaScore
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ts))
	assert.Equal(t, calculator.DimScalability, ts.WeakestDimension)
	assert.Equal(t, calculator.DimSecurity, ts.StrongestDimension)
}

func TestCalculateInvalid(t *testing.T) {
	mux, _ := newMux(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "zero batch size", path: "/v1/calculate/layer2", body: `{"batch_size": 0}`},
		{name: "negative volume", path: "/v1/calculate/compare", body: `{"tx_volume": -1}`},
		{name: "no shards", path: "/v1/calculate/hybrid", body: `{"num_shards": 0}`},
		{name: "score above range", path: "/v1/calculate/trilemma", body: `{"security": 101}`},
		{name: "unknown field", path: "/v1/calculate/sharding", body: `{"shards": 8}`},
		{name: "malformed", path: "/v1/calculate/layer2", body: `{"tx_volume":`},
		{name: "wrong type", path: "/v1/calculate/layer2", body: `{"tx_volume": "many"}`},
		{name: "cost overflow", path: "/v1/calculate/layer2", body: `{"tx_volume": 1e303}`},
		{name: "throughput overflow", path: "/v1/calculate/hybrid", body: `{"layer2_multiplier": 1e308}`},
		{name: "compare overflow", path: "/v1/calculate/compare", body: `{"tx_volume": 1e303}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, mux, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var er v1.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &er))
			assert.NotEmpty(t, er.Error)
		})
	}
}

func TestCalculatePublishesEvent(t *testing.T) {
	mux, evts := newMux(t)

	ch := evts.Acquire("listener")

	w := serve(t, mux, http.MethodPost, "/v1/calculate/hybrid", `{"num_shards": 4}`)
	require.Equal(t, http.StatusOK, w.Code)

	select {
	case evt := <-ch:
		assert.Equal(t, calcgrp.KindHybrid, evt.Kind)
		assert.NotEmpty(t, evt.TraceID)
		assert.Contains(t, evt.Summary, "Sharded (4 shards)")
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
}

func TestCalculateOverflowPublishesNothing(t *testing.T) {
	mux, evts := newMux(t)

	ch := evts.Acquire("listener")

	w := serve(t, mux, http.MethodPost, "/v1/calculate/layer2", `{"tx_volume": 1e303}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var er v1.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &er))
	assert.Contains(t, er.Error, "l1_cost")

	select {
	case evt := <-ch:
		t.Fatalf("unexpected event: %+v", evt)
	case <-time.After(100 * time.Millisecond):
	}
}

// --- Framework ---

func TestNotFound(t *testing.T) {
	mux, _ := newMux(t)

	w := serve(t, mux, http.MethodGet, "/no/such/page", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var er v1.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &er))
	assert.Equal(t, "resource not found", er.Error)
}

func TestPreflight(t *testing.T) {
	mux, _ := newMux(t)

	w := serve(t, mux, http.MethodOptions, "/v1/calculate/layer2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCompression(t *testing.T) {
	mux, _ := newMux(t)

	r := httptest.NewRequest(http.MethodGet, "/v1/metrics/all", nil)
	r.Header.Set("Accept-Encoding", "gzip")

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}

// --- Pages ---

func TestPages(t *testing.T) {
	mux, _ := newMux(t)

	pages := map[string]string{
		"/":           "Base layers",
		"/comparison": "Rankings",
		"/layer2":     "Rollup model",
		"/sharding":   "Sharding implementations",
		"/hybrid":     "Sharded throughput",
	}

	for path, content := range pages {
		t.Run(path, func(t *testing.T) {
			w := serve(t, mux, http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

			body := w.Body.String()
			assert.Contains(t, body, content)
			assert.Contains(t, body, "Scalability Paper by Test Author")
		})
	}
}

func TestIndexAbstract(t *testing.T) {
	mux, _ := newMux(t)

	w := serve(t, mux, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<strong>Layer 2 rollups</strong>")
}

// --- Events ---

func TestEventFeedWithoutUpgrade(t *testing.T) {
	mux, _ := newMux(t)

	w := serve(t, mux, http.MethodGet, "/v1/events", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusText(http.StatusBadRequest)+"\n", w.Body.String())
}

func TestEventFeed(t *testing.T) {
	mux, evts := newMux(t)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/events"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.Eventually(t, func() bool { return evts.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/calculate/trilemma", strings.NewReader(`{"scalability": 95, "security": 92, "decentralization": 88}`))
	require.NoError(t, err)
	calc, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	calc.Body.Close()
	require.Equal(t, http.StatusOK, calc.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var evt events.Event
	require.NoError(t, conn.ReadJSON(&evt))
	assert.Equal(t, calcgrp.KindTrilemma, evt.Kind)
	assert.Contains(t, evt.Summary, "weakest decentralization")
}
