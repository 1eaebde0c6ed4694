package catalog_test

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/ardanlabs/scalability/business/core/catalog"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func inRange(v int) bool {
	return v >= 0 && v <= 100
}

func TestScores(t *testing.T) {
	t.Log("Given the need to keep every score between 0 and 100.")
	{
		t.Logf("\tTest 0:\tWhen checking every solution record.")
		{
			sols := catalog.AllSolutions()

			for id, rec := range sols.Base {
				if !inRange(rec.SecurityScore) || !inRange(rec.DecentralizationScore) {
					t.Fatalf("\t%s\tTest 0:\tShould have valid scores for %q: %+v", failed, id, rec)
				}
			}
			for id, rec := range sols.Layer2 {
				if !inRange(rec.SecurityScore) || !inRange(rec.DecentralizationScore) {
					t.Fatalf("\t%s\tTest 0:\tShould have valid scores for %q: %+v", failed, id, rec)
				}
			}
			for id, rec := range sols.Sharding {
				if !inRange(rec.SecurityScore) || !inRange(rec.DecentralizationScore) {
					t.Fatalf("\t%s\tTest 0:\tShould have valid scores for %q: %+v", failed, id, rec)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould have valid scores for every solution.", success)
		}

		t.Logf("\tTest 1:\tWhen checking every trilemma profile.")
		{
			for id, p := range catalog.Trilemma() {
				if !inRange(p.Scalability) || !inRange(p.Security) || !inRange(p.Decentralization) {
					t.Fatalf("\t%s\tTest 1:\tShould have valid dimensions for %q: %+v", failed, id, p)
				}
			}
			t.Logf("\t%s\tTest 1:\tShould have valid dimensions for every profile.", success)
		}
	}
}

func TestOrder(t *testing.T) {
	tt := []struct {
		name string
		ids  []string
		keys []string
	}{
		{name: "base", ids: catalog.BaseLayerIDs(), keys: keys(catalog.BaseLayers())},
		{name: "layer2", ids: catalog.Layer2IDs(), keys: keys(catalog.Layer2Solutions())},
		{name: "sharding", ids: catalog.ShardingIDs(), keys: keys(catalog.ShardingSolutions())},
	}

	t.Log("Given the need to present every table in a fixed order.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				ids := slices.Clone(tst.ids)
				slices.Sort(ids)
				if !slices.Equal(ids, tst.keys) {
					t.Logf("\t\tTest %d:\tgot: %v", testID, ids)
					t.Logf("\t\tTest %d:\texp: %v", testID, tst.keys)
					t.Fatalf("\t%s\tTest %d:\tShould list every %s record exactly once.", failed, testID, tst.name)
				}
				t.Logf("\t%s\tTest %d:\tShould list every %s record exactly once.", success, testID, tst.name)
			}

			t.Run(tst.name, f)
		}
	}
}

func keys[V any](m map[string]V) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}

func TestImmutable(t *testing.T) {
	t.Log("Given the need to protect the shared tables from callers.")
	{
		t.Logf("\tTest 0:\tWhen a caller changes a returned table.")
		{
			l2 := catalog.Layer2Solutions()
			rec := l2["polygon"]
			rec.UseCases[0] = "changed"
			rec.TPS = 1
			l2["polygon"] = rec
			delete(l2, "zksync")

			vectors := catalog.SecurityVectors()
			delete(vectors["layer1"], "51% Attack")

			fresh := catalog.Layer2Solutions()
			if fresh["polygon"].TPS != 7000 || fresh["polygon"].UseCases[0] != "DeFi" {
				t.Fatalf("\t%s\tTest 0:\tShould not change the catalog record: %+v", failed, fresh["polygon"])
			}
			if _, exists := fresh["zksync"]; !exists {
				t.Fatalf("\t%s\tTest 0:\tShould not remove catalog records.", failed)
			}
			if _, exists := catalog.SecurityVectors()["layer1"]["51% Attack"]; !exists {
				t.Fatalf("\t%s\tTest 0:\tShould not remove catalog attack vectors.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould leave the catalog unchanged.", success)
		}
	}
}

func TestLookup(t *testing.T) {
	tt := []struct {
		id       string
		category string
		err      error
	}{
		{id: "bitcoin", category: catalog.CategoryBase},
		{id: "lightning_network", category: catalog.CategoryLayer2},
		{id: "ethereum_2", category: catalog.CategorySharding},
		{id: "solana", err: catalog.ErrNotFound},
	}

	t.Log("Given the need to look up a solution by id.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				entry, err := catalog.Lookup(tst.id)
				if !errors.Is(err, tst.err) {
					t.Fatalf("\t%s\tTest %d:\tShould get error %v for %q, got %v.", failed, testID, tst.err, tst.id, err)
				}
				if entry.Category != tst.category {
					t.Fatalf("\t%s\tTest %d:\tShould find %q in %q, got %q.", failed, testID, tst.id, tst.category, entry.Category)
				}
				t.Logf("\t%s\tTest %d:\tShould resolve %q.", success, testID, tst.id)
			}

			t.Run(tst.id, f)
		}
	}
}

func TestFigureJSON(t *testing.T) {
	t.Log("Given the need to encode mixed numeric and textual figures.")
	{
		t.Logf("\tTest 0:\tWhen encoding the base layer table.")
		{
			data, err := json.Marshal(catalog.BaseLayers())
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to marshal: %v", failed, err)
			}

			var got map[string]map[string]any
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to unmarshal: %v", failed, err)
			}

			if got["bitcoin"]["block_time"] != float64(600) {
				t.Fatalf("\t%s\tTest 0:\tShould encode a numeric block time, got %v.", failed, got["bitcoin"]["block_time"])
			}
			if got["visa"]["block_time"] != "N/A" {
				t.Fatalf("\t%s\tTest 0:\tShould encode a textual block time, got %v.", failed, got["visa"]["block_time"])
			}
			if _, exists := got["visa"]["block_size_mb"]; exists {
				t.Fatalf("\t%s\tTest 0:\tShould omit an empty block size.", failed)
			}
			if got["ethereum"]["block_size_mb"] != "variable" {
				t.Fatalf("\t%s\tTest 0:\tShould encode a textual block size, got %v.", failed, got["ethereum"]["block_size_mb"])
			}
			t.Logf("\t%s\tTest 0:\tShould encode figures as numbers or strings.", success)
		}

		t.Logf("\tTest 1:\tWhen decoding figures.")
		{
			var figs []catalog.Figure
			if err := json.Unmarshal([]byte(`[64, "Dynamic"]`), &figs); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to unmarshal: %v", failed, err)
			}
			if figs[0] != catalog.Num(64) || figs[1] != catalog.Text("Dynamic") {
				t.Fatalf("\t%s\tTest 1:\tShould decode both kinds, got %+v.", failed, figs)
			}
			t.Logf("\t%s\tTest 1:\tShould decode both kinds.", success)
		}
	}
}
