// Package catalog provides the research figures for the blockchain
// scalability solutions covered by the paper. The tables are fixed at
// compile time and every accessor hands out a copy so the shared data
// can never be changed by a caller.
package catalog

import (
	"encoding/json"
	"errors"
	"maps"
	"slices"
	"strconv"
)

// ErrNotFound is returned when a solution id is not part of the catalog.
var ErrNotFound = errors.New("solution not found")

// Set of solution categories.
const (
	CategoryBase     = "base"
	CategoryLayer2   = "layer2"
	CategorySharding = "sharding"
	CategoryHybrid   = "hybrid"
)

// Figure is a research figure that is numeric for some solutions and only
// descriptive for others, like a block time of "N/A" or a shard count of
// "Dynamic". It marshals as a JSON number or a JSON string accordingly.
type Figure struct {
	Num  float64
	Text string
}

// Num constructs a numeric figure.
func Num(v float64) Figure {
	return Figure{Num: v}
}

// Text constructs a descriptive figure.
func Text(s string) Figure {
	return Figure{Text: s}
}

// IsZero reports whether the figure carries no value.
func (f Figure) IsZero() bool {
	return f.Num == 0 && f.Text == ""
}

// String implements the fmt.Stringer interface.
func (f Figure) String() string {
	if f.Text != "" {
		return f.Text
	}
	return strconv.FormatFloat(f.Num, 'f', -1, 64)
}

// MarshalJSON implements the json.Marshaler interface.
func (f Figure) MarshalJSON() ([]byte, error) {
	if f.Text != "" {
		return json.Marshal(f.Text)
	}
	return json.Marshal(f.Num)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *Figure) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = Text(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = Num(n)
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (f Figure) MarshalYAML() (any, error) {
	if f.Text != "" {
		return f.Text, nil
	}
	return f.Num, nil
}

// =============================================================================

// BaseLayer describes a layer 1 chain, or a traditional payment network
// used as a reference point.
type BaseLayer struct {
	Name                  string `json:"name" yaml:"name"`
	TPS                   int    `json:"tps" yaml:"tps"`
	BlockTime             Figure `json:"block_time" yaml:"block_time"`
	BlockSizeMB           Figure `json:"block_size_mb,omitzero" yaml:"block_size_mb,omitempty"`
	Consensus             string `json:"consensus" yaml:"consensus"`
	FinalityTime          string `json:"finality_time" yaml:"finality_time"`
	DecentralizationScore int    `json:"decentralization_score" yaml:"decentralization_score"`
	SecurityScore         int    `json:"security_score" yaml:"security_score"`
}

// Layer2 describes a layer 2 solution built on top of a parent chain.
type Layer2 struct {
	Name                  string   `json:"name" yaml:"name"`
	Type                  string   `json:"type" yaml:"type"`
	ParentChain           string   `json:"parent_chain" yaml:"parent_chain"`
	TPS                   int      `json:"tps" yaml:"tps"`
	AvgTransactionCostUSD float64  `json:"avg_transaction_cost_usd" yaml:"avg_transaction_cost_usd"`
	FinalityTime          string   `json:"finality_time" yaml:"finality_time"`
	SecurityModel         string   `json:"security_model" yaml:"security_model"`
	WithdrawalDelay       string   `json:"withdrawal_delay" yaml:"withdrawal_delay"`
	CostReduction         string   `json:"cost_reduction" yaml:"cost_reduction"`
	Complexity            string   `json:"complexity" yaml:"complexity"`
	UseCases              []string `json:"use_cases" yaml:"use_cases"`
	SecurityScore         int      `json:"security_score" yaml:"security_score"`
	DecentralizationScore int      `json:"decentralization_score" yaml:"decentralization_score"`
}

// Sharding describes a sharded chain.
type Sharding struct {
	Name                  string   `json:"name" yaml:"name"`
	Status                string   `json:"status" yaml:"status"`
	NumShards             Figure   `json:"num_shards" yaml:"num_shards"`
	TPSPerShard           int      `json:"tps_per_shard" yaml:"tps_per_shard"`
	TotalTPS              int      `json:"total_tps" yaml:"total_tps"`
	Consensus             string   `json:"consensus" yaml:"consensus"`
	CrossShardLatency     string   `json:"cross_shard_latency" yaml:"cross_shard_latency"`
	SecurityModel         string   `json:"security_model" yaml:"security_model"`
	ImplementationStatus  string   `json:"implementation_status" yaml:"implementation_status"`
	ThroughputImprovement string   `json:"throughput_improvement,omitempty" yaml:"throughput_improvement,omitempty"`
	LatencyReduction      string   `json:"latency_reduction,omitempty" yaml:"latency_reduction,omitempty"`
	Complexity            string   `json:"complexity" yaml:"complexity"`
	UseCases              []string `json:"use_cases,omitempty" yaml:"use_cases,omitempty"`
	SecurityScore         int      `json:"security_score" yaml:"security_score"`
	DecentralizationScore int      `json:"decentralization_score" yaml:"decentralization_score"`
}

// TrilemmaProfile positions a design on the three trilemma dimensions.
type TrilemmaProfile struct {
	Scalability      int `json:"scalability" yaml:"scalability"`
	Security         int `json:"security" yaml:"security"`
	Decentralization int `json:"decentralization" yaml:"decentralization"`
}

// Summary is one column of the qualitative comparison table.
type Summary struct {
	Throughput        string `json:"throughput" yaml:"throughput"`
	Performance       string `json:"performance" yaml:"performance"`
	Security          string `json:"security" yaml:"security"`
	Complexity        string `json:"complexity" yaml:"complexity"`
	CrossChain        string `json:"cross_chain" yaml:"cross_chain"`
	CostEfficiency    string `json:"cost_efficiency" yaml:"cost_efficiency"`
	EcosystemAdoption string `json:"ecosystem_adoption" yaml:"ecosystem_adoption"`
	BestFor           string `json:"best_for" yaml:"best_for"`
}

// Threat rates an attack vector.
type Threat struct {
	Likelihood string `json:"likelihood" yaml:"likelihood"`
	Impact     string `json:"impact" yaml:"impact"`
}

// Solutions groups every solution record by category.
type Solutions struct {
	Layer2   map[string]Layer2    `json:"layer2" yaml:"layer2"`
	Sharding map[string]Sharding  `json:"sharding" yaml:"sharding"`
	Base     map[string]BaseLayer `json:"base" yaml:"base"`
}

// Entry is the result of looking up a single solution by id.
type Entry struct {
	ID       string `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
	Record   any    `json:"record" yaml:"record"`
}

// =============================================================================

// AllSolutions returns every layer 2, sharding and base layer record.
func AllSolutions() Solutions {
	return Solutions{
		Layer2:   Layer2Solutions(),
		Sharding: ShardingSolutions(),
		Base:     BaseLayers(),
	}
}

// BaseLayers returns the base layer records keyed by id.
func BaseLayers() map[string]BaseLayer {
	return maps.Clone(baseLayers)
}

// Layer2Solutions returns the layer 2 records keyed by id.
func Layer2Solutions() map[string]Layer2 {
	cpy := make(map[string]Layer2, len(layer2Solutions))
	for id, rec := range layer2Solutions {
		rec.UseCases = slices.Clone(rec.UseCases)
		cpy[id] = rec
	}
	return cpy
}

// ShardingSolutions returns the sharding records keyed by id.
func ShardingSolutions() map[string]Sharding {
	cpy := make(map[string]Sharding, len(shardingSolutions))
	for id, rec := range shardingSolutions {
		rec.UseCases = slices.Clone(rec.UseCases)
		cpy[id] = rec
	}
	return cpy
}

// Trilemma returns the trilemma profile of each design keyed by id.
func Trilemma() map[string]TrilemmaProfile {
	return maps.Clone(trilemma)
}

// Comparison returns the qualitative comparison table keyed by approach.
func Comparison() map[string]Summary {
	return maps.Clone(comparison)
}

// SecurityVectors returns the attack vectors for each category keyed by
// category and then by attack name.
func SecurityVectors() map[string]map[string]Threat {
	cpy := make(map[string]map[string]Threat, len(securityVectors))
	for category, threats := range securityVectors {
		cpy[category] = maps.Clone(threats)
	}
	return cpy
}

// ChartColors returns the color used to chart each category.
func ChartColors() map[string]string {
	return maps.Clone(chartColors)
}

// Lookup finds a solution by id in any category.
func Lookup(id string) (Entry, error) {
	if rec, exists := baseLayers[id]; exists {
		return Entry{ID: id, Category: CategoryBase, Record: rec}, nil
	}

	if rec, exists := layer2Solutions[id]; exists {
		rec.UseCases = slices.Clone(rec.UseCases)
		return Entry{ID: id, Category: CategoryLayer2, Record: rec}, nil
	}

	if rec, exists := shardingSolutions[id]; exists {
		rec.UseCases = slices.Clone(rec.UseCases)
		return Entry{ID: id, Category: CategorySharding, Record: rec}, nil
	}

	return Entry{}, ErrNotFound
}

// BaseLayerIDs returns the base layer ids in presentation order.
func BaseLayerIDs() []string {
	return slices.Clone(baseLayerOrder)
}

// Layer2IDs returns the layer 2 ids in presentation order.
func Layer2IDs() []string {
	return slices.Clone(layer2Order)
}

// ShardingIDs returns the sharding ids in presentation order.
func ShardingIDs() []string {
	return slices.Clone(shardingOrder)
}
