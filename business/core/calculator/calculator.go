// Package calculator implements the closed-form performance models for
// layer 2 rollups, sharding and the hybrid of both. Every function is pure:
// the same inputs always produce the same result.
package calculator

import (
	"errors"
	"fmt"
	"math"
)

// Default parameter values used when a caller has no preference.
const (
	DefaultTxVolume         = 1_000_000
	DefaultBatchSize        = 100
	DefaultGasPrice         = 20
	DefaultShardingShards   = 64
	DefaultTPSPerShard      = 100
	DefaultHybridShards     = 32
	DefaultLayer2Multiplier = 50
	DefaultTrilemmaScore    = 50
)

// BaseLayerTPS is the throughput of the Ethereum base layer every solution
// is measured against.
const BaseLayerTPS = 15

// Set of error variables for parameter validation.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrOutOfRange       = errors.New("parameter out of range")
)

// ParamError identifies the parameter that failed validation.
type ParamError struct {
	Param string
	Value float64
	Err   error
}

// Error implements the error interface.
func (pe *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %v", pe.Err, pe.Param, pe.Value)
}

// Unwrap provides access to the kind of failure.
func (pe *ParamError) Unwrap() error {
	return pe.Err
}

// positive checks the value can be used as a divisor or multiplier.
func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &ParamError{Param: name, Value: v, Err: ErrInvalidParameter}
	}
	return nil
}

// volume checks a transaction volume. Zero is a valid, if empty, workload.
func volume(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParamError{Param: "tx_volume", Value: v, Err: ErrInvalidParameter}
	}
	if v < 0 {
		return &ParamError{Param: "tx_volume", Value: v, Err: ErrOutOfRange}
	}
	return nil
}

// score checks a trilemma dimension is within [0,100].
func score(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 100 {
		return &ParamError{Param: name, Value: v, Err: ErrOutOfRange}
	}
	return nil
}

// finite checks a computed value did not overflow. The inputs were valid
// on their own but their product is not representable.
func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParamError{Param: name, Value: v, Err: ErrInvalidParameter}
	}
	return nil
}

// round2 rounds half to even to the two decimal places the research
// tables report. Values this large have no fractional part left to round.
func round2(v float64) float64 {
	if math.Abs(v) > 1e300 {
		return v
	}
	return math.RoundToEven(v*100) / 100
}
