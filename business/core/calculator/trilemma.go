package calculator

import (
	"fmt"
	"math"
)

// balanceThreshold is the variance under which a design counts as balanced.
const balanceThreshold = 100

// Set of trilemma dimension names.
const (
	DimScalability      = "scalability"
	DimSecurity         = "security"
	DimDecentralization = "decentralization"
)

// Dimensions holds the three scores that were analyzed.
type Dimensions struct {
	Scalability      float64 `json:"scalability" yaml:"scalability"`
	Security         float64 `json:"security" yaml:"security"`
	Decentralization float64 `json:"decentralization" yaml:"decentralization"`
}

// TrilemmaScore describes how evenly a design trades off the trilemma.
type TrilemmaScore struct {
	BalancedScore      float64    `json:"balanced_score" yaml:"balanced_score"`
	IndividualScores   Dimensions `json:"individual_scores" yaml:"individual_scores"`
	WeakestDimension   string     `json:"weakest_dimension" yaml:"weakest_dimension"`
	StrongestDimension string     `json:"strongest_dimension" yaml:"strongest_dimension"`
	TradeOffVariance   float64    `json:"trade_off_variance" yaml:"trade_off_variance"`
	IsBalanced         bool       `json:"is_balanced" yaml:"is_balanced"`
	Recommendation     string     `json:"recommendation" yaml:"recommendation"`
}

// dimension is a named score. The order of a slice of dimensions decides
// ties when picking the weakest and strongest.
type dimension struct {
	name  string
	value float64
}

// Trilemma scores a design from its scalability, security and
// decentralization, each in [0,100]. The balanced score is their geometric
// mean. Ties for weakest or strongest go to the first dimension in the order
// scalability, security, decentralization.
func Trilemma(scalability float64, security float64, decentralization float64) (TrilemmaScore, error) {
	dims := []dimension{
		{DimScalability, scalability},
		{DimSecurity, security},
		{DimDecentralization, decentralization},
	}

	for _, d := range dims {
		if err := score(d.name, d.value); err != nil {
			return TrilemmaScore{}, err
		}
	}

	balanced := math.Cbrt(scalability * security * decentralization)

	weakest, strongest := dims[0], dims[0]
	var variance float64
	for _, d := range dims {
		if d.value < weakest.value {
			weakest = d
		}
		if d.value > strongest.value {
			strongest = d
		}
		variance += (d.value - balanced) * (d.value - balanced)
	}
	variance /= float64(len(dims))

	ts := TrilemmaScore{
		BalancedScore: round2(balanced),
		IndividualScores: Dimensions{
			Scalability:      scalability,
			Security:         security,
			Decentralization: decentralization,
		},
		WeakestDimension:   weakest.name,
		StrongestDimension: strongest.name,
		TradeOffVariance:   round2(variance),
		IsBalanced:         variance < balanceThreshold,
		Recommendation:     fmt.Sprintf("Optimize %s to improve overall balance", weakest.name),
	}

	return ts, nil
}
