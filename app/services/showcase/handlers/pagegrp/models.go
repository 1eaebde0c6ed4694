package pagegrp

import (
	"github.com/ardanlabs/scalability/business/core/calculator"
	"github.com/ardanlabs/scalability/business/core/catalog"
	"github.com/ardanlabs/scalability/foundation/units"
)

type solutionRow struct {
	ID               string
	Name             string
	TPS              string
	Color            string
	Security         int
	Decentralization int
}

func newSolutionRow(id string, name string, tps int, security int, decentralization int) solutionRow {
	return solutionRow{
		ID:               id,
		Name:             name,
		TPS:              units.FormatNumber(float64(tps), 1),
		Color:            units.PerformanceColor(float64(tps)),
		Security:         security,
		Decentralization: decentralization,
	}
}

type layer2Row struct {
	solutionRow
	Layer2 catalog.Layer2
	Cost   string
}

type shardingRow struct {
	solutionRow
	Sharding catalog.Sharding
}

type summaryRow struct {
	Approach string
	Summary  catalog.Summary
}

type trilemmaRow struct {
	Design  string
	Profile catalog.TrilemmaProfile
	Score   calculator.TrilemmaScore
}
