package ranking

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes the spread of the scores in a ranking table.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
}

func Summarize(rows []Row) (Summary, error) {
	if len(rows) == 0 {
		return Summary{}, nil
	}
	data := make(stats.Float64Data, len(rows))
	for i, r := range rows {
		data[i] = r.Score
	}

	mean, err := data.Mean()
	if err != nil {
		return Summary{}, fmt.Errorf("mean: %w", err)
	}
	median, err := data.Median()
	if err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}
	sd, err := data.StandardDeviation()
	if err != nil {
		return Summary{}, fmt.Errorf("standard deviation: %w", err)
	}
	return Summary{Count: len(rows), Mean: mean, Median: median, StdDev: sd}, nil
}
