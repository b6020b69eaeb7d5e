package ranking

import "github.com/MikeSquared-Agency/Rollerskates/internal/topsis"

type MatrixRow struct {
	Alternative topsis.Alternative
	Values      []float64
}

// Matrix is the aggregated decision matrix laid out in model order.
type Matrix struct {
	Criteria []topsis.Criterion
	Rows     []MatrixRow
}

// BuildMatrix lays out the aggregated decision matrix as alternatives by
// criteria. Cells the API did not return are 0.
func BuildMatrix(m *topsis.Model, r *topsis.Ranking) Matrix {
	out := Matrix{Criteria: m.Criteria, Rows: make([]MatrixRow, 0, len(m.Alternatives))}
	for _, alt := range m.Alternatives {
		values := make([]float64, len(m.Criteria))
		byCrit := r.AggregatedDecisionMatrix[alt.ID]
		for j, crit := range m.Criteria {
			values[j] = byCrit[crit.ID]
		}
		out.Rows = append(out.Rows, MatrixRow{Alternative: alt, Values: values})
	}
	return out
}
