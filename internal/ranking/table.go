// Package ranking turns a computed TOPSIS result into the tables shown to users.
package ranking

import (
	"fmt"
	"sort"

	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

const (
	UnknownAlternative = "Unknown alternative"
	UnknownCriterion   = "Unknown criterion"
)

// Row is one line of a ranking table. Score is a percentage.
type Row struct {
	ID    string
	Name  string
	Score float64
	Place int
}

// Places assigns places in row order. A row whose score equals the previous
// row's score shares its place; otherwise the place is index+1.
func Places(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		r.Place = i + 1
		if i > 0 && r.Score == out[i-1].Score {
			r.Place = out[i-1].Place
		}
		out[i] = r
	}
	return out
}

// Alternatives builds the alternative ranking in the order the API ranked them.
func Alternatives(m *topsis.Model, r *topsis.Ranking) []Row {
	rows := make([]Row, 0, len(r.Ranking))
	for _, altID := range r.Ranking {
		name := UnknownAlternative
		if alt, ok := m.Alternative(altID); ok {
			name = alt.Name
		}
		rows = append(rows, Row{
			ID:    altID,
			Name:  name,
			Score: r.ClosenessScores[altID] * 100,
		})
	}
	return Places(rows)
}

// Criteria builds the criteria ranking from the averaged weights, heaviest
// first. Equal weights keep the model's criterion order.
func Criteria(m *topsis.Model, r *topsis.Ranking) []Row {
	order := make(map[string]int, len(m.Criteria))
	for i, c := range m.Criteria {
		order[c.ID] = i
	}

	rows := make([]Row, 0, len(r.AverageCriteriaWeights))
	for critID, weight := range r.AverageCriteriaWeights {
		name := UnknownCriterion
		if crit, ok := m.Criterion(critID); ok {
			name = crit.Name
		}
		rows = append(rows, Row{ID: critID, Name: name, Score: weight * 100})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		oi, iok := order[rows[i].ID]
		oj, jok := order[rows[j].ID]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		default:
			return rows[i].ID < rows[j].ID
		}
	})
	return Places(rows)
}

// Percent formats a percentage score with two decimals.
func Percent(score float64) string {
	return fmt.Sprintf("%.2f%%", score)
}

// Decimal formats a matrix value with two decimals.
func Decimal(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
