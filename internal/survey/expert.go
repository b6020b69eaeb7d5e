package survey

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

const (
	MinScore = 1
	MaxScore = 10
)

// ExpertForm holds one expert's answers. A nil entry is a field left blank.
type ExpertForm struct {
	Weights map[string]*float64
	Scores  map[string]map[string]*int
}

// NewExpertForm starts with every weight and score blank.
func NewExpertForm(m *topsis.Model) *ExpertForm {
	f := &ExpertForm{
		Weights: make(map[string]*float64, len(m.Criteria)),
		Scores:  make(map[string]map[string]*int, len(m.Criteria)),
	}
	for _, c := range m.Criteria {
		f.Weights[c.ID] = nil
		f.Scores[c.ID] = make(map[string]*int, len(m.Alternatives))
		for _, a := range m.Alternatives {
			f.Scores[c.ID][a.ID] = nil
		}
	}
	return f
}

func WeightField(criterionID string) string {
	return "weight." + criterionID
}

func ScoreField(criterionID, alternativeID string) string {
	return "score." + criterionID + "." + alternativeID
}

// ScoreOptions lists the values offered for every score.
func ScoreOptions() []int {
	opts := make([]int, 0, MaxScore-MinScore+1)
	for v := MinScore; v <= MaxScore; v++ {
		opts = append(opts, v)
	}
	return opts
}

// ParseExpertForm reads the weight and score fields for every criterion and
// alternative of m. Blank fields stay nil.
func ParseExpertForm(m *topsis.Model, values url.Values) (*ExpertForm, error) {
	f := NewExpertForm(m)
	for _, c := range m.Criteria {
		if raw := strings.TrimSpace(values.Get(WeightField(c.ID))); raw != "" {
			w, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return f, fmt.Errorf("weight for %q is not a number", c.Name)
			}
			f.Weights[c.ID] = &w
		}
		for _, a := range m.Alternatives {
			raw := strings.TrimSpace(values.Get(ScoreField(c.ID, a.ID)))
			if raw == "" {
				continue
			}
			s, err := strconv.Atoi(raw)
			if err != nil || s < MinScore || s > MaxScore {
				return f, fmt.Errorf("score for %q on %q must be between %d and %d", a.Name, c.Name, MinScore, MaxScore)
			}
			f.Scores[c.ID][a.ID] = &s
		}
	}
	return f, nil
}

// Weight returns the weight as form text, blank when unset.
func (f *ExpertForm) Weight(criterionID string) string {
	if w := f.Weights[criterionID]; w != nil {
		return strconv.FormatFloat(*w, 'f', -1, 64)
	}
	return ""
}

// Score returns the selected score, 0 when unset.
func (f *ExpertForm) Score(criterionID, alternativeID string) int {
	if s := f.Scores[criterionID][alternativeID]; s != nil {
		return *s
	}
	return 0
}

// Payload drops blank fields and tags the input with a fresh expert ID.
// Every criterion keeps a score map, possibly empty.
func (f *ExpertForm) Payload() topsis.ExpertInput {
	in := topsis.ExpertInput{
		ExpertID:         uuid.NewString(),
		CriterionWeights: make(topsis.CriterionWeights),
		CriterionScores:  make(topsis.CriterionScores),
	}
	for critID, w := range f.Weights {
		if w != nil {
			in.CriterionWeights[critID] = *w
		}
	}
	for critID, byAlt := range f.Scores {
		scores := make(map[string]float64)
		for altID, s := range byAlt {
			if s != nil {
				scores[altID] = float64(*s)
			}
		}
		in.CriterionScores[critID] = scores
	}
	return in
}
