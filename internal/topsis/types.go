package topsis

type Alternative struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Criterion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CriterionWeights maps criterion ID to the weight an expert assigned it.
type CriterionWeights map[string]float64

// CriterionScores maps criterion ID to alternative ID to score.
type CriterionScores map[string]map[string]float64

type ExpertInput struct {
	ExpertID         string           `json:"expert_id,omitempty"`
	CriterionWeights CriterionWeights `json:"criterion_weights"`
	CriterionScores  CriterionScores  `json:"criterion_scores"`
}

// Model is one decision problem: ordered alternatives and criteria plus the
// expert inputs collected so far.
type Model struct {
	ModelID      string        `json:"model_id"`
	Name         string        `json:"name"`
	Alternatives []Alternative `json:"alternatives"`
	Criteria     []Criterion   `json:"criteria"`
	ExpertInputs []ExpertInput `json:"expert_inputs"`
}

// ModelCreate is the body of POST /models.
type ModelCreate struct {
	Name         string   `json:"name"`
	Criteria     []string `json:"criteria"`
	Alternatives []string `json:"alternatives"`
}

// Ranking is the computed TOPSIS result for a model.
type Ranking struct {
	AverageCriteriaWeights   map[string]float64            `json:"average_criteria_weights"`
	AggregatedDecisionMatrix map[string]map[string]float64 `json:"aggregated_decision_matrix"`
	ClosenessScores          map[string]float64            `json:"closeness_scores"`
	Ranking                  []string                      `json:"ranking"`
}

func (m *Model) Alternative(id string) (Alternative, bool) {
	for _, a := range m.Alternatives {
		if a.ID == id {
			return a, true
		}
	}
	return Alternative{}, false
}

func (m *Model) Criterion(id string) (Criterion, bool) {
	for _, c := range m.Criteria {
		if c.ID == id {
			return c, true
		}
	}
	return Criterion{}, false
}
