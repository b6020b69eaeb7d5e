package hermes

import "time"

type SurveyEvent struct {
	ModelID      string    `json:"model_id"`
	Name         string    `json:"name"`
	Alternatives int       `json:"alternatives"`
	Criteria     int       `json:"criteria"`
	Timestamp    time.Time `json:"timestamp"`
}

type ExpertSubmittedEvent struct {
	ModelID      string    `json:"model_id"`
	ExpertID     string    `json:"expert_id"`
	ExpertInputs int       `json:"expert_inputs"`
	Timestamp    time.Time `json:"timestamp"`
}
