package hermes

const (
	StreamName   = "ROLLERSKATES_EVENTS"
	StreamMaxAge = "720h" // 30 days

	// SubjectAll matches every survey event.
	SubjectAll = "rollerskates.survey.>"
)

func SubjectSurveyCreated(modelID string) string  { return "rollerskates.survey." + modelID + ".created" }
func SubjectSurveyImported(modelID string) string { return "rollerskates.survey." + modelID + ".imported" }
func SubjectSurveyDeleted(modelID string) string  { return "rollerskates.survey." + modelID + ".deleted" }

func SubjectExpertSubmitted(modelID string) string {
	return "rollerskates.survey." + modelID + ".expert_submitted"
}
