package hermes

import (
	"log/slog"
	"time"

	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

// Notifier publishes survey lifecycle events. A nil Notifier, or one with a
// nil client, drops every event.
type Notifier struct {
	client Client
	logger *slog.Logger
	now    func() time.Time
}

func NewNotifier(c Client, logger *slog.Logger) *Notifier {
	return &Notifier{client: c, logger: logger, now: time.Now}
}

func (n *Notifier) enabled() bool {
	return n != nil && n.client != nil
}

func (n *Notifier) SurveyCreated(m *topsis.Model) {
	if !n.enabled() {
		return
	}
	n.publish(SubjectSurveyCreated(m.ModelID), n.surveyEvent(m))
}

func (n *Notifier) SurveyImported(m *topsis.Model) {
	if !n.enabled() {
		return
	}
	n.publish(SubjectSurveyImported(m.ModelID), n.surveyEvent(m))
}

func (n *Notifier) SurveyDeleted(m *topsis.Model) {
	if !n.enabled() {
		return
	}
	n.publish(SubjectSurveyDeleted(m.ModelID), n.surveyEvent(m))
}

func (n *Notifier) ExpertSubmitted(m *topsis.Model, expertID string) {
	if !n.enabled() {
		return
	}
	n.publish(SubjectExpertSubmitted(m.ModelID), ExpertSubmittedEvent{
		ModelID:      m.ModelID,
		ExpertID:     expertID,
		ExpertInputs: len(m.ExpertInputs),
		Timestamp:    n.now(),
	})
}

func (n *Notifier) surveyEvent(m *topsis.Model) SurveyEvent {
	return SurveyEvent{
		ModelID:      m.ModelID,
		Name:         m.Name,
		Alternatives: len(m.Alternatives),
		Criteria:     len(m.Criteria),
		Timestamp:    n.now(),
	}
}

func (n *Notifier) publish(subject string, event interface{}) {
	if err := n.client.Publish(subject, event); err != nil {
		n.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}
