package notify

import (
	"context"

	"desert-war-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// LogNotifier пишет уведомления движка распределения в структурированный лог.
type LogNotifier struct {
	logger *logrus.Logger
}

// NewLogNotifier создает новый экземпляр LogNotifier.
func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) CapacityWarning(_ context.Context, eventID string, warning domain.CapacityWarning) {
	n.logger.WithFields(logrus.Fields{
		"event_id":      eventID,
		"bucket":        warning.Bucket,
		"current_count": warning.CurrentCount,
		"limit":         warning.Limit,
	}).Warn("Bucket capacity reached")
}

func (n *LogNotifier) CommitSucceeded(_ context.Context, outcome domain.CommitOutcome) {
	n.logger.WithFields(logrus.Fields{
		"event_id": outcome.EventID,
		"kind":     outcome.Kind,
		"entries":  outcome.Entries,
	}).Info("Roster committed")
}

func (n *LogNotifier) CommitFailed(_ context.Context, eventID string, kind domain.CommitKind, err error) {
	n.logger.WithFields(logrus.Fields{
		"event_id": eventID,
		"kind":     kind,
	}).WithError(err).Error("Roster commit failed")
}
