package notify_test

import (
	"context"
	"errors"
	"testing"

	"desert-war-service/internal/domain"
	"desert-war-service/internal/notify"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier_CapacityWarning(t *testing.T) {
	logger, hook := test.NewNullLogger()
	n := notify.NewLogNotifier(logger)

	n.CapacityWarning(context.Background(), "ev1", domain.CapacityWarning{
		Bucket:       domain.BucketATeam,
		CurrentCount: 21,
		Limit:        20,
	})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "ev1", entry.Data["event_id"])
	assert.Equal(t, domain.BucketATeam, entry.Data["bucket"])
	assert.Equal(t, 21, entry.Data["current_count"])
	assert.Equal(t, 20, entry.Data["limit"])
}

func TestLogNotifier_Commit(t *testing.T) {
	logger, hook := test.NewNullLogger()
	n := notify.NewLogNotifier(logger)

	n.CommitSucceeded(context.Background(), domain.CommitOutcome{EventID: "ev1", Kind: domain.CommitConfirm, Entries: 3})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, domain.CommitConfirm, entry.Data["kind"])
	assert.Equal(t, 3, entry.Data["entries"])

	failure := errors.New("connection reset")
	n.CommitFailed(context.Background(), "ev1", domain.CommitSave, failure)

	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, failure, entry.Data[logrus.ErrorKey])
	assert.Len(t, hook.AllEntries(), 2)
}
