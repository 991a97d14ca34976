package withdrawal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	bankAccountID := uuid.New()

	t.Run("creates at CREATED with the first history entry", func(t *testing.T) {
		w, err := New(userID, accountID, bankAccountID, 500)
		require.NoError(t, err)

		assert.Equal(t, StepCreated, w.Step)
		assert.Equal(t, int64(500), w.Amount)
		assert.Equal(t, BankPending, w.BankStatus)
		require.Len(t, w.StepHistory, 1)
		assert.Equal(t, StepCreated, w.StepHistory[0].Step)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := New(userID, accountID, bankAccountID, 0)
		assert.Error(t, err)
		_, err = New(userID, accountID, bankAccountID, -10)
		assert.Error(t, err)
	})
}

func TestWithdrawal_AppendStep(t *testing.T) {
	w, err := New(uuid.New(), uuid.New(), uuid.New(), 100)
	require.NoError(t, err)

	w.AppendStep(StepDebiting, 0)
	w.AppendStep(StepSendingToBank, 1)

	require.Len(t, w.StepHistory, 3)
	assert.Equal(t, StepSendingToBank, w.Step)
	assert.Equal(t, 1, w.StepRetrialCount)

	// the last history entry always mirrors the current step
	assert.Equal(t, w.Step, w.StepHistory[len(w.StepHistory)-1].Step)

	// history is append-only: earlier entries are untouched
	assert.Equal(t, StepCreated, w.StepHistory[0].Step)
	assert.Equal(t, StepDebiting, w.StepHistory[1].Step)
}

func TestWithdrawal_AppendNotification(t *testing.T) {
	userID := uuid.New()
	w, err := New(userID, uuid.New(), uuid.New(), 100)
	require.NoError(t, err)

	w.AppendNotification(NotificationSuccess, "done")
	w.AppendNotification(NotificationFailure, "whoops")

	require.Len(t, w.Notifications, 2)
	assert.Equal(t, NotificationSuccess, w.Notifications[0].Type)
	assert.Equal(t, "done", w.Notifications[0].Message)
	assert.Equal(t, userID, w.Notifications[0].UserID)
	assert.Equal(t, NotificationFailure, w.Notifications[1].Type)
}
