package profile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/rebuildhelper/internal/consult"
)

func TestDefaultHistory(t *testing.T) {
	h := DefaultHistory()
	require.Len(t, h.Questions, 3)
	require.Len(t, h.Consultations, 2)

	first := h.Consultations[0]
	require.Equal(t, "CONS12345678", first.ID)
	require.Equal(t, consult.ModeOnline, first.Mode)
	require.Equal(t, StatusBooked, first.Status)
	require.Equal(t, "AICON 사용문의", first.CategoryName())
	require.Equal(t, consult.ModeOffline, h.Consultations[1].Mode)
}

func TestParseHistoryError(t *testing.T) {
	_, err := ParseHistory([]byte("questions: {"))
	require.Error(t, err)
}

func TestStatusColor(t *testing.T) {
	require.Equal(t, "blue", StatusBooked.Color())
	require.Equal(t, "green", StatusCompleted.Color())
	require.Equal(t, "red", StatusCancelled.Color())
	require.Equal(t, "gray", Status("대기").Color())
}

func TestViewIsReadOnly(t *testing.T) {
	v := NewView(User{Name: "김재건"}, DefaultHistory(), true)
	qs := v.Questions()
	qs[0].Question = "changed"
	require.Equal(t, "접도율이 뭐예요?", v.Questions()[0].Question)

	cs := v.Consultations()
	cs[0].Status = StatusCancelled
	require.Equal(t, StatusBooked, v.Consultations()[0].Status)
}

func TestToggleNotifications(t *testing.T) {
	v := NewView(User{}, History{}, true)
	require.False(t, v.ToggleNotifications())
	require.True(t, v.ToggleNotifications())
	require.True(t, v.Notifications())
	require.Empty(t, v.Questions())
}
