package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anoline/anoline/internal/db/models"
	"github.com/anoline/anoline/internal/services"
)

func TestScheduleCommand(t *testing.T) {
	cmd := GetGanttCmd()
	mockClient, outputBuf := setupTestCommand(t, cmd)

	mockClient.ScheduleJobFn = func(_ context.Context, req *services.ScheduleRequest) ([]models.GanttJob, error) {
		assert.Equal(t, uint(5), req.ComponentJobID)
		assert.Equal(t, "even_rinse_cold_seal_b", req.RinseSealRoute)
		assert.Equal(t, time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC), req.Start)

		return []models.GanttJob{
			{ComponentJobID: 5, LoadNumber: 1},
			{ComponentJobID: 5, LoadNumber: 2},
		}, nil
	}

	cmd.SetArgs([]string{"schedule", "-j", "5", "-t", "2026-08-29T08:00:00Z", "--rinse-seal", "even_rinse_cold_seal_b"})
	err := cmd.Execute()
	require.NoError(t, err, "Command execution failed")

	require.Equal(t, 1, mockClient.ScheduleJobCalls, "ScheduleJob should be called once")
	assert.Contains(t, outputBuf.String(), "Scheduled 2 loads for component job 5")
}

func TestScheduleCommandRejectsBadStart(t *testing.T) {
	cmd := GetGanttCmd()
	mockClient, _ := setupTestCommand(t, cmd)

	cmd.SetArgs([]string{"schedule", "-j", "5", "-t", "tomorrow"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start time")
	assert.Equal(t, 0, mockClient.ScheduleJobCalls)
}

func TestAdjustCommand(t *testing.T) {
	cmd := GetGanttCmd()
	mockClient, outputBuf := setupTestCommand(t, cmd)

	mockClient.AdjustJobFn = func(_ context.Context, req *services.AdjustRequest) error {
		assert.Equal(t, uint(5), req.ComponentJobID)
		assert.Equal(t, "Anodising 2B", req.AnodisingTank)
		return nil
	}

	cmd.SetArgs([]string{"adjust", "-j", "5", "--tank", "Anodising 2B"})
	err := cmd.Execute()
	require.NoError(t, err, "Command execution failed")

	require.Equal(t, 1, mockClient.AdjustJobCalls, "AdjustJob should be called once")
	assert.Contains(t, outputBuf.String(), "Adjusted component job 5")
}

func TestShiftCommand(t *testing.T) {
	cmd := GetGanttCmd()
	mockClient, outputBuf := setupTestCommand(t, cmd)

	mockClient.ShiftJobFn = func(_ context.Context, req *services.ShiftRequest) error {
		assert.Equal(t, uint(5), req.ComponentJobID)
		assert.Equal(t, -30, req.DeltaMinutes)
		return nil
	}

	cmd.SetArgs([]string{"shift", "-j", "5", "-m", "-30"})
	err := cmd.Execute()
	require.NoError(t, err, "Command execution failed")

	require.Equal(t, 1, mockClient.ShiftJobCalls, "ShiftJob should be called once")
	assert.Contains(t, outputBuf.String(), "Shifted component job 5 by -30 minutes")
}

func TestGanttDataCommand(t *testing.T) {
	cmd := GetGanttCmd()
	mockClient, outputBuf := setupTestCommand(t, cmd)

	mockClient.GanttDataFn = func(_ context.Context) (services.GanttData, error) {
		return services.GanttData{
			Slots: []string{"jigging", "degrease"},
			Loads: []services.LoadTimeline{
				{
					ComponentJobID: 5,
					LoadNumber:     1,
					Intervals: []services.SlotInterval{
						{Slot: "jigging", Start: "2026-08-29T08:00:00Z", End: "2026-08-29T08:02:00Z"},
					},
				},
			},
		}, nil
	}

	cmd.SetArgs([]string{"data"})
	err := cmd.Execute()
	require.NoError(t, err, "Command execution failed")

	require.Equal(t, 1, mockClient.GanttDataCalls, "GanttData should be called once")

	output := outputBuf.String()
	assert.Contains(t, output, `"slot": "jigging"`)
	assert.Contains(t, output, `"start": "2026-08-29T08:00:00Z"`)
}

func TestPurgeCommand(t *testing.T) {
	cmd := GetGanttCmd()
	mockClient, outputBuf := setupTestCommand(t, cmd)

	mockClient.DeleteExpiredFn = func(_ context.Context) (int64, error) {
		return 4, nil
	}

	cmd.SetArgs([]string{"purge"})
	err := cmd.Execute()
	require.NoError(t, err, "Command execution failed")

	require.Equal(t, 1, mockClient.DeleteExpiredCalls, "DeleteExpired should be called once")
	assert.Contains(t, outputBuf.String(), "Purged 4 expired loads")
}
