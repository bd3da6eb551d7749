package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anoline/anoline/internal/db/models"
	"github.com/anoline/anoline/internal/services"
	"github.com/anoline/anoline/pkg/api/v1/client/mock"
)

// setupTestCommand swaps in a mock client and wires an output buffer. The
// command is detached from the root for the test so executing it does not
// climb to the root and build a real client.
func setupTestCommand(t *testing.T, cmd *cobra.Command) (*mock.MockClient, *bytes.Buffer) {
	t.Helper()

	if parent := cmd.Parent(); parent != nil {
		parent.RemoveCommand(cmd)
		t.Cleanup(func() { parent.AddCommand(cmd) })
	}

	mockClient := &mock.MockClient{}

	originalClient := apiClient
	t.Cleanup(func() {
		apiClient = originalClient
	})
	apiClient = mockClient

	outputBuf := &bytes.Buffer{}
	cmd.SetOut(outputBuf)
	for _, subCmd := range cmd.Commands() {
		subCmd.SetOut(outputBuf)
	}

	return mockClient, outputBuf
}

func TestCreatePlanCommand(t *testing.T) {
	cmd := GetPlansCmd()
	mockClient, outputBuf := setupTestCommand(t, cmd)

	mockClient.CreatePlanFn = func(_ context.Context, req *services.PlanRequest) (models.ComponentJob, error) {
		assert.Equal(t, "AN-100", req.PartNumber)
		assert.Equal(t, 47, req.Quantity)

		return models.ComponentJob{
			PartNumber:          "AN-100",
			Quantity:            47,
			RequiredJigs:        10,
			LoadsRequired:       1,
			UnitsPerLoad:        50,
			QuantityOfFinalLoad: 47,
		}, nil
	}

	cmd.SetArgs([]string{"create", "-p", "AN-100", "-q", "47"})
	err := cmd.Execute()
	require.NoError(t, err, "Command execution failed")

	require.Equal(t, 1, mockClient.CreatePlanCalls, "CreatePlan should be called once")

	output := outputBuf.String()
	assert.Contains(t, output, `"part_number": "AN-100"`)
	assert.Contains(t, output, `"required_jigs": 10`)
	assert.Contains(t, output, `"quantity_of_final_load": 47`)
}

func TestGetPlanCommand(t *testing.T) {
	cmd := GetPlansCmd()
	mockClient, outputBuf := setupTestCommand(t, cmd)

	mockClient.GetPlanFn = func(_ context.Context, id uint) (models.ComponentJob, error) {
		assert.Equal(t, uint(123), id)

		return models.ComponentJob{
			PartNumber:    "AN-200",
			Quantity:      123,
			LoadsRequired: 3,
		}, nil
	}

	cmd.SetArgs([]string{"get", "-i", "123"})
	err := cmd.Execute()
	require.NoError(t, err, "Command execution failed")

	require.Equal(t, 1, mockClient.GetPlanCalls, "GetPlan should be called once")

	output := outputBuf.String()
	assert.Contains(t, output, `"part_number": "AN-200"`)
	assert.Contains(t, output, `"loads_required": 3`)
}

func TestDeletePlanCommand(t *testing.T) {
	cmd := GetPlansCmd()
	mockClient, outputBuf := setupTestCommand(t, cmd)

	mockClient.DeletePlanFn = func(_ context.Context, id uint) error {
		assert.Equal(t, uint(9), id)
		return nil
	}

	cmd.SetArgs([]string{"delete", "-i", "9"})
	err := cmd.Execute()
	require.NoError(t, err, "Command execution failed")

	require.Equal(t, 1, mockClient.DeletePlanCalls, "DeletePlan should be called once")
	assert.Contains(t, outputBuf.String(), "Deleted component job 9")
}
