// Package mock provides a test double for the API client.
package mock

import (
	"context"
	"fmt"

	"github.com/anoline/anoline/internal/db/models"
	"github.com/anoline/anoline/internal/services"
	"github.com/anoline/anoline/pkg/api/v1/client"
)

var _ client.Client = &MockClient{}

// MockClient implements client.Client with settable function fields. Each
// method records its calls so tests can assert on invocation counts.
type MockClient struct {
	HealthCheckFn   func(ctx context.Context) (map[string]string, error)
	CreatePartFn    func(ctx context.Context, part *models.Part) error
	GetPartFn       func(ctx context.Context, partNumber string) (models.Part, error)
	CreateJigFn     func(ctx context.Context, jig *models.Jig) error
	CreatePlanFn    func(ctx context.Context, req *services.PlanRequest) (models.ComponentJob, error)
	PreviewPlanFn   func(ctx context.Context, req *services.PlanRequest) (models.ComponentJob, error)
	GetPlanFn       func(ctx context.Context, id uint) (models.ComponentJob, error)
	DeletePlanFn    func(ctx context.Context, id uint) error
	ScheduleJobFn   func(ctx context.Context, req *services.ScheduleRequest) ([]models.GanttJob, error)
	AdjustJobFn     func(ctx context.Context, req *services.AdjustRequest) error
	ShiftJobFn      func(ctx context.Context, req *services.ShiftRequest) error
	GanttDataFn     func(ctx context.Context) (services.GanttData, error)
	DeleteSchedFn   func(ctx context.Context, componentJobID uint) error
	DeleteExpiredFn func(ctx context.Context) (int64, error)

	HealthCheckCalls   int
	CreatePartCalls    int
	GetPartCalls       int
	CreateJigCalls     int
	CreatePlanCalls    int
	PreviewPlanCalls   int
	GetPlanCalls       int
	DeletePlanCalls    int
	ScheduleJobCalls   int
	AdjustJobCalls     int
	ShiftJobCalls      int
	GanttDataCalls     int
	DeleteSchedCalls   int
	DeleteExpiredCalls int
}

// HealthCheck calls HealthCheckFn
func (m *MockClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	m.HealthCheckCalls++
	if m.HealthCheckFn == nil {
		return nil, errNotConfigured("HealthCheck")
	}
	return m.HealthCheckFn(ctx)
}

// CreatePart calls CreatePartFn
func (m *MockClient) CreatePart(ctx context.Context, part *models.Part) error {
	m.CreatePartCalls++
	if m.CreatePartFn == nil {
		return errNotConfigured("CreatePart")
	}
	return m.CreatePartFn(ctx, part)
}

// GetPart calls GetPartFn
func (m *MockClient) GetPart(ctx context.Context, partNumber string) (models.Part, error) {
	m.GetPartCalls++
	if m.GetPartFn == nil {
		return models.Part{}, errNotConfigured("GetPart")
	}
	return m.GetPartFn(ctx, partNumber)
}

// CreateJig calls CreateJigFn
func (m *MockClient) CreateJig(ctx context.Context, jig *models.Jig) error {
	m.CreateJigCalls++
	if m.CreateJigFn == nil {
		return errNotConfigured("CreateJig")
	}
	return m.CreateJigFn(ctx, jig)
}

// CreatePlan calls CreatePlanFn
func (m *MockClient) CreatePlan(ctx context.Context, req *services.PlanRequest) (models.ComponentJob, error) {
	m.CreatePlanCalls++
	if m.CreatePlanFn == nil {
		return models.ComponentJob{}, errNotConfigured("CreatePlan")
	}
	return m.CreatePlanFn(ctx, req)
}

// PreviewPlan calls PreviewPlanFn
func (m *MockClient) PreviewPlan(ctx context.Context, req *services.PlanRequest) (models.ComponentJob, error) {
	m.PreviewPlanCalls++
	if m.PreviewPlanFn == nil {
		return models.ComponentJob{}, errNotConfigured("PreviewPlan")
	}
	return m.PreviewPlanFn(ctx, req)
}

// GetPlan calls GetPlanFn
func (m *MockClient) GetPlan(ctx context.Context, id uint) (models.ComponentJob, error) {
	m.GetPlanCalls++
	if m.GetPlanFn == nil {
		return models.ComponentJob{}, errNotConfigured("GetPlan")
	}
	return m.GetPlanFn(ctx, id)
}

// DeletePlan calls DeletePlanFn
func (m *MockClient) DeletePlan(ctx context.Context, id uint) error {
	m.DeletePlanCalls++
	if m.DeletePlanFn == nil {
		return errNotConfigured("DeletePlan")
	}
	return m.DeletePlanFn(ctx, id)
}

// ScheduleJob calls ScheduleJobFn
func (m *MockClient) ScheduleJob(ctx context.Context, req *services.ScheduleRequest) ([]models.GanttJob, error) {
	m.ScheduleJobCalls++
	if m.ScheduleJobFn == nil {
		return nil, errNotConfigured("ScheduleJob")
	}
	return m.ScheduleJobFn(ctx, req)
}

// AdjustJob calls AdjustJobFn
func (m *MockClient) AdjustJob(ctx context.Context, req *services.AdjustRequest) error {
	m.AdjustJobCalls++
	if m.AdjustJobFn == nil {
		return errNotConfigured("AdjustJob")
	}
	return m.AdjustJobFn(ctx, req)
}

// ShiftJob calls ShiftJobFn
func (m *MockClient) ShiftJob(ctx context.Context, req *services.ShiftRequest) error {
	m.ShiftJobCalls++
	if m.ShiftJobFn == nil {
		return errNotConfigured("ShiftJob")
	}
	return m.ShiftJobFn(ctx, req)
}

// GanttData calls GanttDataFn
func (m *MockClient) GanttData(ctx context.Context) (services.GanttData, error) {
	m.GanttDataCalls++
	if m.GanttDataFn == nil {
		return services.GanttData{}, errNotConfigured("GanttData")
	}
	return m.GanttDataFn(ctx)
}

// DeleteScheduledJob calls DeleteSchedFn
func (m *MockClient) DeleteScheduledJob(ctx context.Context, componentJobID uint) error {
	m.DeleteSchedCalls++
	if m.DeleteSchedFn == nil {
		return errNotConfigured("DeleteScheduledJob")
	}
	return m.DeleteSchedFn(ctx, componentJobID)
}

// DeleteExpired calls DeleteExpiredFn
func (m *MockClient) DeleteExpired(ctx context.Context) (int64, error) {
	m.DeleteExpiredCalls++
	if m.DeleteExpiredFn == nil {
		return 0, errNotConfigured("DeleteExpired")
	}
	return m.DeleteExpiredFn(ctx)
}

func errNotConfigured(method string) error {
	return fmt.Errorf("mock: %s not configured", method)
}
