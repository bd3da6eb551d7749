package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/anoline/anoline/internal/db/models"
	"github.com/anoline/anoline/internal/db/repos"
	"github.com/anoline/anoline/internal/logger"
	"github.com/anoline/anoline/internal/process"
)

// RetentionHorizon is how long a scheduled load stays queryable after its
// jigging started. Loads older than this are purged by DeleteExpired.
const RetentionHorizon = 48 * time.Hour

// ScheduleRequest asks for one component job to be placed on the timeline.
type ScheduleRequest struct {
	ComponentJobID uint      `json:"component_job_id"`
	Start          time.Time `json:"start"`
	RinseSealRoute string    `json:"rinse_seal_route,omitempty"`
	AnodisingTank  string    `json:"anodising_tank,omitempty"`
}

// AdjustRequest relabels the slots of an already-scheduled component job.
type AdjustRequest struct {
	ComponentJobID uint   `json:"component_job_id"`
	RinseSealRoute string `json:"rinse_seal_route,omitempty"`
	AnodisingTank  string `json:"anodising_tank,omitempty"`
}

// ShiftRequest rigidly moves every load of a component job by a number of
// minutes, positive or negative.
type ShiftRequest struct {
	ComponentJobID uint `json:"component_job_id"`
	DeltaMinutes   int  `json:"delta_minutes"`
}

// SlotInterval is one populated timeline slot in the read view, with
// RFC 3339 timestamps for direct chart consumption.
type SlotInterval struct {
	Slot  string `json:"slot"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// LoadTimeline is the read view of one scheduled load
type LoadTimeline struct {
	ID             uint           `json:"id"`
	ComponentJobID uint           `json:"component_job_id"`
	OrderID        uint           `json:"order_id"`
	CustomerID     uint           `json:"customer_id"`
	LoadNumber     int            `json:"load_number"`
	Intervals      []SlotInterval `json:"intervals"`
}

// GanttData is the full chart payload: the slot vocabulary in render order
// plus every load timeline.
type GanttData struct {
	Slots []string       `json:"slots"`
	Loads []LoadTimeline `json:"loads"`
}

// Gantt turns compiled component jobs into persisted load schedules and
// manages them afterwards.
type Gantt struct {
	jobs      *repos.ComponentJobRepository
	ganttJobs *repos.GanttJobRepository
}

// NewGantt creates a new gantt service instance
func NewGantt(jobs *repos.ComponentJobRepository, ganttJobs *repos.GanttJobRepository) *Gantt {
	return &Gantt{jobs: jobs, ganttJobs: ganttJobs}
}

// ScheduleJob schedules every load of a component job starting at the
// requested time and persists the result atomically. An alternate rinse/seal
// lane or anodising tank, if requested, is applied before anything is
// written, so the stored timelines are already in their final slots.
func (g *Gantt) ScheduleJob(ctx context.Context, req *ScheduleRequest) ([]models.GanttJob, error) {
	job, err := g.jobs.GetByID(ctx, req.ComponentJobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrJobNotFound, req.ComponentJobID)
		}
		return nil, err
	}

	loads, err := process.Schedule(job.Operations, job.LoadsRequired, req.Start)
	if err != nil {
		return nil, err
	}

	for i := range loads {
		loads[i].ComponentJobID = job.ID
		loads[i].OrderID = job.OrderID
		loads[i].CustomerID = job.CustomerID
		process.Adjust(&loads[i], req.RinseSealRoute, req.AnodisingTank)
	}

	if err := g.ganttJobs.CreateBatch(ctx, loads); err != nil {
		return nil, err
	}

	logger.Infof("scheduled component job %d: %d loads from %s",
		job.ID, len(loads), req.Start.Format(time.RFC3339))
	return loads, nil
}

// AdjustJob relabels the slots of every load of an already-scheduled
// component job in one transaction.
func (g *Gantt) AdjustJob(ctx context.Context, req *AdjustRequest) error {
	err := g.ganttJobs.UpdateByComponentJob(ctx, req.ComponentJobID, func(load *models.GanttJob) {
		process.Adjust(load, req.RinseSealRoute, req.AnodisingTank)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: component job %d", ErrScheduleNotFound, req.ComponentJobID)
	}
	return err
}

// ShiftJob translates every load of a scheduled component job by the
// requested number of minutes, in one transaction. All loads of a job move
// together so their relative spacing is preserved.
func (g *Gantt) ShiftJob(ctx context.Context, req *ShiftRequest) error {
	delta := time.Duration(req.DeltaMinutes) * time.Minute
	err := g.ganttJobs.UpdateByComponentJob(ctx, req.ComponentJobID, func(load *models.GanttJob) {
		process.Shift(load, delta)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: component job %d", ErrScheduleNotFound, req.ComponentJobID)
	}
	return err
}

// GetLoad retrieves a single scheduled load by ID
func (g *Gantt) GetLoad(ctx context.Context, id uint) (*models.GanttJob, error) {
	load, err := g.ganttJobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: load %d", ErrScheduleNotFound, id)
		}
		return nil, err
	}
	return load, nil
}

// ListByJob returns every scheduled load of a component job in load order
func (g *Gantt) ListByJob(ctx context.Context, componentJobID uint) ([]models.GanttJob, error) {
	loads, err := g.ganttJobs.ListByComponentJob(ctx, componentJobID)
	if err != nil {
		return nil, err
	}
	if len(loads) == 0 {
		return nil, fmt.Errorf("%w: component job %d", ErrScheduleNotFound, componentJobID)
	}
	return loads, nil
}

// Data builds the full chart payload from a page of scheduled loads
func (g *Gantt) Data(ctx context.Context, opts *models.ListOptions) (*GanttData, error) {
	loads, err := g.ganttJobs.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	data := &GanttData{
		Slots: make([]string, 0, len(models.Slots)),
		Loads: make([]LoadTimeline, 0, len(loads)),
	}
	for _, slot := range models.Slots {
		data.Slots = append(data.Slots, slot.String())
	}
	for i := range loads {
		data.Loads = append(data.Loads, timelineView(&loads[i]))
	}
	return data, nil
}

// DeleteLoad removes a single scheduled load
func (g *Gantt) DeleteLoad(ctx context.Context, id uint) error {
	err := g.ganttJobs.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: load %d", ErrScheduleNotFound, id)
	}
	return err
}

// DeleteJob removes every scheduled load of a component job
func (g *Gantt) DeleteJob(ctx context.Context, componentJobID uint) error {
	deleted, err := g.ganttJobs.DeleteByComponentJob(ctx, componentJobID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: component job %d", ErrScheduleNotFound, componentJobID)
	}
	logger.Infof("deleted %d scheduled loads for component job %d", deleted, componentJobID)
	return nil
}

// DeleteExpired purges scheduled loads whose jigging started more than the
// retention horizon ago. Returns how many rows were removed.
func (g *Gantt) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.Add(-RetentionHorizon)
	deleted, err := g.ganttJobs.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		logger.Infof("purged %d scheduled loads older than %s", deleted, cutoff.Format(time.RFC3339))
	}
	return deleted, nil
}

// timelineView flattens a load's populated slots into render order
func timelineView(load *models.GanttJob) LoadTimeline {
	view := LoadTimeline{
		ID:             load.ID,
		ComponentJobID: load.ComponentJobID,
		OrderID:        load.OrderID,
		CustomerID:     load.CustomerID,
		LoadNumber:     load.LoadNumber,
		Intervals:      make([]SlotInterval, 0, 8),
	}
	for _, slot := range models.Slots {
		interval := load.Interval(slot)
		if !interval.Populated() {
			continue
		}
		view.Intervals = append(view.Intervals, SlotInterval{
			Slot:  slot.String(),
			Start: interval.Start.Format(time.RFC3339),
			End:   interval.End.Format(time.RFC3339),
		})
	}
	return view
}
