package jobs

import (
	"context"
	"log/slog"

	"parcellocker/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOccupancySchedule refreshes the gauge every 30 seconds.
const DefaultOccupancySchedule = "*/30 * * * * *"

type OccupancyReader interface {
	Handle(ctx context.Context, query queries.CompartmentOccupancyQuery) ([]queries.CompartmentOccupancy, error)
}

type OccupancySink interface {
	SetCompartments(buckets []queries.CompartmentOccupancy)
}

// OccupancyMetricsJob copies compartment counts per status and size into the
// lockerd_compartments gauge.
type OccupancyMetricsJob struct {
	reader   OccupancyReader
	sink     OccupancySink
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOccupancyMetricsJob creates the job. An empty schedule selects
// DefaultOccupancySchedule; schedules use the six-field cron format with seconds.
func NewOccupancyMetricsJob(
	reader OccupancyReader,
	sink OccupancySink,
	schedule string,
	logger *slog.Logger,
) *OccupancyMetricsJob {
	if schedule == "" {
		schedule = DefaultOccupancySchedule
	}
	return &OccupancyMetricsJob{
		reader:   reader,
		sink:     sink,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "occupancy_metrics_job"),
	}
}

// Run performs one refresh. A failed read leaves the gauge untouched.
func (j *OccupancyMetricsJob) Run(ctx context.Context) {
	buckets, err := j.reader.Handle(ctx, queries.NewCompartmentOccupancyQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Occupancy metrics refresh failed", "error", err)
		return
	}

	j.sink.SetCompartments(buckets)
}

// Start schedules Run.
func (j *OccupancyMetricsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Occupancy metrics job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running refresh to finish.
func (j *OccupancyMetricsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Occupancy metrics job stopped")
}
