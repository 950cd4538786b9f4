package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"parcellocker/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit at the top of every minute.
const DefaultAuditSchedule = "0 * * * * *"

type IntegrityAuditor interface {
	Handle(ctx context.Context, query queries.IntegrityAuditQuery) ([]queries.IntegrityFinding, error)
}

// IntegrityAuditJob periodically looks for compartments and packages that
// disagree with each other and logs every finding at ERROR. It never repairs
// data.
type IntegrityAuditJob struct {
	auditor  IntegrityAuditor
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewIntegrityAuditJob(auditor IntegrityAuditor, schedule string, logger *slog.Logger) *IntegrityAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &IntegrityAuditJob{
		auditor:  auditor,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "integrity_audit_job"),
	}
}

// Run performs one audit and returns the number of findings. An audit that
// could not complete returns the error instead of a zero count.
func (j *IntegrityAuditJob) Run(ctx context.Context) (int, error) {
	findings, err := j.auditor.Handle(ctx, queries.NewIntegrityAuditQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Integrity audit failed", "error", err)
		return 0, fmt.Errorf("integrity audit: %w", err)
	}

	for _, f := range findings {
		j.logger.ErrorContext(ctx, "Data integrity fault",
			"entity", f.Entity,
			"id", f.ID,
			"reason", f.Reason)
	}
	return len(findings), nil
}

func (j *IntegrityAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Integrity audit job started", "schedule", j.schedule)
	return nil
}

func (j *IntegrityAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Integrity audit job stopped")
}
