package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const AuditRetentionJobName = "audit_retention"

// auditRetentionTimeout bounds a single purge
const auditRetentionTimeout = 5 * time.Minute

// AuditPurger deletes audit entries older than the retention window
type AuditPurger interface {
	Purge(ctx context.Context, retention time.Duration) (int64, error)
}

// AuditRetentionJob trims the audit log to the configured number of days
type AuditRetentionJob struct {
	purger    AuditPurger
	retention time.Duration
	logger    *zap.Logger
}

func NewAuditRetentionJob(purger AuditPurger, days int, logger *zap.Logger) *AuditRetentionJob {
	return &AuditRetentionJob{
		purger:    purger,
		retention: time.Duration(days) * 24 * time.Hour,
		logger:    logger,
	}
}

func (j *AuditRetentionJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), auditRetentionTimeout)
	defer cancel()

	deleted, err := j.purger.Purge(ctx, j.retention)
	if err != nil {
		j.logger.Error("audit retention purge failed", zap.Error(err))
		return
	}
	j.logger.Info("audit retention purge completed",
		zap.Int64("deleted", deleted),
		zap.Duration("retention", j.retention))
}

func RegisterAuditRetentionJob(scheduler *Scheduler, purger AuditPurger, days int, logger *zap.Logger, cronExpr string) error {
	if days <= 0 {
		logger.Info("audit retention disabled", zap.Int("days", days))
		return nil
	}
	job := NewAuditRetentionJob(purger, days, logger)
	return scheduler.AddJob(AuditRetentionJobName, cronExpr, job.Run)
}
