package jobs

import (
	"context"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"go.uber.org/zap"
)

const TotalsDriftJobName = "totals_drift"

// DriftFinder lists orders whose stored totals differ from their rows
type DriftFinder interface {
	FindTotalsDrift(ctx context.Context) ([]domain.TotalsDrift, error)
}

// TotalsDriftJob reports orders whose total_ships/total_ports snapshot no
// longer matches their ships and port calls. The snapshot is never
// rewritten.
type TotalsDriftJob struct {
	finder  DriftFinder
	logger  *zap.Logger
	timeout time.Duration
}

func NewTotalsDriftJob(finder DriftFinder, logger *zap.Logger, timeout time.Duration) *TotalsDriftJob {
	return &TotalsDriftJob{
		finder:  finder,
		logger:  logger,
		timeout: timeout,
	}
}

// Run checks every order once and returns the number of drifted orders
func (j *TotalsDriftJob) Run() int {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	drift, err := j.finder.FindTotalsDrift(ctx)
	if err != nil {
		j.logger.Error("totals drift check failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return 0
	}

	for _, d := range drift {
		j.logger.Warn("order totals differ from stored snapshot",
			zap.Int64("order_id", d.OrderID),
			zap.String("order_number", d.OrderNumber),
			zap.Int("total_ships", d.TotalShips),
			zap.Int("actual_ships", d.ActualShips),
			zap.Int("total_ports", d.TotalPorts),
			zap.Int("actual_ports", d.ActualPorts))
	}

	j.logger.Info("totals drift check completed",
		zap.Int("drifted_orders", len(drift)),
		zap.Duration("duration", time.Since(start)))
	return len(drift)
}

func RegisterTotalsDriftJob(scheduler *Scheduler, finder DriftFinder, logger *zap.Logger, cronExpr string, timeout time.Duration) error {
	job := NewTotalsDriftJob(finder, logger, timeout)
	return scheduler.AddJob(TotalsDriftJobName, cronExpr, func() { job.Run() })
}
