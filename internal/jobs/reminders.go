package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	DailyDigestJobName    = "daily_digest"
	CoverageEndingJobName = "coverage_ending"
)

// DigestService sends the operator reminders
type DigestService interface {
	SendDaily(ctx context.Context) error
	SendCoverageEnding(ctx context.Context) error
}

// ReminderJob wraps one reminder with a run timeout
type ReminderJob struct {
	name    string
	run     func(ctx context.Context) error
	logger  *zap.Logger
	timeout time.Duration
}

func NewReminderJob(name string, run func(ctx context.Context) error, logger *zap.Logger, timeout time.Duration) *ReminderJob {
	return &ReminderJob{
		name:    name,
		run:     run,
		logger:  logger,
		timeout: timeout,
	}
}

// Run executes the reminder. Failures are logged; the next tick tries again.
func (j *ReminderJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	if err := j.run(ctx); err != nil {
		j.logger.Error("scheduled job failed",
			zap.String("job_name", j.name),
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}
	j.logger.Info("completed scheduled job",
		zap.String("job_name", j.name),
		zap.Duration("duration", time.Since(start)))
}

// RegisterReminders adds the daily digest and the coverage renewal check. An empty
// expression leaves that job out.
func RegisterReminders(scheduler *Scheduler, digests DigestService, logger *zap.Logger, digestCron, coverageCron string, timeout time.Duration) error {
	if digestCron != "" {
		job := NewReminderJob(DailyDigestJobName, digests.SendDaily, logger, timeout)
		if err := scheduler.AddJob(DailyDigestJobName, digestCron, job.Run); err != nil {
			return err
		}
	}
	if coverageCron != "" {
		job := NewReminderJob(CoverageEndingJobName, digests.SendCoverageEnding, logger, timeout)
		if err := scheduler.AddJob(CoverageEndingJobName, coverageCron, job.Run); err != nil {
			return err
		}
	}
	return nil
}
