package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/talentindo/hris-backend-go/internal/domain/salaryslip"
)

// systemActorID marks slips written by the scheduler rather than a
// logged-in admin.
const systemActorID int64 = 0

// SalaryJobs contains salary-generation cron jobs
type SalaryJobs struct {
	slipService salaryslip.Service
}

// NewSalaryJobs creates salary cron jobs
func NewSalaryJobs(slipService salaryslip.Service) *SalaryJobs {
	return &SalaryJobs{slipService: slipService}
}

// RegisterJobs registers all salary-related cron jobs
func (j *SalaryJobs) RegisterJobs(scheduler *Scheduler) {
	// Generating for the previous period is idempotent, so checking
	// every 12 hours just retries until the month's batch is complete.
	scheduler.AddJob(
		"generate_monthly_salary_slips",
		12*time.Hour,
		j.GenerateForPreviousPeriod,
	)
}

// GenerateForPreviousPeriod runs bulk generation for the month before
// the current one. Employees who already have a slip are skipped by the
// engine itself, so repeated runs only fill gaps.
func (j *SalaryJobs) GenerateForPreviousPeriod(ctx context.Context) error {
	period := salaryslip.PeriodOf(time.Now()).Previous()

	report, err := j.slipService.GenerateBulk(ctx, salaryslip.GenerateBulkRequest{
		Period: period.String(),
	}, systemActorID)
	if err != nil {
		return err
	}

	slog.Info("Monthly salary generation finished",
		"period", report.Period,
		"total", report.TotalEmployees,
		"succeeded", report.SucceededCount,
		"skipped", report.SkippedCount,
		"failed", report.FailedCount,
	)

	return nil
}
