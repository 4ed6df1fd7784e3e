package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	StatusPermanent EmploymentStatus = "permanent"
	StatusContract  EmploymentStatus = "contract"
	StatusIntern    EmploymentStatus = "intern"
	StatusResigned  EmploymentStatus = "resigned"
)

func (s EmploymentStatus) IsValid() bool {
	switch s {
	case StatusPermanent, StatusContract, StatusIntern, StatusResigned:
		return true
	}
	return false
}

// PayrollEligibleStatuses are the statuses included in bulk salary
// generation. Interns and resigned employees are excluded from the batch
// but not from single-employee generation.
func PayrollEligibleStatuses() []EmploymentStatus {
	return []EmploymentStatus{StatusPermanent, StatusContract}
}

type Employee struct {
	ID               int64
	UserID           int64
	EmployeeCode     string
	Position         string
	Department       string
	JoinDate         time.Time
	EmploymentStatus EmploymentStatus
	// BasicSalary is the nominal monthly base used as the numerator of the
	// hourly rate; the amount on a generated slip is the prorated figure.
	BasicSalary decimal.Decimal
	Contact     *string
	ManagerID   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	Name  *string
	Email *string
}
