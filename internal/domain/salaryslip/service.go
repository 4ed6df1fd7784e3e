package salaryslip

import "context"

// Service is the salary computation engine plus the manual slip CRUD that
// surrounds it. actorID identifies who triggered the operation and is
// persisted as created_by.
type Service interface {
	// Generate creates one slip for (employeeID, period) from aggregated
	// attendance. At most one slip per employee per period can ever exist.
	Generate(ctx context.Context, req GenerateSlipRequest, actorID int64) (GenerateResult, error)
	// GenerateBulk runs Generate for every permanent or contract employee.
	// Individual failures never abort the rest of the batch.
	GenerateBulk(ctx context.Context, req GenerateBulkRequest, actorID int64) (BulkReport, error)
	// Preview runs aggregation and calculation without any existence check
	// or write.
	Preview(ctx context.Context, req GenerateSlipRequest) (PreviewResult, error)

	Create(ctx context.Context, req CreateSlipRequest, actorID int64) (SlipResponse, error)
	GetByID(ctx context.Context, id int64) (SlipResponse, error)
	List(ctx context.Context, filter ListSlipFilter) (ListSlipResponse, error)
	ListByUser(ctx context.Context, userID int64, period *string) ([]SlipResponse, error)
	Update(ctx context.Context, req UpdateSlipRequest) (SlipResponse, error)
	Delete(ctx context.Context, id int64) error

	// RenderPDF renders the slip as a downloadable PDF document.
	RenderPDF(ctx context.Context, id int64) ([]byte, string, error)
}
