package remuneration

import (
	"context"
	"net/url"

	"github.com/cmlabs-hris/hr-admin-go/internal/view"
)

type RemunerationService interface {
	GetSummary(ctx context.Context, params url.Values) (Summary, error)
	ExportSalaries(ctx context.Context, params url.Values) (view.File, error)
}
