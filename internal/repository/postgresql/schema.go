package postgresql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
)

//go:embed schema.sql
var schema string

// Tables lists every table created by EnsureSchema, parents first.
var Tables = []string{
	"departments",
	"employees",
	"users",
	"refresh_tokens",
	"leave_requests",
	"job_postings",
	"job_applications",
	"attendance_records",
	"projects",
	"tasks",
	"milestones",
}

// EnsureSchema creates missing tables and indexes. It is safe to run on
// every deploy.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
