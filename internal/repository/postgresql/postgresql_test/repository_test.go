package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func seedEmployee(t *testing.T, ctx context.Context, setup *TestDatabaseSetup, email string) (department.Department, employee.Employee) {
	t.Helper()

	dept, err := postgresql.NewDepartmentRepository(setup.DB).Create(ctx, department.Department{Name: "Engineering"})
	require.NoError(t, err)

	emp, err := postgresql.NewEmployeeRepository(setup.DB).Create(ctx, employee.Employee{
		FirstName:      "Sarah",
		LastName:       "Johnson",
		Email:          email,
		DepartmentID:   &dept.ID,
		EmploymentType: employee.EmploymentTypeFullTime,
		Salary:         decimal.NewFromInt(115000),
		HireDate:       date("2021-03-15"),
		Status:         employee.StatusActive,
	})
	require.NoError(t, err)
	return dept, emp
}

func TestUserRepository(t *testing.T) {
	setup := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(setup.DB)

	created, err := repo.Create(ctx, user.User{Name: "Admin", Email: "admin@acme.io", PasswordHash: "hash", Role: user.RoleAdmin, IsActive: true})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.GetByEmail(ctx, "ADMIN@acme.io")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.Create(ctx, user.User{Name: "Again", Email: "admin@acme.io", PasswordHash: "hash", Role: user.RoleViewer})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	_, err = repo.GetByEmail(ctx, "nobody@acme.io")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	require.NoError(t, repo.UpdateLastLogin(ctx, created.ID, time.Now()))
}

func TestRefreshTokenRepository(t *testing.T) {
	setup := requireDB(t)
	ctx := context.Background()

	u, err := postgresql.NewUserRepository(setup.DB).Create(ctx, user.User{Name: "Admin", Email: "admin@acme.io", PasswordHash: "hash", Role: user.RoleAdmin, IsActive: true})
	require.NoError(t, err)

	repo := postgresql.NewRefreshTokenRepository(setup.DB)
	require.NoError(t, repo.CreateRefreshToken(ctx, u.ID, "raw-token", time.Now().Add(time.Hour).Unix(), auth.SessionTrackingRequest{UserAgent: "test", IPAddress: "127.0.0.1"}))

	owner, revoked, err := repo.IsRefreshTokenRevoked(ctx, "raw-token")
	require.NoError(t, err)
	assert.Equal(t, u.ID, owner)
	assert.False(t, revoked)

	require.NoError(t, repo.RevokeRefreshToken(ctx, "raw-token"))
	_, revoked, err = repo.IsRefreshTokenRevoked(ctx, "raw-token")
	require.NoError(t, err)
	assert.True(t, revoked)

	_, _, err = repo.IsRefreshTokenRevoked(ctx, "unknown")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestEmployeeRepository(t *testing.T) {
	setup := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)

	dept, emp := seedEmployee(t, ctx, setup, "sarah@acme.io")
	require.NotNil(t, emp.DepartmentName)
	assert.Equal(t, dept.Name, *emp.DepartmentName)
	assert.True(t, decimal.NewFromInt(115000).Equal(emp.Salary))

	exists, err := repo.ExistsByEmail(ctx, "SARAH@acme.io", nil)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByEmail(ctx, "sarah@acme.io", &emp.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	emp.Status = employee.StatusInactive
	updated, err := repo.Update(ctx, emp)
	require.NoError(t, err)
	assert.Equal(t, employee.StatusInactive, updated.Status)

	require.NoError(t, repo.Delete(ctx, emp.ID))
	_, err = repo.GetByID(ctx, emp.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, emp.ID), employee.ErrEmployeeNotFound)
}

func TestLeaveRequestRepository_OverlapAndReview(t *testing.T) {
	setup := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRequestRepository(setup.DB)

	_, emp := seedEmployee(t, ctx, setup, "sarah@acme.io")
	created, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveTypeAnnual,
		StartDate:  date("2024-07-01"),
		EndDate:    date("2024-07-05"),
		Reason:     "Holiday",
		Status:     leave.LeaveRequestStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", created.EmployeeName)
	assert.Equal(t, 5, created.Days())

	overlap, err := repo.HasOverlap(ctx, emp.ID, date("2024-07-05"), date("2024-07-08"))
	require.NoError(t, err)
	assert.True(t, overlap)
	overlap, err = repo.HasOverlap(ctx, emp.ID, date("2024-07-06"), date("2024-07-08"))
	require.NoError(t, err)
	assert.False(t, overlap)

	comments := "Enjoy"
	err = setup.DB.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.GetByIDForUpdate(ctx, created.ID); err != nil {
			return err
		}
		return repo.UpdateStatus(ctx, created.ID, leave.LeaveRequestStatusApproved, &comments)
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, got.Status)
	assert.NotNil(t, got.ReviewedAt)

	count, err := postgresql.NewDashboardRepository(setup.DB).CountEmployeesOnLeave(ctx, date("2024-07-03"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestJobApplicationRepository_Duplicate(t *testing.T) {
	setup := requireDB(t)
	ctx := context.Background()

	dept, _ := seedEmployee(t, ctx, setup, "sarah@acme.io")
	posting, err := postgresql.NewJobPostingRepository(setup.DB).Create(ctx, recruitment.JobPosting{
		Title:          "Backend Engineer",
		DepartmentID:   dept.ID,
		EmploymentType: "full-time",
		Description:    "Build services",
		Requirements:   "Go",
		IsActive:       true,
	})
	require.NoError(t, err)

	repo := postgresql.NewJobApplicationRepository(setup.DB)
	app := recruitment.JobApplication{
		JobPostingID:   posting.ID,
		CandidateName:  "Lisa Wang",
		CandidateEmail: "lisa@example.com",
		Status:         recruitment.ApplicationPending,
	}
	created, err := repo.Create(ctx, app)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", created.JobTitle)

	app.CandidateEmail = "LISA@example.com"
	_, err = repo.Create(ctx, app)
	assert.ErrorIs(t, err, recruitment.ErrDuplicateApplication)

	got, err := postgresql.NewJobPostingRepository(setup.DB).GetByID(ctx, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ApplicationCount)
}
