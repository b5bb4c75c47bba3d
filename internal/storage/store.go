// internal/storage/store.go
package storage

import (
	"context"

	"hrms_backend/internal/models"
)

// Store is the record store behind the handlers. A userID of "" on the
// List methods means no filter. Lookups that miss return an apperror
// with CodeNotFound; CreateUser returns CodeConflict on a duplicate email.
type Store interface {
	// Init creates the schema if absent and seeds the default admin
	// account when no user with its email exists.
	Init(ctx context.Context) error

	CreateUser(ctx context.Context, u *models.User) error
	UserByID(ctx context.Context, id string) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SaveUser(ctx context.Context, u *models.User) error

	ListAttendance(ctx context.Context, userID string) ([]models.Attendance, error)
	AttendanceByUserDate(ctx context.Context, userID, date string) (*models.Attendance, error)
	CreateAttendance(ctx context.Context, a *models.Attendance) error
	SaveAttendance(ctx context.Context, a *models.Attendance) error

	ListLeaves(ctx context.Context, userID string) ([]models.Leave, error)
	LeaveByID(ctx context.Context, id string) (*models.Leave, error)
	CreateLeave(ctx context.Context, l *models.Leave) error
	SaveLeave(ctx context.Context, l *models.Leave) error

	ListPayroll(ctx context.Context, userID string) ([]models.Payroll, error)
}
