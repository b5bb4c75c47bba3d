package storage

import (
	"context"
	"testing"

	"hrms_backend/internal/apperror"
	"hrms_backend/internal/models"
)

func TestMemoryStoreUserConflict(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := &models.User{ID: "u1", Name: "A", Email: "a@hrms.com"}
	if err := s.CreateUser(ctx, first); err != nil {
		t.Fatalf("create user: %v", err)
	}

	err := s.CreateUser(ctx, &models.User{ID: "u2", Name: "B", Email: "a@hrms.com"})
	if apperror.GetCode(err) != apperror.CodeConflict {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 1 || users[0].Name != "A" {
		t.Fatalf("duplicate create must not alter the store: %v", users)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.UserByID(ctx, "missing"); apperror.GetCode(err) != apperror.CodeNotFound {
		t.Fatalf("expected not_found for user, got %v", err)
	}
	if _, err := s.LeaveByID(ctx, "missing"); apperror.GetCode(err) != apperror.CodeNotFound {
		t.Fatalf("expected not_found for leave, got %v", err)
	}
	if _, err := s.AttendanceByUserDate(ctx, "u1", "2024-01-01"); apperror.GetCode(err) != apperror.CodeNotFound {
		t.Fatalf("expected not_found for attendance, got %v", err)
	}
	if err := s.SaveUser(ctx, &models.User{ID: "missing"}); apperror.GetCode(err) != apperror.CodeNotFound {
		t.Fatalf("expected not_found on save of unknown user, got %v", err)
	}
}

func TestMemoryStoreAttendanceLookup(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	checkIn := "09:00"
	row := &models.Attendance{
		ID: "a1", UserID: "u1", Date: "2024-01-01",
		CheckIn: &checkIn, Status: models.StatusPresent,
	}
	if err := s.CreateAttendance(ctx, row); err != nil {
		t.Fatalf("create attendance: %v", err)
	}

	got, err := s.AttendanceByUserDate(ctx, "u1", "2024-01-01")
	if err != nil {
		t.Fatalf("lookup by (user, date): %v", err)
	}
	if got.ID != "a1" {
		t.Fatalf("expected record a1, got %s", got.ID)
	}

	// returned record is a copy, mutating it must not leak into the store
	got.Status = models.StatusAbsent
	again, _ := s.AttendanceByUserDate(ctx, "u1", "2024-01-01")
	if again.Status != models.StatusPresent {
		t.Fatalf("store record was mutated through a returned copy")
	}

	if _, err := s.AttendanceByUserDate(ctx, "u1", "2024-01-02"); apperror.GetCode(err) != apperror.CodeNotFound {
		t.Fatalf("expected not_found for other date, got %v", err)
	}
}

func TestMemoryStoreListFilters(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_ = s.CreateLeave(ctx, &models.Leave{ID: "l1", UserID: "u1", Type: "Annual"})
	_ = s.CreateLeave(ctx, &models.Leave{ID: "l2", UserID: "u2", Type: "Sick"})

	all, _ := s.ListLeaves(ctx, "")
	if len(all) != 2 {
		t.Fatalf("expected 2 leaves, got %d", len(all))
	}

	filtered, _ := s.ListLeaves(ctx, "u2")
	if len(filtered) != 1 || filtered[0].ID != "l2" {
		t.Fatalf("unexpected filtered leaves: %v", filtered)
	}
}

func TestSeededMemoryStore(t *testing.T) {
	s, err := NewSeededMemoryStore()
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	ctx := context.Background()

	admin, err := s.UserByEmail(ctx, SeedAdminEmail)
	if err != nil {
		t.Fatalf("seeded admin missing: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Fatalf("expected ADMIN role, got %s", admin.Role)
	}

	if err := s.Init(ctx); err != nil {
		t.Fatalf("init on seeded store: %v", err)
	}
	users, _ := s.ListUsers(ctx)
	if len(users) != 2 {
		t.Fatalf("init must not duplicate seed users, got %d", len(users))
	}

	payroll, _ := s.ListPayroll(ctx, "2")
	if len(payroll) != 1 || payroll[0].NetPay != 5300 {
		t.Fatalf("unexpected seeded payroll: %v", payroll)
	}

	leaves, _ := s.ListLeaves(ctx, "2")
	if len(leaves) != 1 || leaves[0].Status != models.LeaveApproved {
		t.Fatalf("unexpected seeded leaves: %v", leaves)
	}
}
