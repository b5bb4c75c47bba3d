// internal/storage/memory_store.go
package storage

import (
	"context"
	"sync"
	"time"

	"hrms_backend/internal/apperror"
	"hrms_backend/internal/models"
	"hrms_backend/internal/utils"
)

// MemoryStore keeps all records in process-local slices. Lookups are
// linear scans; concurrent writers resolve last-write-wins.
type MemoryStore struct {
	mu         sync.RWMutex
	users      []models.User
	attendance []models.Attendance
	leaves     []models.Leave
	payroll    []models.Payroll
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// NewSeededMemoryStore returns a store preloaded with the demo dataset:
// the admin account, one employee, and one row in each of the attendance,
// leave and payroll collections.
func NewSeededMemoryStore() (*MemoryStore, error) {
	s := NewMemoryStore()
	if err := ensureAdmin(context.Background(), s); err != nil {
		return nil, err
	}

	johnHash, err := utils.HashPassword("john123")
	if err != nil {
		return nil, err
	}

	checkIn := "09:00"
	checkOut := "17:00"
	totalHours := 8.0
	reason := "Family vacation"

	s.users = append(s.users, models.User{
		ID:         "2",
		Name:       "John Doe",
		Email:      "john@hrms.com",
		Password:   johnHash,
		Role:       models.RoleEmployee,
		Position:   "Engineer",
		Department: "Engineering",
		JoinDate:   "2023-05-15",
	})
	s.attendance = append(s.attendance, models.Attendance{
		ID:         "1",
		UserID:     "2",
		Date:       time.Now().Format("2006-01-02"),
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		Status:     models.StatusPresent,
		TotalHours: &totalHours,
	})
	s.leaves = append(s.leaves, models.Leave{
		ID:        "1",
		UserID:    "2",
		Type:      "Annual",
		StartDate: "2024-01-10",
		EndDate:   "2024-01-15",
		Reason:    &reason,
		Status:    models.LeaveApproved,
	})
	s.payroll = append(s.payroll, models.Payroll{
		ID:         "1",
		UserID:     "2",
		Month:      "December",
		Year:       "2025",
		BaseSalary: 5000,
		Bonuses:    500,
		Deductions: 200,
		NetPay:     5300,
		Status:     "Paid",
	})

	return s, nil
}

// Init has no schema to create; it only seeds the admin account.
func (s *MemoryStore) Init(ctx context.Context) error {
	return ensureAdmin(ctx, s)
}

func (s *MemoryStore) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == u.Email {
			return apperror.New(apperror.CodeConflict, "email already exists")
		}
	}
	s.users = append(s.users, *u)
	return nil
}

func (s *MemoryStore) UserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, apperror.New(apperror.CodeNotFound, "user not found")
}

func (s *MemoryStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, apperror.New(apperror.CodeNotFound, "user not found")
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) SaveUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = *u
			return nil
		}
	}
	return apperror.New(apperror.CodeNotFound, "user not found")
}

func (s *MemoryStore) ListAttendance(ctx context.Context, userID string) ([]models.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Attendance, 0, len(s.attendance))
	for _, a := range s.attendance {
		if userID == "" || a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *MemoryStore) AttendanceByUserDate(ctx context.Context, userID, date string) (*models.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.attendance {
		if s.attendance[i].UserID == userID && s.attendance[i].Date == date {
			a := s.attendance[i]
			return &a, nil
		}
	}
	return nil, apperror.New(apperror.CodeNotFound, "attendance not found")
}

func (s *MemoryStore) CreateAttendance(ctx context.Context, a *models.Attendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attendance = append(s.attendance, *a)
	return nil
}

func (s *MemoryStore) SaveAttendance(ctx context.Context, a *models.Attendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.attendance {
		if s.attendance[i].ID == a.ID {
			s.attendance[i] = *a
			return nil
		}
	}
	return apperror.New(apperror.CodeNotFound, "attendance not found")
}

func (s *MemoryStore) ListLeaves(ctx context.Context, userID string) ([]models.Leave, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Leave, 0, len(s.leaves))
	for _, l := range s.leaves {
		if userID == "" || l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *MemoryStore) LeaveByID(ctx context.Context, id string) (*models.Leave, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.leaves {
		if s.leaves[i].ID == id {
			l := s.leaves[i]
			return &l, nil
		}
	}
	return nil, apperror.New(apperror.CodeNotFound, "leave not found")
}

func (s *MemoryStore) CreateLeave(ctx context.Context, l *models.Leave) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leaves = append(s.leaves, *l)
	return nil
}

func (s *MemoryStore) SaveLeave(ctx context.Context, l *models.Leave) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leaves {
		if s.leaves[i].ID == l.ID {
			s.leaves[i] = *l
			return nil
		}
	}
	return apperror.New(apperror.CodeNotFound, "leave not found")
}

func (s *MemoryStore) ListPayroll(ctx context.Context, userID string) ([]models.Payroll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Payroll, 0, len(s.payroll))
	for _, p := range s.payroll {
		if userID == "" || p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
