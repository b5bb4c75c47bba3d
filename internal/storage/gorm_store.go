// internal/storage/gorm_store.go
package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hrms_backend/internal/apperror"
	"hrms_backend/internal/models"
)

// GormStore backs the record store with a relational database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) Init(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Attendance{},
		&models.Leave{},
		&models.Payroll{},
	); err != nil {
		return err
	}
	return ensureAdmin(ctx, s)
}

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	return mapDatabaseError(s.db.WithContext(ctx).Create(u).Error)
}

func (s *GormStore) UserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err, "user not found")
	}
	return &u, nil
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, mapNotFound(err, "user not found")
	}
	return &u, nil
}

func (s *GormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	rows := make([]models.User, 0)
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) SaveUser(ctx context.Context, u *models.User) error {
	return mapDatabaseError(s.db.WithContext(ctx).Save(u).Error)
}

func (s *GormStore) ListAttendance(ctx context.Context, userID string) ([]models.Attendance, error) {
	q := s.db.WithContext(ctx)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	rows := make([]models.Attendance, 0)
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) AttendanceByUserDate(ctx context.Context, userID, date string) (*models.Attendance, error) {
	var a models.Attendance
	err := s.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&a).Error
	if err != nil {
		return nil, mapNotFound(err, "attendance not found")
	}
	return &a, nil
}

func (s *GormStore) CreateAttendance(ctx context.Context, a *models.Attendance) error {
	return mapDatabaseError(s.db.WithContext(ctx).Create(a).Error)
}

func (s *GormStore) SaveAttendance(ctx context.Context, a *models.Attendance) error {
	return mapDatabaseError(s.db.WithContext(ctx).Save(a).Error)
}

func (s *GormStore) ListLeaves(ctx context.Context, userID string) ([]models.Leave, error) {
	q := s.db.WithContext(ctx)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	rows := make([]models.Leave, 0)
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) LeaveByID(ctx context.Context, id string) (*models.Leave, error) {
	var l models.Leave
	if err := s.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err, "leave not found")
	}
	return &l, nil
}

func (s *GormStore) CreateLeave(ctx context.Context, l *models.Leave) error {
	return mapDatabaseError(s.db.WithContext(ctx).Create(l).Error)
}

func (s *GormStore) SaveLeave(ctx context.Context, l *models.Leave) error {
	return mapDatabaseError(s.db.WithContext(ctx).Save(l).Error)
}

func (s *GormStore) ListPayroll(ctx context.Context, userID string) ([]models.Payroll, error) {
	q := s.db.WithContext(ctx)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	rows := make([]models.Payroll, 0)
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func mapNotFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.New(apperror.CodeNotFound, message)
	}
	return err
}

func mapDatabaseError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperror.New(apperror.CodeConflict, "record with the same unique attributes already exists")
	}
	return err
}
