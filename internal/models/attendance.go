// internal/models/attendance.go
package models

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
)

type Attendance struct {
	ID         string           `gorm:"primaryKey;type:varchar(50)" json:"id"`
	UserID     string           `gorm:"column:user_id;type:varchar(50);index;not null" json:"userId"`
	Date       string           `gorm:"type:varchar(20);index;not null" json:"date"`
	CheckIn    *string          `gorm:"column:check_in;type:varchar(50)" json:"checkIn"`
	CheckOut   *string          `gorm:"column:check_out;type:varchar(50)" json:"checkOut"`
	Status     AttendanceStatus `gorm:"type:varchar(20);default:'PRESENT'" json:"status"`
	TotalHours *float64         `gorm:"column:total_hours" json:"totalHours"`
}

func (Attendance) TableName() string { return "attendance" }
