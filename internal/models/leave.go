// internal/models/leave.go
package models

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

type Leave struct {
	ID           string      `gorm:"primaryKey;type:varchar(50)" json:"id"`
	UserID       string      `gorm:"column:user_id;type:varchar(50);index;not null" json:"userId"`
	Type         string      `gorm:"type:varchar(20);not null" json:"type"`
	StartDate    string      `gorm:"column:start_date;type:varchar(20);not null" json:"startDate"`
	EndDate      string      `gorm:"column:end_date;type:varchar(20);not null" json:"endDate"`
	Reason       *string     `gorm:"type:text" json:"reason"`
	Status       LeaveStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	AdminComment *string     `gorm:"column:admin_comment;type:text" json:"adminComment"`
}

func (Leave) TableName() string { return "leaves" }
