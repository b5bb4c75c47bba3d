// internal/models/user.go
package models

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleEmployee UserRole = "EMPLOYEE"
)

type User struct {
	ID         string   `gorm:"primaryKey;type:varchar(50)" json:"id"`
	Name       string   `gorm:"type:varchar(100);not null" json:"name"`
	Email      string   `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password   string   `gorm:"type:varchar(255)" json:"-"`
	Role       UserRole `gorm:"type:varchar(20);default:'EMPLOYEE'" json:"role"`
	Position   string   `gorm:"type:varchar(100)" json:"position"`
	Department string   `gorm:"type:varchar(100)" json:"department"`
	JoinDate   string   `gorm:"column:join_date;type:varchar(20)" json:"joinDate"`
	Phone      *string  `gorm:"type:varchar(20)" json:"phone"`
	Address    *string  `gorm:"type:varchar(255)" json:"address"`
	Salary     *float64 `json:"salary"`
	AvatarURL  *string  `gorm:"column:avatar_url;type:varchar(255)" json:"avatarUrl"`
}

func (User) TableName() string { return "users" }
