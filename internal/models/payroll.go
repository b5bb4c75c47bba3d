// internal/models/payroll.go
package models

// Payroll rows are seed-only: there is no create or update endpoint.
type Payroll struct {
	ID         string  `gorm:"primaryKey;type:varchar(50)" json:"id"`
	UserID     string  `gorm:"column:user_id;type:varchar(50);index;not null" json:"userId"`
	Month      string  `gorm:"type:varchar(20);not null" json:"month"`
	Year       string  `gorm:"type:varchar(10);not null" json:"year"`
	BaseSalary float64 `gorm:"column:base_salary" json:"baseSalary"`
	Bonuses    float64 `json:"bonuses"`
	Deductions float64 `json:"deductions"`
	NetPay     float64 `gorm:"column:net_pay" json:"netPay"`
	Status     string  `gorm:"type:varchar(20)" json:"status"`
}

func (Payroll) TableName() string { return "payroll" }
