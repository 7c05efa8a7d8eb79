package model

import "time"

// Employee is keyed by the id the monitoring client supplies at registration.
type Employee struct {
	EmployeeID string    `gorm:"primaryKey;column:employee_id;size:191" json:"employee_id"`
	Name       *string   `gorm:"column:name;size:255" json:"name"`
	Email      *string   `gorm:"column:email;size:255" json:"email"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Employee) TableName() string {
	return "employees"
}
