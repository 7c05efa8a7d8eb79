package model

import "time"

// LogEntry is one activity sample uploaded by an employee's client.
// Rows are never updated; EmployeeID is a soft reference to Employee.
type LogEntry struct {
	ID            uint      `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID    string    `gorm:"column:employee_id;size:191;not null;index" json:"employee_id"`
	ScreenshotURL *string   `gorm:"column:screenshot_url;type:text" json:"screenshot_url"`
	WebcamURL     *string   `gorm:"column:webcam_url;type:text" json:"webcam_url"`
	WebLog        string    `gorm:"column:web_log;type:text" json:"web_log"`
	SystemInfo    string    `gorm:"column:system_info;type:text" json:"system_info"`
	Status        string    `gorm:"column:status;size:255" json:"status"`
	OnTimeMinutes int       `gorm:"column:on_time_minutes;not null;default:0" json:"on_time_minutes"`
	Timestamp     time.Time `gorm:"column:timestamp;autoCreateTime;index" json:"timestamp"`
}

func (LogEntry) TableName() string {
	return "logs"
}

// UptimeSummary aggregates on_time_minutes per employee.
type UptimeSummary struct {
	EmployeeID         string  `gorm:"column:employee_id" json:"employee_id"`
	TotalUptimeMinutes int64   `gorm:"column:total_uptime_minutes" json:"total_uptime_minutes"`
	AvgUptimeMinutes   float64 `gorm:"column:avg_uptime_minutes" json:"avg_uptime_minutes"`
}
