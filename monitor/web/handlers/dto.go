package handlers

import "syncronic.com/empmonitor/monitor/model"

type RegisterDTO struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type RegisterResponse struct {
	Success bool `json:"success"`
	Created bool `json:"created"`
}

// LogForm is the non-file part of a log upload. Files travel in the
// "screenshot" and "webcam" multipart fields.
type LogForm struct {
	EmployeeID    string `form:"employeeId" json:"employeeId" binding:"required"`
	WebLog        string `form:"webLog" json:"webLog"`
	SystemInfo    string `form:"systemInfo" json:"systemInfo"`
	Status        string `form:"status" json:"status"`
	OnTimeMinutes string `form:"onTimeMinutes" json:"onTimeMinutes"`
}

type LogResponse struct {
	Success bool            `json:"success"`
	Log     *model.LogEntry `json:"log"`
}

type LogsResponse struct {
	Success bool             `json:"success"`
	Logs    []model.LogEntry `json:"logs"`
}
