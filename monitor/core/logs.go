package core

import (
	"errors"

	"gorm.io/gorm"
	"syncronic.com/empmonitor/monitor/model"
)

var ErrLogNotFound = errors.New("log not found")

func CreateLog(db *gorm.DB, entry *model.LogEntry) error {
	return db.Create(entry).Error
}

// FindLogs returns every log, newest first.
func FindLogs(db *gorm.DB) ([]model.LogEntry, error) {
	logs := []model.LogEntry{}
	err := db.Order(newestFirst(db, "")).Order("id DESC").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// FindLogsByEmployee returns the logs of one employee, newest first.
func FindLogsByEmployee(db *gorm.DB, employeeID string) ([]model.LogEntry, error) {
	logs := []model.LogEntry{}
	err := db.Where("employee_id = ?", employeeID).
		Order(newestFirst(db, "")).
		Order("id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func DeleteLog(db *gorm.DB, id uint) error {
	result := db.Delete(&model.LogEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}

// LatestStatusPerEmployee returns, for every employee, the log(s) whose
// timestamp equals that employee's latest timestamp. Two logs sharing the
// latest timestamp are both returned.
func LatestStatusPerEmployee(db *gorm.DB) ([]model.LogEntry, error) {
	ts := db.Statement.Quote("timestamp")

	latest := db.Model(&model.LogEntry{}).
		Select("employee_id, MAX(" + ts + ") AS max_time").
		Group("employee_id")

	logs := []model.LogEntry{}
	err := db.Table("logs AS l1").
		Select("l1.*").
		Joins("INNER JOIN (?) AS l2 ON l1.employee_id = l2.employee_id AND l1."+ts+" = l2.max_time", latest).
		Order(newestFirst(db, "l1.")).
		Order("l1.id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// UptimeSummary sums and averages on_time_minutes per employee, largest total first.
// The average is rounded to two decimals by the database.
func UptimeSummary(db *gorm.DB) ([]model.UptimeSummary, error) {
	rows := []model.UptimeSummary{}
	err := db.Model(&model.LogEntry{}).
		Select(`employee_id,
			SUM(on_time_minutes) AS total_uptime_minutes,
			ROUND(AVG(on_time_minutes), 2) AS avg_uptime_minutes`).
		Group("employee_id").
		Order("total_uptime_minutes DESC").
		Order("employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// timestamp is a keyword in several dialects, so it is always quoted.
func newestFirst(db *gorm.DB, alias string) string {
	return alias + db.Statement.Quote("timestamp") + " DESC"
}
