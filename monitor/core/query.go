package core

import (
	"context"

	"gorm.io/gorm"
	dbcore "syncronic.com/empmonitor/core"
	"syncronic.com/empmonitor/monitor/model"
)

// QueryService is the read side of the log store, plus delete by id.
type QueryService struct {
	dm *dbcore.DatabaseManager
}

func NewQueryService(dm *dbcore.DatabaseManager) *QueryService {
	return &QueryService{dm: dm}
}

func (s *QueryService) ListAll(ctx context.Context) ([]model.LogEntry, error) {
	var logs []model.LogEntry
	err := s.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		logs, err = FindLogs(db)
		return err
	})
	return logs, err
}

func (s *QueryService) ListByEmployee(ctx context.Context, employeeID string) ([]model.LogEntry, error) {
	var logs []model.LogEntry
	err := s.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		logs, err = FindLogsByEmployee(db, employeeID)
		return err
	})
	return logs, err
}

func (s *QueryService) LatestStatus(ctx context.Context) ([]model.LogEntry, error) {
	var logs []model.LogEntry
	err := s.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		logs, err = LatestStatusPerEmployee(db)
		return err
	})
	return logs, err
}

func (s *QueryService) UptimeSummary(ctx context.Context) ([]model.UptimeSummary, error) {
	var rows []model.UptimeSummary
	err := s.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		rows, err = UptimeSummary(db)
		return err
	})
	return rows, err
}

// Delete removes one log row. Stored screenshot and webcam files are kept.
// Returns ErrLogNotFound when no row has the id.
func (s *QueryService) Delete(ctx context.Context, id uint) error {
	return s.dm.Exec(ctx, func(db *gorm.DB) error {
		return DeleteLog(db, id)
	})
}
