package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	dbcore "syncronic.com/empmonitor/core"
	"syncronic.com/empmonitor/monitor/model"
)

var base = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *dbcore.DatabaseManager {
	t.Helper()
	dm, err := dbcore.New("sqlite", ":memory:", 1, dbcore.LogLevelSilent)
	require.NoError(t, err)
	t.Cleanup(func() { dm.Close() })
	require.NoError(t, dm.Migrate(&model.Employee{}, &model.LogEntry{}))
	return dm
}

func seedLog(t *testing.T, dm *dbcore.DatabaseManager, employeeID string, at time.Time, minutes int) model.LogEntry {
	t.Helper()
	entry := model.LogEntry{
		EmployeeID:    employeeID,
		Status:        "online",
		OnTimeMinutes: minutes,
		Timestamp:     at,
	}
	require.NoError(t, dm.Exec(context.Background(), func(db *gorm.DB) error {
		return CreateLog(db, &entry)
	}))
	return entry
}

type memoryStorage struct {
	fields []string
	err    error
}

func (m *memoryStorage) Store(ctx context.Context, field string, data []byte, originalName string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.fields = append(m.fields, field)
	return "/uploads/" + field + "-" + originalName, nil
}

var errStorageDown = errors.New("bucket unavailable")
