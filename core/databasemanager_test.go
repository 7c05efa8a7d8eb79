package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"silent", LogLevelSilent},
		{"ERROR", LogLevelError},
		{" info ", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"", LogLevelWarn},
		{"verbose", LogLevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, gormLogLevel(LogLevelSilent))
	assert.Equal(t, logger.Error, gormLogLevel(LogLevelError))
	assert.Equal(t, logger.Warn, gormLogLevel(LogLevelWarn))
	assert.Equal(t, logger.Info, gormLogLevel(LogLevelInfo))
	assert.Equal(t, logger.Info, gormLogLevel(LogLevel(0)))
}

func TestDialector_Unsupported(t *testing.T) {
	_, err := Dialector("oracle", "")
	assert.Error(t, err)

	_, err = New("oracle", "", 1, LogLevelSilent)
	assert.Error(t, err)
}

func TestNew_SQLiteMemory(t *testing.T) {
	dm, err := New("sqlite", ":memory:", 5, LogLevelSilent)
	require.NoError(t, err)
	defer dm.Close()

	require.NoError(t, dm.Migrate(&widget{}))

	ctx := context.Background()
	err = dm.Exec(ctx, func(db *gorm.DB) error {
		return db.Create(&widget{Name: "gear"}).Error
	})
	require.NoError(t, err)

	var count int64
	err = dm.Exec(ctx, func(db *gorm.DB) error {
		return db.Model(&widget{}).Count(&count).Error
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 1, dm.SqlDB.Stats().MaxOpenConnections)
}
