package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAll_NewestFirst(t *testing.T) {
	dm := setupTestDB(t)
	seedLog(t, dm, "emp-a", base.Add(2*time.Minute), 5)
	seedLog(t, dm, "emp-b", base, 5)
	seedLog(t, dm, "emp-a", base.Add(5*time.Minute), 5)
	seedLog(t, dm, "emp-c", base.Add(time.Minute), 5)

	logs, err := NewQueryService(dm).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 4)

	for i := 1; i < len(logs); i++ {
		assert.False(t, logs[i].Timestamp.After(logs[i-1].Timestamp), "logs out of order at %d", i)
	}
	assert.True(t, base.Add(5*time.Minute).Equal(logs[0].Timestamp))
}

func TestListAll_Empty(t *testing.T) {
	logs, err := NewQueryService(setupTestDB(t)).ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestListByEmployee(t *testing.T) {
	dm := setupTestDB(t)
	seedLog(t, dm, "emp-a", base, 5)
	seedLog(t, dm, "emp-b", base.Add(time.Minute), 5)
	seedLog(t, dm, "emp-a", base.Add(2*time.Minute), 5)
	seedLog(t, dm, "emp-ab", base.Add(3*time.Minute), 5)

	logs, err := NewQueryService(dm).ListByEmployee(context.Background(), "emp-a")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, l := range logs {
		assert.Equal(t, "emp-a", l.EmployeeID)
	}
	assert.True(t, logs[0].Timestamp.After(logs[1].Timestamp))
}

func TestLatestStatus(t *testing.T) {
	dm := setupTestDB(t)
	old := seedLog(t, dm, "emp-a", base, 5)
	latestA := seedLog(t, dm, "emp-a", base.Add(10*time.Minute), 5)
	latestB := seedLog(t, dm, "emp-b", base.Add(20*time.Minute), 5)
	seedLog(t, dm, "emp-b", base.Add(time.Minute), 5)

	logs, err := NewQueryService(dm).LatestStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 2)

	assert.Equal(t, latestB.ID, logs[0].ID)
	assert.Equal(t, latestA.ID, logs[1].ID)
	for _, l := range logs {
		assert.NotEqual(t, old.ID, l.ID)
	}
}

func TestLatestStatus_TiesAreKept(t *testing.T) {
	dm := setupTestDB(t)
	first := seedLog(t, dm, "emp-a", base, 5)
	second := seedLog(t, dm, "emp-a", base, 7)

	logs, err := NewQueryService(dm).LatestStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// equal timestamps fall back to the higher id first
	assert.Equal(t, second.ID, logs[0].ID)
	assert.Equal(t, first.ID, logs[1].ID)
}

func TestUptimeSummary(t *testing.T) {
	dm := setupTestDB(t)
	seedLog(t, dm, "emp-e", base, 10)
	seedLog(t, dm, "emp-e", base.Add(time.Minute), 20)
	seedLog(t, dm, "emp-e", base.Add(2*time.Minute), 30)
	seedLog(t, dm, "emp-f", base, 100)
	seedLog(t, dm, "emp-g", base, 10)
	seedLog(t, dm, "emp-g", base.Add(time.Minute), 20)
	seedLog(t, dm, "emp-g", base.Add(2*time.Minute), 20)

	rows, err := NewQueryService(dm).UptimeSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "emp-f", rows[0].EmployeeID)
	assert.Equal(t, int64(100), rows[0].TotalUptimeMinutes)

	assert.Equal(t, "emp-e", rows[1].EmployeeID)
	assert.Equal(t, int64(60), rows[1].TotalUptimeMinutes)
	assert.InDelta(t, 20.00, rows[1].AvgUptimeMinutes, 0.0001)

	assert.Equal(t, "emp-g", rows[2].EmployeeID)
	assert.Equal(t, int64(50), rows[2].TotalUptimeMinutes)
	assert.InDelta(t, 16.67, rows[2].AvgUptimeMinutes, 0.0001)
}

func TestDelete(t *testing.T) {
	dm := setupTestDB(t)
	keep := seedLog(t, dm, "emp-a", base, 5)
	gone := seedLog(t, dm, "emp-a", base.Add(time.Minute), 5)
	svc := NewQueryService(dm)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, gone.ID))

	logs, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, keep.ID, logs[0].ID)

	assert.ErrorIs(t, svc.Delete(ctx, gone.ID), ErrLogNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 9999), ErrLogNotFound)

	logs, err = svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
