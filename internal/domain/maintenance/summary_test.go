package maintenance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/shipfix-go/internal/domain/maintenance"
)

var now = time.Date(2024, 9, 13, 10, 0, 0, 0, time.UTC)

func TestSummarize_SeedBoard(t *testing.T) {
	// Arrange
	board, err := maintenance.SeedBoard(now)
	require.NoError(t, err)

	// Act
	summary := maintenance.Summarize(now, 0, board.Incidents, board.WorkOrders, board.Tasks,
		maintenance.FleetSnapshot{Total: 4, Operational: 2, InPort: 1})

	// Assert
	assert.Equal(t, 4, summary.OpenIncidents)
	assert.Equal(t, 2, summary.IncidentsLast24h)
	assert.Equal(t, 3, summary.PendingWorkOrders)
	assert.Equal(t, 2, summary.CriticalWorkOrders)
	assert.Equal(t, 3, summary.UpcomingMaintenance)
	assert.Equal(t, maintenance.DefaultUpcomingWindow, summary.UpcomingWindow)
	assert.Equal(t, 2, summary.OperationalVessels)
	assert.Equal(t, 4, summary.TotalVessels)
	assert.Equal(t, 1, summary.VesselsInPort)
}

func TestSummarize_IgnoresClosedRecords(t *testing.T) {
	resolved, err := maintenance.NewIncident("INC-1", "Nanina", "Radar", maintenance.SeverityLow,
		maintenance.IncidentResolved, 0, now.Add(-time.Hour))
	require.NoError(t, err)
	done, err := maintenance.NewWorkOrder("OT-1", "Nanina", "Taller", 100, maintenance.WorkOrderCompleted, true)
	require.NoError(t, err)
	finished, err := maintenance.NewMaintenanceTask("MT-1", "Nanina", "Pintura", now, maintenance.TaskDone)
	require.NoError(t, err)

	summary := maintenance.Summarize(now, time.Hour,
		[]*maintenance.Incident{resolved}, []*maintenance.WorkOrder{done}, []*maintenance.MaintenanceTask{finished},
		maintenance.FleetSnapshot{})

	assert.Zero(t, summary.OpenIncidents)
	assert.Zero(t, summary.PendingWorkOrders)
	assert.Zero(t, summary.UpcomingMaintenance)
}

func TestMaintenanceTask_IsUpcomingRespectsWindow(t *testing.T) {
	task, err := maintenance.NewMaintenanceTask("MT-2", "Nanina", "Sonda", now.Add(10*24*time.Hour), maintenance.TaskScheduled)
	require.NoError(t, err)

	assert.False(t, task.IsUpcoming(now, maintenance.DefaultUpcomingWindow))
	assert.True(t, task.IsUpcoming(now, 14*24*time.Hour))
	assert.True(t, task.IsUpcoming(now.Add(30*24*time.Hour), time.Hour))
}

func TestNewIncident_Validation(t *testing.T) {
	_, err := maintenance.NewIncident("", "Nanina", "Radar", maintenance.SeverityHigh, maintenance.IncidentOpen, 0, now)
	var invalid *maintenance.ErrInvalidRecord
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "id", invalid.Field)

	_, err = maintenance.NewIncident("INC-9", "Nanina", "Radar", maintenance.Severity("CRITICAL"), maintenance.IncidentOpen, 0, now)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "severity", invalid.Field)

	_, err = maintenance.NewWorkOrder("OT-9", "Nanina", "Taller", 120, maintenance.WorkOrderPending, false)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "progress", invalid.Field)
}

func TestIncident_Resolve(t *testing.T) {
	inc, err := maintenance.NewIncident("INC-2", "Nanina", "Radar", maintenance.SeverityHigh, maintenance.IncidentOpen, time.Hour, now)
	require.NoError(t, err)

	inc.Resolve()

	assert.False(t, inc.IsOpen())
	assert.Zero(t, inc.ETA())
}
