package maintenance

import "time"

// DefaultUpcomingWindow is how far ahead a task counts as upcoming
const DefaultUpcomingWindow = 7 * 24 * time.Hour

// recentWindow bounds the "opened recently" incident trend
const recentWindow = 24 * time.Hour

// FleetSnapshot is the vessel head-count the dashboard reports on
type FleetSnapshot struct {
	Total       int
	Operational int
	InPort      int
}

// Summary holds the four dashboard KPI cards
type Summary struct {
	OpenIncidents       int
	IncidentsLast24h    int
	PendingWorkOrders   int
	CriticalWorkOrders  int
	UpcomingMaintenance int
	UpcomingWindow      time.Duration
	OperationalVessels  int
	TotalVessels        int
	VesselsInPort       int
}

// Summarize computes the KPI cards at the given instant.
// A non-positive window falls back to DefaultUpcomingWindow.
func Summarize(
	now time.Time,
	window time.Duration,
	incidents []*Incident,
	orders []*WorkOrder,
	tasks []*MaintenanceTask,
	fleet FleetSnapshot,
) Summary {
	if window <= 0 {
		window = DefaultUpcomingWindow
	}

	s := Summary{
		UpcomingWindow:     window,
		OperationalVessels: fleet.Operational,
		TotalVessels:       fleet.Total,
		VesselsInPort:      fleet.InPort,
	}

	for _, inc := range incidents {
		if !inc.IsOpen() {
			continue
		}
		s.OpenIncidents++
		if age := now.Sub(inc.OpenedAt()); age >= 0 && age <= recentWindow {
			s.IncidentsLast24h++
		}
	}

	for _, wo := range orders {
		if !wo.IsPending() {
			continue
		}
		s.PendingWorkOrders++
		if wo.IsCritical() {
			s.CriticalWorkOrders++
		}
	}

	for _, task := range tasks {
		if task.IsUpcoming(now, window) {
			s.UpcomingMaintenance++
		}
	}

	return s
}
