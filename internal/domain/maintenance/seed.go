package maintenance

import "time"

// Board groups the three maintenance tables
type Board struct {
	Incidents  []*Incident
	WorkOrders []*WorkOrder
	Tasks      []*MaintenanceTask
}

// SeedBoard returns the demo maintenance board anchored at now
func SeedBoard(now time.Time) (*Board, error) {
	board := &Board{}

	incidents := []struct {
		id, vessel, equipment string
		severity              Severity
		status                IncidentStatus
		eta                   time.Duration
		age                   time.Duration
	}{
		{"INC-1021", "Aurora del Sur", "Radar Furuno 2139", SeverityHigh, IncidentDiagnosing, 6 * time.Hour, 3 * time.Hour},
		{"INC-1019", "Nanina", "Motor principal", SeverityMedium, IncidentInRepair, 18 * time.Hour, 20 * time.Hour},
		{"INC-1013", "Pacífica Austral", "Sistema hidráulico", SeverityHigh, IncidentOpen, 12 * time.Hour, 40 * time.Hour},
		{"INC-1007", "Tridente Magallánico", "Comunicaciones VHF", SeverityLow, IncidentDiagnosing, 24 * time.Hour, 72 * time.Hour},
	}
	for _, in := range incidents {
		inc, err := NewIncident(in.id, in.vessel, in.equipment, in.severity, in.status, in.eta, now.Add(-in.age))
		if err != nil {
			return nil, err
		}
		board.Incidents = append(board.Incidents, inc)
	}

	orders := []struct {
		id, vessel, owner string
		progress          int
		status            WorkOrderStatus
		critical          bool
	}{
		{"OT-553", "Aurora del Sur", "Equipo técnico Norte", 75, WorkOrderInRepair, true},
		{"OT-541", "Nanina", "Taller Puerto Base", 40, WorkOrderDiagnosis, false},
		{"OT-530", "Pacífica Austral", "Proveedor externo", 15, WorkOrderPending, true},
	}
	for _, o := range orders {
		wo, err := NewWorkOrder(o.id, o.vessel, o.owner, o.progress, o.status, o.critical)
		if err != nil {
			return nil, err
		}
		board.WorkOrders = append(board.WorkOrders, wo)
	}

	tasks := []struct {
		id, vessel, task string
		dueIn            time.Duration
		status           TaskStatus
	}{
		{"MT-412", "Aurora del Sur", "Cambio de filtros de combustible", 2 * 24 * time.Hour, TaskScheduled},
		{"MT-406", "Nanina", "Inspección de generadores", 4 * 24 * time.Hour, TaskInProgress},
		{"MT-398", "Pacífica Austral", "Calibración de sonda", 6 * 24 * time.Hour, TaskScheduled},
	}
	for _, t := range tasks {
		mt, err := NewMaintenanceTask(t.id, t.vessel, t.task, now.Add(t.dueIn).Truncate(24*time.Hour), t.status)
		if err != nil {
			return nil, err
		}
		board.Tasks = append(board.Tasks, mt)
	}

	return board, nil
}
