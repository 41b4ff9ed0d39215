package persistence

import (
	"time"
)

// IncidentModel represents the incidents table
type IncidentModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	VesselName string    `gorm:"column:vessel_name;not null;index"`
	Equipment  string    `gorm:"column:equipment;not null"`
	Severity   string    `gorm:"column:severity;not null"`
	Status     string    `gorm:"column:status;not null;index"`
	ETASeconds int64     `gorm:"column:eta_seconds;not null;default:0"`
	OpenedAt   time.Time `gorm:"column:opened_at;not null"`
}

func (IncidentModel) TableName() string {
	return "incidents"
}

// WorkOrderModel represents the work_orders table
type WorkOrderModel struct {
	ID         string `gorm:"column:id;primaryKey"`
	VesselName string `gorm:"column:vessel_name;not null;index"`
	Owner      string `gorm:"column:owner;not null"`
	Progress   int    `gorm:"column:progress;not null;default:0"`
	Status     string `gorm:"column:status;not null"`
	Critical   bool   `gorm:"column:critical;not null;default:false"`
}

func (WorkOrderModel) TableName() string {
	return "work_orders"
}

// MaintenanceTaskModel represents the maintenance_tasks table
type MaintenanceTaskModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	VesselName string    `gorm:"column:vessel_name;not null;index"`
	Task       string    `gorm:"column:task;not null"`
	DueDate    time.Time `gorm:"column:due_date;not null;index"`
	Status     string    `gorm:"column:status;not null"`
}

func (MaintenanceTaskModel) TableName() string {
	return "maintenance_tasks"
}
