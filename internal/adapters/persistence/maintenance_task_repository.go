package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/shipfix-go/internal/domain/maintenance"
)

// GormMaintenanceTaskRepository implements MaintenanceTaskRepository using GORM
type GormMaintenanceTaskRepository struct {
	db *gorm.DB
}

// NewGormMaintenanceTaskRepository creates a new GORM maintenance task repository
func NewGormMaintenanceTaskRepository(db *gorm.DB) *GormMaintenanceTaskRepository {
	return &GormMaintenanceTaskRepository{db: db}
}

// Save inserts or replaces a maintenance task
func (r *GormMaintenanceTaskRepository) Save(ctx context.Context, task *maintenance.MaintenanceTask) error {
	model := &MaintenanceTaskModel{
		ID:         task.ID(),
		VesselName: task.VesselName(),
		Task:       task.Task(),
		DueDate:    task.DueDate().UTC(),
		Status:     task.Status().String(),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save maintenance task: %w", result.Error)
	}
	return nil
}

// FindByID retrieves a maintenance task by its ID
func (r *GormMaintenanceTaskRepository) FindByID(ctx context.Context, id string) (*maintenance.MaintenanceTask, error) {
	var model MaintenanceTaskModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &maintenance.ErrRecordNotFound{Entity: "maintenance_task", ID: id}
		}
		return nil, fmt.Errorf("failed to find maintenance task: %w", result.Error)
	}

	return modelToMaintenanceTask(&model)
}

// List retrieves maintenance tasks ordered by due date
func (r *GormMaintenanceTaskRepository) List(ctx context.Context, opts maintenance.ListOptions) ([]*maintenance.MaintenanceTask, error) {
	query := applyListOptions(r.db.WithContext(ctx), opts).Order("due_date ASC").Order("id ASC")

	var models []MaintenanceTaskModel
	if result := query.Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to list maintenance tasks: %w", result.Error)
	}

	tasks := make([]*maintenance.MaintenanceTask, 0, len(models))
	for i := range models {
		task, err := modelToMaintenanceTask(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert maintenance task model: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func modelToMaintenanceTask(model *MaintenanceTaskModel) (*maintenance.MaintenanceTask, error) {
	return maintenance.NewMaintenanceTask(
		model.ID,
		model.VesselName,
		model.Task,
		model.DueDate,
		maintenance.TaskStatus(model.Status),
	)
}
