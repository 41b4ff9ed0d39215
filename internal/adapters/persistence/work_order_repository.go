package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/shipfix-go/internal/domain/maintenance"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM
type GormWorkOrderRepository struct {
	db *gorm.DB
}

// NewGormWorkOrderRepository creates a new GORM work order repository
func NewGormWorkOrderRepository(db *gorm.DB) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{db: db}
}

// Save inserts or replaces a work order
func (r *GormWorkOrderRepository) Save(ctx context.Context, order *maintenance.WorkOrder) error {
	model := &WorkOrderModel{
		ID:         order.ID(),
		VesselName: order.VesselName(),
		Owner:      order.Owner(),
		Progress:   order.Progress(),
		Status:     order.Status().String(),
		Critical:   order.IsCritical(),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save work order: %w", result.Error)
	}
	return nil
}

// FindByID retrieves a work order by its ID
func (r *GormWorkOrderRepository) FindByID(ctx context.Context, id string) (*maintenance.WorkOrder, error) {
	var model WorkOrderModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &maintenance.ErrRecordNotFound{Entity: "work_order", ID: id}
		}
		return nil, fmt.Errorf("failed to find work order: %w", result.Error)
	}

	return modelToWorkOrder(&model)
}

// List retrieves work orders, newest id first
func (r *GormWorkOrderRepository) List(ctx context.Context, opts maintenance.ListOptions) ([]*maintenance.WorkOrder, error) {
	query := applyListOptions(r.db.WithContext(ctx), opts).Order("id DESC")

	var models []WorkOrderModel
	if result := query.Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", result.Error)
	}

	orders := make([]*maintenance.WorkOrder, 0, len(models))
	for i := range models {
		order, err := modelToWorkOrder(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert work order model: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func modelToWorkOrder(model *WorkOrderModel) (*maintenance.WorkOrder, error) {
	return maintenance.NewWorkOrder(
		model.ID,
		model.VesselName,
		model.Owner,
		model.Progress,
		maintenance.WorkOrderStatus(model.Status),
		model.Critical,
	)
}
