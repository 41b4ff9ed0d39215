package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/shipfix-go/internal/domain/maintenance"
)

// GormIncidentRepository implements IncidentRepository using GORM
type GormIncidentRepository struct {
	db *gorm.DB
}

// NewGormIncidentRepository creates a new GORM incident repository
func NewGormIncidentRepository(db *gorm.DB) *GormIncidentRepository {
	return &GormIncidentRepository{db: db}
}

// Save inserts or replaces an incident
func (r *GormIncidentRepository) Save(ctx context.Context, incident *maintenance.Incident) error {
	model := incidentToModel(incident)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save incident: %w", result.Error)
	}
	return nil
}

// FindByID retrieves an incident by its ID
func (r *GormIncidentRepository) FindByID(ctx context.Context, id string) (*maintenance.Incident, error) {
	var model IncidentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &maintenance.ErrRecordNotFound{Entity: "incident", ID: id}
		}
		return nil, fmt.Errorf("failed to find incident: %w", result.Error)
	}

	return modelToIncident(&model)
}

// List retrieves incidents, newest id first
func (r *GormIncidentRepository) List(ctx context.Context, opts maintenance.ListOptions) ([]*maintenance.Incident, error) {
	query := applyListOptions(r.db.WithContext(ctx), opts).Order("id DESC")

	var models []IncidentModel
	if result := query.Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", result.Error)
	}

	incidents := make([]*maintenance.Incident, 0, len(models))
	for i := range models {
		incident, err := modelToIncident(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert incident model: %w", err)
		}
		incidents = append(incidents, incident)
	}
	return incidents, nil
}

func incidentToModel(incident *maintenance.Incident) *IncidentModel {
	return &IncidentModel{
		ID:         incident.ID(),
		VesselName: incident.VesselName(),
		Equipment:  incident.Equipment(),
		Severity:   incident.Severity().String(),
		Status:     incident.Status().String(),
		ETASeconds: int64(incident.ETA() / time.Second),
		OpenedAt:   incident.OpenedAt().UTC(),
	}
}

func modelToIncident(model *IncidentModel) (*maintenance.Incident, error) {
	return maintenance.NewIncident(
		model.ID,
		model.VesselName,
		model.Equipment,
		maintenance.Severity(model.Severity),
		maintenance.IncidentStatus(model.Status),
		time.Duration(model.ETASeconds)*time.Second,
		model.OpenedAt,
	)
}

// applyListOptions applies the shared board filters to a GORM query
func applyListOptions(query *gorm.DB, opts maintenance.ListOptions) *gorm.DB {
	if opts.VesselName != nil {
		query = query.Where("vessel_name = ?", *opts.VesselName)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	return query
}
