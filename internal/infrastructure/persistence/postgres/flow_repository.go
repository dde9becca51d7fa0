package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/repositories"
)

// FlowRepository implementa repositories.FlowRepository
type FlowRepository struct {
	db *gorm.DB
}

// NewFlowRepository cria um novo FlowRepository
func NewFlowRepository(db *gorm.DB) repositories.FlowRepository {
	return &FlowRepository{db: db}
}

func (r *FlowRepository) Create(ctx context.Context, flow *entities.Flow) error {
	model := toFlowModel(flow)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateError("flows.create", err)
	}

	flow.ID = model.ID
	flow.CreatedAt = time.Unix(model.CreatedAt, 0)
	flow.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *FlowRepository) FindByID(ctx context.Context, id string) (*entities.Flow, error) {
	var model FlowModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("flows.find_by_id", err)
	}

	return toFlowEntity(&model), nil
}

func (r *FlowRepository) Update(ctx context.Context, flow *entities.Flow) error {
	db := dbFromContext(ctx, r.db)
	err := db.Model(&FlowModel{}).Where("id = ?", flow.ID).Updates(map[string]interface{}{
		"nome_fluxo":  string(flow.NomeFluxo),
		"check_fluxo": string(flow.CheckFluxo),
		"observacao":  flow.Observacao,
	}).Error
	if err != nil {
		return translateError("flows.update", err)
	}
	return nil
}

func (r *FlowRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).Delete(&FlowModel{}).Error; err != nil {
		return translateError("flows.delete", err)
	}
	return nil
}

func (r *FlowRepository) ListBySubject(ctx context.Context, subject entities.Subject) ([]*entities.Flow, error) {
	var models []*FlowModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&FlowModel{}).Order("created_at DESC")

	if subject.IsRepresentante() {
		query = query.Where("representante_legal_id = ?", *subject.RepresentanteID)
	} else {
		query = query.Where("company_id = ? AND representante_legal_id IS NULL", *subject.CompanyID)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, translateError("flows.list_by_subject", err)
	}

	flows := make([]*entities.Flow, 0, len(models))
	for _, model := range models {
		flows = append(flows, toFlowEntity(model))
	}
	return flows, nil
}

// Conversores
func toFlowModel(flow *entities.Flow) *FlowModel {
	return &FlowModel{
		ID:                   flow.ID,
		CompanyID:            flow.Subject.CompanyID,
		RepresentanteLegalID: flow.Subject.RepresentanteID,
		NomeFluxo:            string(flow.NomeFluxo),
		CheckFluxo:           string(flow.CheckFluxo),
		Observacao:           flow.Observacao,
		CreatedBy:            flow.CreatedBy,
	}
}

func toFlowEntity(model *FlowModel) *entities.Flow {
	return &entities.Flow{
		ID: model.ID,
		Subject: entities.Subject{
			CompanyID:       model.CompanyID,
			RepresentanteID: model.RepresentanteLegalID,
		},
		NomeFluxo:  entities.NomeFluxo(model.NomeFluxo),
		CheckFluxo: entities.CheckFluxo(model.CheckFluxo),
		Observacao: model.Observacao,
		CreatedBy:  model.CreatedBy,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		UpdatedAt:  time.Unix(model.UpdatedAt, 0),
	}
}
