package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/repositories"
)

// ParecerRepository implementa repositories.ParecerRepository
type ParecerRepository struct {
	db *gorm.DB
}

// NewParecerRepository cria um novo ParecerRepository
func NewParecerRepository(db *gorm.DB) repositories.ParecerRepository {
	return &ParecerRepository{db: db}
}

func (r *ParecerRepository) Create(ctx context.Context, parecer *entities.ParecerFinal) error {
	model := toParecerModel(parecer)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateError("parecer_final.create", err)
	}

	parecer.ID = model.ID
	parecer.CreatedAt = time.Unix(model.CreatedAt, 0)
	parecer.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *ParecerRepository) FindByID(ctx context.Context, id string) (*entities.ParecerFinal, error) {
	var model ParecerModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("parecer_final.find_by_id", err)
	}

	return toParecerEntity(&model), nil
}

func (r *ParecerRepository) FindBySubject(ctx context.Context, subject entities.Subject) (*entities.ParecerFinal, error) {
	var model ParecerModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&ParecerModel{})

	if subject.IsRepresentante() {
		query = query.Where("representante_legal_id = ?", *subject.RepresentanteID)
	} else {
		query = query.Where("company_id = ?", *subject.CompanyID)
	}

	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("parecer_final.find_by_subject", err)
	}

	return toParecerEntity(&model), nil
}

func (r *ParecerRepository) Update(ctx context.Context, parecer *entities.ParecerFinal) error {
	db := dbFromContext(ctx, r.db)
	err := db.Model(&ParecerModel{}).Where("id = ?", parecer.ID).Updates(map[string]interface{}{
		"risco":      string(parecer.Risco),
		"orientacao": string(parecer.Orientacao),
		"parecer":    parecer.Parecer,
	}).Error
	if err != nil {
		return translateError("parecer_final.update", err)
	}
	return nil
}

func (r *ParecerRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).Delete(&ParecerModel{}).Error; err != nil {
		return translateError("parecer_final.delete", err)
	}
	return nil
}

// Conversores
func toParecerModel(parecer *entities.ParecerFinal) *ParecerModel {
	return &ParecerModel{
		ID:                   parecer.ID,
		CompanyID:            parecer.Subject.CompanyID,
		RepresentanteLegalID: parecer.Subject.RepresentanteID,
		Risco:                string(parecer.Risco),
		Orientacao:           string(parecer.Orientacao),
		Parecer:              parecer.Parecer,
		CreatedBy:            parecer.CreatedBy,
	}
}

func toParecerEntity(model *ParecerModel) *entities.ParecerFinal {
	return &entities.ParecerFinal{
		ID: model.ID,
		Subject: entities.Subject{
			CompanyID:       model.CompanyID,
			RepresentanteID: model.RepresentanteLegalID,
		},
		Risco:      entities.Risco(model.Risco),
		Orientacao: entities.Orientacao(model.Orientacao),
		Parecer:    model.Parecer,
		CreatedBy:  model.CreatedBy,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		UpdatedAt:  time.Unix(model.UpdatedAt, 0),
	}
}
