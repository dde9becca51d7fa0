package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/repositories"
)

// RepresentanteRepository implementa repositories.RepresentanteRepository
type RepresentanteRepository struct {
	db *gorm.DB
}

// NewRepresentanteRepository cria um novo RepresentanteRepository
func NewRepresentanteRepository(db *gorm.DB) repositories.RepresentanteRepository {
	return &RepresentanteRepository{db: db}
}

func (r *RepresentanteRepository) Create(ctx context.Context, rep *entities.RepresentanteLegal) error {
	model := toRepresentanteModel(rep)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateError("representantes_legais.create", err)
	}

	rep.ID = model.ID
	rep.CreatedAt = time.Unix(model.CreatedAt, 0)
	rep.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *RepresentanteRepository) FindByID(ctx context.Context, id string) (*entities.RepresentanteLegal, error) {
	var model RepresentanteModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("representantes_legais.find_by_id", err)
	}

	return toRepresentanteEntity(&model), nil
}

func (r *RepresentanteRepository) FindByCompany(ctx context.Context, companyID string) (*entities.RepresentanteLegal, error) {
	var model RepresentanteModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("company_id = ?", companyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("representantes_legais.find_by_company", err)
	}

	return toRepresentanteEntity(&model), nil
}

func (r *RepresentanteRepository) Update(ctx context.Context, rep *entities.RepresentanteLegal) error {
	db := dbFromContext(ctx, r.db)
	err := db.Model(&RepresentanteModel{}).Where("id = ?", rep.ID).Updates(map[string]interface{}{
		"nome":     rep.Nome,
		"cpf":      rep.CPF,
		"telefone": rep.Telefone,
		"endereco": rep.Endereco,
	}).Error
	if err != nil {
		return translateError("representantes_legais.update", err)
	}
	return nil
}

// Conversores
func toRepresentanteModel(rep *entities.RepresentanteLegal) *RepresentanteModel {
	return &RepresentanteModel{
		ID:        rep.ID,
		CompanyID: rep.CompanyID,
		Nome:      rep.Nome,
		CPF:       rep.CPF,
		Telefone:  rep.Telefone,
		Endereco:  rep.Endereco,
		CreatedBy: rep.CreatedBy,
	}
}

func toRepresentanteEntity(model *RepresentanteModel) *entities.RepresentanteLegal {
	return &entities.RepresentanteLegal{
		ID:        model.ID,
		CompanyID: model.CompanyID,
		Nome:      model.Nome,
		CPF:       model.CPF,
		Telefone:  model.Telefone,
		Endereco:  model.Endereco,
		CreatedBy: model.CreatedBy,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}
}
